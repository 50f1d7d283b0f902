package ioc

import (
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"

	"hr-notification/internal/handler/jwt"
	notificationhdl "hr-notification/internal/handler/notification"
	streamhdl "hr-notification/internal/handler/stream"
)

func InitTokenService() *jwt.TokenService {
	secret := econf.GetString("jwt.secret")
	if secret == "" {
		panic("jwt.secret 未配置")
	}
	return jwt.NewTokenService(secret)
}

// InitWebServer 公开路由在中间件之前注册，收件箱和推送通道要求登录态
func InitWebServer(tokenSvc *jwt.TokenService,
	notificationHdl *notificationhdl.Handler,
	streamHdl *streamhdl.Handler,
) *egin.Component {
	server := egin.Load("server.http").Build()

	notificationHdl.PublicRoutes(server.Engine)
	streamHdl.PublicRoutes(server.Engine)

	server.Use(tokenSvc.Middleware())

	notificationHdl.PrivateRoutes(server.Engine)
	streamHdl.PrivateRoutes(server.Engine)
	return server
}
