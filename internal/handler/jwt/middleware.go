package jwt

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
)

const subjectKey = "hr-notification:subject"

// Middleware 解析 Authorization 头，把接收者身份挂到请求上下文。
// token也接受 query 参数传入，浏览器的 EventSource 不能带自定义头。
func (s *TokenService) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		receiver, err := s.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(subjectKey, receiver)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return after
	}
	return c.Query("token")
}

// SubjectFromContext 取出中间件写入的接收者身份
func SubjectFromContext(c *gin.Context) (domain.Receiver, error) {
	val, ok := c.Get(subjectKey)
	if !ok {
		return domain.Receiver{}, errs.ErrUnauthorized
	}
	receiver, ok := val.(domain.Receiver)
	if !ok || receiver.IsZero() {
		return domain.Receiver{}, errs.ErrUnauthorized
	}
	return receiver, nil
}
