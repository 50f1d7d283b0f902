package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/handler/jwt"
	"hr-notification/internal/service/push"
)

const heartbeatInterval = 30 * time.Second

var _ ginx.Handler = &Handler{}

// Handler 实时推送通道，SSE长连接。
// 每个连接注册到推送网关，断开即注销，离线消息不补发，收件箱兜底。
type Handler struct {
	gateway push.Gateway
	logger  *elog.Component
}

func NewHandler(gateway push.Gateway) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/notifications/stream", h.Stream)
}

// Notification 推送给浏览器的事件体
type Notification struct {
	ID         uint64   `json:"id"`
	Type       string   `json:"type"`
	TargetID   string   `json:"targetId"`
	TargetType string   `json:"targetType"`
	Message    string   `json:"message"`
	Actors     []string `json:"actors"`
	Count      int64    `json:"count"`
	Status     string   `json:"status"`
	Ctime      int64    `json:"ctime"`
	Utime      int64    `json:"utime"`
}

func (h *Handler) Stream(c *gin.Context) {
	receiver, err := jwt.SubjectFromContext(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	// 反向代理不要缓冲SSE响应
	c.Header("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
	flusher.Flush()

	conn := h.gateway.Register(receiver.Type, receiver.ID)
	defer h.gateway.Deregister(conn)

	h.logger.Info("推送连接建立",
		elog.String("receiverType", receiver.Type.String()),
		elog.String("receiverId", receiver.ID))

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			h.logger.Info("推送连接断开",
				elog.String("receiverType", receiver.Type.String()),
				elog.String("receiverId", receiver.ID))
			return
		case payload, ok := <-conn.C():
			if !ok {
				// 网关关闭，服务端主动结束连接
				return
			}
			if err := h.writeEvent(c, payload); err != nil {
				h.logger.Warn("写入推送消息失败", elog.FieldErr(err))
				return
			}
			flusher.Flush()
		case <-ticker.C:
			// 心跳注释行，探测死连接并防止中间层超时掐断
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func (h *Handler) writeEvent(c *gin.Context, payload push.Payload) error {
	data, err := json.Marshal(h.toVO(payload))
	if err != nil {
		return fmt.Errorf("序列化推送消息失败: %w", err)
	}
	_, err = fmt.Fprintf(c.Writer, "event: notification\ndata: %s\n\n", data)
	return err
}

func (h *Handler) toVO(payload push.Payload) Notification {
	src := payload.Notification
	return Notification{
		ID:         src.ID,
		Type:       src.Type,
		TargetID:   src.TargetID,
		TargetType: src.TargetType,
		Message:    payload.Message,
		Actors:     src.Actors,
		Count:      src.Count,
		Status:     src.Status.String(),
		Ctime:      src.Ctime,
		Utime:      src.Utime,
	}
}
