package notification

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
	"hr-notification/internal/handler/jwt"
	"hr-notification/internal/service/bus"
	notificationsvc "hr-notification/internal/service/notification"
	"hr-notification/internal/service/render"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	bus bus.EventBus
	svc notificationsvc.Service
}

func NewHandler(eventBus bus.EventBus, svc notificationsvc.Service) *Handler {
	return &Handler{
		bus: eventBus,
		svc: svc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 业务服务内部调用，部署层面不对外暴露
	server.POST("/api/events", ginx.B[PublishEventReq](h.PublishEvent))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/api/notifications", ginx.W(h.List))
	server.GET("/api/notifications/unread-count", ginx.W(h.UnreadCount))
	server.POST("/api/notifications/seen", ginx.B[MarkSeenReq](h.MarkSeen))
}

// PublishEvent 业务动作发生后投递领域事件
func (h *Handler) PublishEvent(ctx *ginx.Context, req PublishEventReq) (ginx.Result, error) {
	created, err := h.bus.Publish(ctx.Request.Context(), domain.DomainEvent{
		Type:       req.Type,
		ActorID:    req.ActorID,
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		Metadata:   req.Metadata,
	})
	if err != nil {
		if errors.Is(err, errs.ErrInvalidParameter) {
			return invalidInputResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PublishEventResp{
			EventID: created.ID,
		},
	}, nil
}

// List 收件箱分页
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	receiver, err := jwt.SubjectFromContext(ctx.Context)
	if err != nil {
		return unauthorizedResult, err
	}

	offset, _ := strconv.Atoi(ctx.Query("offset"))
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	notifications, err := h.svc.ListByReceiver(ctx.Request.Context(), receiver, offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Notifications: slice.Map(notifications, func(_ int, src domain.Notification) Notification {
				return h.toVO(src)
			}),
		},
	}, nil
}

// UnreadCount 未读数角标
func (h *Handler) UnreadCount(ctx *ginx.Context) (ginx.Result, error) {
	receiver, err := jwt.SubjectFromContext(ctx.Context)
	if err != nil {
		return unauthorizedResult, err
	}

	count, err := h.svc.UnreadCount(ctx.Request.Context(), receiver)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: UnreadCountResp{
			Count: count,
		},
	}, nil
}

// MarkSeen 标记已读
func (h *Handler) MarkSeen(ctx *ginx.Context, req MarkSeenReq) (ginx.Result, error) {
	receiver, err := jwt.SubjectFromContext(ctx.Context)
	if err != nil {
		return unauthorizedResult, err
	}

	if err := h.svc.MarkSeen(ctx.Request.Context(), receiver, req.IDs); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) toVO(src domain.Notification) Notification {
	return Notification{
		ID:      src.ID,
		Type:    src.Type,
		Message: render.Render(src),
		Actors:  src.Actors,
		Count:   src.Count,
		Status:  src.Status.String(),
		Utime:   src.Utime,
	}
}
