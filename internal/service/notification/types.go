package notification

import (
	"context"

	"hr-notification/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/notification.mock.go -package=notificationmocks Service

// Service 收件箱服务，给通知列表UI用。
// 推送是尽力而为的，这条读路径才是兜底的事实来源。
type Service interface {
	// ListByReceiver 收件箱分页，按最近活动倒序
	ListByReceiver(ctx context.Context, receiver domain.Receiver, offset, limit int) ([]domain.Notification, error)
	// UnreadCount 未读数
	UnreadCount(ctx context.Context, receiver domain.Receiver) (int64, error)
	// MarkSeen 标记指定通知已读；ids为空时全量标记
	MarkSeen(ctx context.Context, receiver domain.Receiver, ids []uint64) error
}
