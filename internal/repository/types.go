package repository

import (
	"context"

	"hr-notification/internal/domain"
)

//go:generate mockgen -source=./types.go -destination=./mocks/repository.mock.go -package=repomocks EventRepository,NotificationRepository,DirectoryRepository

type EventRepository interface {
	// Create 持久化事件审计记录
	Create(ctx context.Context, evt domain.DomainEvent) (domain.DomainEvent, error)
}

type NotificationRepository interface {
	// Upsert 按聚合键创建或合并通知，返回合并后的行
	Upsert(ctx context.Context, evt domain.DomainEvent, receiver domain.Receiver, aggregationKey string) (domain.Notification, error)
	// ListByReceiver 收件箱分页，按最近活动倒序
	ListByReceiver(ctx context.Context, receiver domain.Receiver, offset, limit int) ([]domain.Notification, error)
	// UnreadCount 未读数，读穿缓存
	UnreadCount(ctx context.Context, receiver domain.Receiver) (int64, error)
	// MarkSeen 标记指定通知已读，幂等
	MarkSeen(ctx context.Context, receiver domain.Receiver, ids []uint64) error
	// MarkAllSeen 标记接收者全部未读为已读
	MarkAllSeen(ctx context.Context, receiver domain.Receiver) error
}

type DirectoryRepository interface {
	// FindPrivilegedActive 全体在职拍板人，走本地缓存
	FindPrivilegedActive(ctx context.Context) ([]domain.Employee, error)
	// GetEmployee 按ID查员工
	GetEmployee(ctx context.Context, id int64) (domain.Employee, error)
	// LoadCache 整体重载拍板人名单缓存，给定时任务用
	LoadCache(ctx context.Context) error
}
