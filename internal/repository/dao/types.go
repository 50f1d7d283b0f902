package dao

import (
	"context"
)

type EventDAO interface {
	// Create 追加一条事件审计记录，记录一经写入不再修改
	Create(ctx context.Context, data Event) (Event, error)
	// GetByID 按事件ID查询审计记录
	GetByID(ctx context.Context, id uint64) (Event, error)
}

type NotificationDAO interface {
	// Upsert 按聚合键插入或合并通知，单条条件写，不做读后写。
	// actorID 是本次事件的触发者，冲突时用 JSON 函数按需追加进 actors。
	Upsert(ctx context.Context, data Notification, actorID string) (Notification, error)
	// GetByKey 按聚合键查询
	GetByKey(ctx context.Context, aggregationKey string) (Notification, error)
	// ListByReceiver 接收者收件箱，按 utime 倒序分页
	ListByReceiver(ctx context.Context, receiverID, receiverType string, offset, limit int) ([]Notification, error)
	// CountUnreadByReceiver 接收者未读数
	CountUnreadByReceiver(ctx context.Context, receiverID, receiverType string) (int64, error)
	// MarkSeen 把接收者名下指定的通知标记为已读，返回实际更新行数
	MarkSeen(ctx context.Context, receiverID, receiverType string, ids []uint64) (int64, error)
	// MarkAllSeen 把接收者名下全部未读通知标记为已读
	MarkAllSeen(ctx context.Context, receiverID, receiverType string) (int64, error)
}

type EmployeeDAO interface {
	// FindActiveByRoles 查询在职且角色命中的员工
	FindActiveByRoles(ctx context.Context, roles []string) ([]Employee, error)
	// GetByID 按员工ID查询
	GetByID(ctx context.Context, id int64) (Employee, error)
}
