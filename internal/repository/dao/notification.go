package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
)

type notificationDAO struct {
	db *egorm.Component
}

// Upsert 插入或合并通知。并发安全依赖 aggregation_key 的唯一索引：
// 冲突时在同一条语句里完成 count 自增、状态重置和 actors 追加，
// 避免读-改-写丢失更新。合并后的行再按键读出来返回。
func (dao *notificationDAO) Upsert(ctx context.Context, data Notification, actorID string) (Notification, error) {
	now := time.Now().UnixMilli()
	data.Ctime, data.Utime = now, now

	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "aggregation_key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"cnt":    gorm.Expr("cnt + 1"),
			"status": domain.NotificationStatusUnread.String(),
			// 去重追加：触发者已经在列表里就原样保留，首次出现才追加到末尾
			"actors": gorm.Expr(
				"IF(JSON_CONTAINS(actors, JSON_QUOTE(?)), actors, JSON_ARRAY_APPEND(actors, '$', ?))",
				actorID, actorID,
			),
			"utime": now,
		}),
	}).Create(&data).Error
	if err != nil {
		return Notification{}, fmt.Errorf("合并通知失败: key=%s %w", data.AggregationKey, err)
	}

	return dao.GetByKey(ctx, data.AggregationKey)
}

// GetByKey 按聚合键查询通知
func (dao *notificationDAO) GetByKey(ctx context.Context, aggregationKey string) (Notification, error) {
	var notification Notification
	err := dao.db.WithContext(ctx).
		Where("aggregation_key = ?", aggregationKey).
		First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Notification{}, fmt.Errorf("%w: key=%s", errs.ErrNotificationNotFound, aggregationKey)
		}
		return Notification{}, err
	}
	return notification, nil
}

// ListByReceiver 接收者收件箱，按最近活动时间倒序
func (dao *notificationDAO) ListByReceiver(ctx context.Context, receiverID, receiverType string, offset, limit int) ([]Notification, error) {
	var notifications []Notification
	err := dao.db.WithContext(ctx).
		Where("receiver_id = ? AND receiver_type = ?", receiverID, receiverType).
		Order("utime DESC").
		Offset(offset).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("查询通知列表失败: %w", err)
	}
	return notifications, nil
}

func (dao *notificationDAO) CountUnreadByReceiver(ctx context.Context, receiverID, receiverType string) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&Notification{}).
		Where("receiver_id = ? AND receiver_type = ? AND status = ?",
			receiverID, receiverType, domain.NotificationStatusUnread.String()).
		Count(&count).Error
	return count, err
}

// MarkSeen 标记指定通知为已读。范围限定在接收者自己的行上，
// 已读的行再次标记是无操作而不是错误。
func (dao *notificationDAO) MarkSeen(ctx context.Context, receiverID, receiverType string, ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := dao.db.WithContext(ctx).Model(&Notification{}).
		Where("id IN ? AND receiver_id = ? AND receiver_type = ? AND status = ?",
			ids, receiverID, receiverType, domain.NotificationStatusUnread.String()).
		Updates(map[string]any{
			"status": domain.NotificationStatusSeen.String(),
			"utime":  time.Now().UnixMilli(),
		})
	return result.RowsAffected, result.Error
}

// MarkAllSeen 接收者一键全已读
func (dao *notificationDAO) MarkAllSeen(ctx context.Context, receiverID, receiverType string) (int64, error) {
	result := dao.db.WithContext(ctx).Model(&Notification{}).
		Where("receiver_id = ? AND receiver_type = ? AND status = ?",
			receiverID, receiverType, domain.NotificationStatusUnread.String()).
		Updates(map[string]any{
			"status": domain.NotificationStatusSeen.String(),
			"utime":  time.Now().UnixMilli(),
		})
	return result.RowsAffected, result.Error
}

// NewNotificationDAO 创建通知DAO实例
func NewNotificationDAO(db *egorm.Component) NotificationDAO {
	return &notificationDAO{
		db: db,
	}
}

// Notification 通知记录表，每个聚合键一行
type Notification struct {
	ID             uint64 `gorm:"primaryKey;comment:'雪花算法ID'"`
	AggregationKey string `gorm:"column:aggregation_key;type:VARCHAR(256);NOT NULL;uniqueIndex:idx_aggregation_key;comment:'聚合键，{接收者类型}_{接收者ID}:{事件类型}:{对象ID}'"`
	ReceiverID     string `gorm:"type:VARCHAR(64);NOT NULL;index:idx_receiver_status,priority:1;comment:'接收者ID'"`
	ReceiverType   string `gorm:"type:ENUM('ADMIN','EMPLOYEE');NOT NULL;index:idx_receiver_status,priority:2;comment:'接收者类型'"`
	Type           string `gorm:"type:VARCHAR(64);NOT NULL;comment:'事件类型'"`
	TargetID       string `gorm:"type:VARCHAR(64);NOT NULL;comment:'业务对象ID'"`
	TargetType     string `gorm:"type:VARCHAR(32);NOT NULL;comment:'业务对象类型'"`
	Actors         string `gorm:"type:JSON;NOT NULL;comment:'贡献过事件的触发者，JSON数组，按首次出现顺序去重'"`
	Count          int64  `gorm:"column:cnt;type:BIGINT;NOT NULL;DEFAULT:1;comment:'合并进来的事件数'"`
	Status         string `gorm:"type:ENUM('UNREAD','SEEN');DEFAULT:'UNREAD';index:idx_receiver_status,priority:3;comment:'已读状态，每次合并重置回UNREAD'"`
	Ctime          int64
	Utime          int64
}

func (n *Notification) TableName() string {
	return "notification"
}
