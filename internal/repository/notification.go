package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/domain"
	"hr-notification/internal/pkg/idgenerator"
	"hr-notification/internal/repository/cache"
	"hr-notification/internal/repository/dao"
)

// notificationRepository 通知仓储实现
type notificationRepository struct {
	dao         dao.NotificationDAO
	unreadCache cache.UnreadCountCache
	idGen       *idgenerator.Generator
	logger      *elog.Component
}

// Upsert 创建或合并通知。预生成的雪花ID只在首次创建时生效，
// 合并路径下直接被唯一索引冲突丢弃。
func (repo *notificationRepository) Upsert(ctx context.Context, evt domain.DomainEvent, receiver domain.Receiver, aggregationKey string) (domain.Notification, error) {
	candidate := domain.Notification{
		ID:             repo.idGen.NextID(),
		AggregationKey: aggregationKey,
		ReceiverID:     receiver.ID,
		ReceiverType:   receiver.Type,
		Type:           evt.Type,
		TargetID:       evt.TargetID,
		TargetType:     evt.TargetType,
		Actors:         []string{evt.ActorID},
		Count:          1,
		Status:         domain.NotificationStatusUnread,
	}
	entity, err := repo.toEntity(candidate)
	if err != nil {
		return domain.Notification{}, err
	}

	merged, err := repo.dao.Upsert(ctx, entity, evt.ActorID)
	if err != nil {
		return domain.Notification{}, err
	}

	// 未读数变了，缓存失效交给下一次读回源
	repo.invalidateUnread(ctx, receiver)

	return repo.toDomain(merged), nil
}

func (repo *notificationRepository) ListByReceiver(ctx context.Context, receiver domain.Receiver, offset, limit int) ([]domain.Notification, error) {
	entities, err := repo.dao.ListByReceiver(ctx, receiver.ID, receiver.Type.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	notifications := make([]domain.Notification, 0, len(entities))
	for idx := range entities {
		notifications = append(notifications, repo.toDomain(entities[idx]))
	}
	return notifications, nil
}

func (repo *notificationRepository) UnreadCount(ctx context.Context, receiver domain.Receiver) (int64, error) {
	count, err := repo.unreadCache.Get(ctx, receiver)
	if err == nil {
		return count, nil
	}
	if !errors.Is(err, cache.ErrKeyNotFound) {
		repo.logger.Warn("读取未读数缓存失败",
			elog.FieldErr(err),
			elog.String("receiverId", receiver.ID))
	}

	count, err = repo.dao.CountUnreadByReceiver(ctx, receiver.ID, receiver.Type.String())
	if err != nil {
		return 0, err
	}
	if err := repo.unreadCache.Set(ctx, receiver, count); err != nil {
		repo.logger.Warn("回填未读数缓存失败",
			elog.FieldErr(err),
			elog.String("receiverId", receiver.ID))
	}
	return count, nil
}

func (repo *notificationRepository) MarkSeen(ctx context.Context, receiver domain.Receiver, ids []uint64) error {
	_, err := repo.dao.MarkSeen(ctx, receiver.ID, receiver.Type.String(), ids)
	if err != nil {
		return err
	}
	repo.invalidateUnread(ctx, receiver)
	return nil
}

func (repo *notificationRepository) MarkAllSeen(ctx context.Context, receiver domain.Receiver) error {
	_, err := repo.dao.MarkAllSeen(ctx, receiver.ID, receiver.Type.String())
	if err != nil {
		return err
	}
	repo.invalidateUnread(ctx, receiver)
	return nil
}

func (repo *notificationRepository) invalidateUnread(ctx context.Context, receiver domain.Receiver) {
	if err := repo.unreadCache.Del(ctx, receiver); err != nil {
		repo.logger.Warn("失效未读数缓存失败",
			elog.FieldErr(err),
			elog.String("receiverId", receiver.ID))
	}
}

// toEntity 将领域对象转换为DAO实体
func (repo *notificationRepository) toEntity(n domain.Notification) (dao.Notification, error) {
	actors, err := n.MarshalActors()
	if err != nil {
		return dao.Notification{}, err
	}
	return dao.Notification{
		ID:             n.ID,
		AggregationKey: n.AggregationKey,
		ReceiverID:     n.ReceiverID,
		ReceiverType:   n.ReceiverType.String(),
		Type:           n.Type,
		TargetID:       n.TargetID,
		TargetType:     n.TargetType,
		Actors:         actors,
		Count:          n.Count,
		Status:         n.Status.String(),
		Ctime:          n.Ctime,
		Utime:          n.Utime,
	}, nil
}

// toDomain 将DAO实体转换为领域对象
func (repo *notificationRepository) toDomain(n dao.Notification) domain.Notification {
	var actors []string
	_ = json.Unmarshal([]byte(n.Actors), &actors)

	return domain.Notification{
		ID:             n.ID,
		AggregationKey: n.AggregationKey,
		ReceiverID:     n.ReceiverID,
		ReceiverType:   domain.ReceiverType(n.ReceiverType),
		Type:           n.Type,
		TargetID:       n.TargetID,
		TargetType:     n.TargetType,
		Actors:         actors,
		Count:          n.Count,
		Status:         domain.NotificationStatus(n.Status),
		Ctime:          n.Ctime,
		Utime:          n.Utime,
	}
}

// NewNotificationRepository 创建通知仓储实例
func NewNotificationRepository(d dao.NotificationDAO, unreadCache cache.UnreadCountCache, idGen *idgenerator.Generator) NotificationRepository {
	return &notificationRepository{
		dao:         d,
		unreadCache: unreadCache,
		idGen:       idGen,
		logger:      elog.DefaultLogger,
	}
}
