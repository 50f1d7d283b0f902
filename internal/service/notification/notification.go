package notification

import (
	"context"
	"fmt"

	"hr-notification/internal/domain"
	"hr-notification/internal/errs"
	"hr-notification/internal/repository"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// notificationService 收件箱服务实现
type notificationService struct {
	repo repository.NotificationRepository
}

func (s *notificationService) ListByReceiver(ctx context.Context, receiver domain.Receiver, offset, limit int) ([]domain.Notification, error) {
	if receiver.IsZero() {
		return nil, fmt.Errorf("%w: 接收者为空", errs.ErrInvalidParameter)
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.ListByReceiver(ctx, receiver, offset, limit)
}

func (s *notificationService) UnreadCount(ctx context.Context, receiver domain.Receiver) (int64, error) {
	if receiver.IsZero() {
		return 0, fmt.Errorf("%w: 接收者为空", errs.ErrInvalidParameter)
	}
	return s.repo.UnreadCount(ctx, receiver)
}

// MarkSeen ids为空时整个收件箱一键已读
func (s *notificationService) MarkSeen(ctx context.Context, receiver domain.Receiver, ids []uint64) error {
	if receiver.IsZero() {
		return fmt.Errorf("%w: 接收者为空", errs.ErrInvalidParameter)
	}
	if len(ids) == 0 {
		return s.repo.MarkAllSeen(ctx, receiver)
	}
	return s.repo.MarkSeen(ctx, receiver, ids)
}

// NewService 创建收件箱服务实例
func NewService(repo repository.NotificationRepository) Service {
	return &notificationService{
		repo: repo,
	}
}
