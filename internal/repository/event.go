package repository

import (
	"context"
	"encoding/json"

	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/domain"
	"hr-notification/internal/repository/dao"
)

// eventRepository 事件审计仓储实现
type eventRepository struct {
	dao    dao.EventDAO
	logger *elog.Component
}

func (repo *eventRepository) Create(ctx context.Context, evt domain.DomainEvent) (domain.DomainEvent, error) {
	entity, err := repo.toEntity(evt)
	if err != nil {
		return domain.DomainEvent{}, err
	}
	created, err := repo.dao.Create(ctx, entity)
	if err != nil {
		return domain.DomainEvent{}, err
	}
	return repo.toDomain(created), nil
}

func (repo *eventRepository) toEntity(evt domain.DomainEvent) (dao.Event, error) {
	metadata, err := evt.MarshalMetadata()
	if err != nil {
		return dao.Event{}, err
	}
	return dao.Event{
		ID:         evt.ID,
		Type:       evt.Type,
		ActorID:    evt.ActorID,
		TargetID:   evt.TargetID,
		TargetType: evt.TargetType,
		Metadata:   metadata,
		Ctime:      evt.Ctime,
	}, nil
}

func (repo *eventRepository) toDomain(e dao.Event) domain.DomainEvent {
	var metadata map[string]string
	_ = json.Unmarshal([]byte(e.Metadata), &metadata)
	return domain.DomainEvent{
		ID:         e.ID,
		Type:       e.Type,
		ActorID:    e.ActorID,
		TargetID:   e.TargetID,
		TargetType: e.TargetType,
		Metadata:   metadata,
		Ctime:      e.Ctime,
	}
}

// NewEventRepository 创建事件仓储实例
func NewEventRepository(d dao.EventDAO) EventRepository {
	return &eventRepository{
		dao:    d,
		logger: elog.DefaultLogger,
	}
}
