package domainevent

import (
	"hr-notification/internal/domain"
)

const (
	// EventName 领域事件主题。按 (事件类型, 业务对象) 作分区键，
	// 同一个聚合键的事件总是落在同一分区，消费侧天然按序
	EventName = "hr_domain_events"
)

// DomainEvent 领域事件的线上格式
type DomainEvent struct {
	ID         uint64            `json:"id"`
	Type       string            `json:"type"`
	ActorID    string            `json:"actorId"`
	TargetID   string            `json:"targetId"`
	TargetType string            `json:"targetType"`
	Metadata   map[string]string `json:"metadata"`
	Ctime      int64             `json:"ctime"`
}

func toWire(evt domain.DomainEvent) DomainEvent {
	return DomainEvent{
		ID:         evt.ID,
		Type:       evt.Type,
		ActorID:    evt.ActorID,
		TargetID:   evt.TargetID,
		TargetType: evt.TargetType,
		Metadata:   evt.Metadata,
		Ctime:      evt.Ctime,
	}
}

func (e DomainEvent) toDomain() domain.DomainEvent {
	return domain.DomainEvent{
		ID:         e.ID,
		Type:       e.Type,
		ActorID:    e.ActorID,
		TargetID:   e.TargetID,
		TargetType: e.TargetType,
		Metadata:   e.Metadata,
		Ctime:      e.Ctime,
	}
}
