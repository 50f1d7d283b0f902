package bus

import (
	"context"

	"hr-notification/internal/domain"
)

// Handler 消费一条已持久化的领域事件。
// 编排器直接实现它（同进程内联处理），
// Kafka生产者也实现它（跨进程异步交接）。
type Handler interface {
	Handle(ctx context.Context, evt domain.DomainEvent) error
}

//go:generate mockgen -source=./types.go -destination=./mocks/bus.mock.go -package=busmocks EventBus

// EventBus 业务代码发布领域事件的唯一入口
type EventBus interface {
	Publish(ctx context.Context, evt domain.DomainEvent) (domain.DomainEvent, error)
}
