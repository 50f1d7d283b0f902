package bus

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"hr-notification/internal/domain"
)

// TracingEventBus 为事件总线添加链路追踪的装饰器
type TracingEventBus struct {
	bus    EventBus
	tracer trace.Tracer
}

func (t *TracingEventBus) Publish(ctx context.Context, evt domain.DomainEvent) (domain.DomainEvent, error) {
	ctx, span := t.tracer.Start(ctx, "EventBus.Publish",
		trace.WithAttributes(
			attribute.String("event.type", evt.Type),
			attribute.String("event.actorId", evt.ActorID),
			attribute.String("event.targetId", evt.TargetID),
			attribute.String("event.targetType", evt.TargetType),
		))
	defer span.End()

	created, err := t.bus.Publish(ctx, evt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return created, err
}

// NewTracingEventBus 创建一个带有链路追踪的事件总线
func NewTracingEventBus(bus EventBus) *TracingEventBus {
	return &TracingEventBus{
		bus:    bus,
		tracer: otel.Tracer("hr-notification/bus"),
	}
}
