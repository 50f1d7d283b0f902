package bus

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/domain"
	"hr-notification/internal/pkg/idgenerator"
	"hr-notification/internal/repository"
)

// eventBus 事件总线实现。
// 通知是业务事务提交之后的附带效果，发布边界上除了入参校验，
// 任何失败都只记日志不回抛：丢一条通知不能让触发它的业务操作失败。
type eventBus struct {
	repo    repository.EventRepository
	handler Handler
	idGen   *idgenerator.Generator
	logger  *elog.Component
}

func (b *eventBus) Publish(ctx context.Context, evt domain.DomainEvent) (domain.DomainEvent, error) {
	if err := evt.Validate(); err != nil {
		return domain.DomainEvent{}, err
	}

	if evt.ID == 0 {
		evt.ID = b.idGen.NextID()
	}
	if evt.Ctime == 0 {
		evt.Ctime = time.Now().UnixMilli()
	}
	if evt.Metadata == nil {
		evt.Metadata = map[string]string{}
	}

	created, err := b.repo.Create(ctx, evt)
	if err != nil {
		// 审计记录写失败不阻断流水线，后面还有机会送达
		b.logger.Error("写入事件审计记录失败",
			elog.FieldErr(err),
			elog.String("eventType", evt.Type),
			elog.String("targetId", evt.TargetID))
		created = evt
	}

	if err := b.handler.Handle(ctx, created); err != nil {
		b.logger.Error("处理领域事件失败",
			elog.FieldErr(err),
			elog.String("eventType", created.Type),
			elog.String("targetId", created.TargetID))
	}

	return created, nil
}

// NewEventBus 创建事件总线实例
func NewEventBus(repo repository.EventRepository, handler Handler, idGen *idgenerator.Generator) EventBus {
	return &eventBus{
		repo:    repo,
		handler: handler,
		idGen:   idGen,
		logger:  elog.DefaultLogger,
	}
}
