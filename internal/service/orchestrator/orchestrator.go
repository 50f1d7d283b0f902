package orchestrator

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/hashicorp/go-multierror"

	"hr-notification/internal/domain"
	"hr-notification/internal/repository"
	"hr-notification/internal/service/push"
	"hr-notification/internal/service/render"
	"hr-notification/internal/service/rule"
)

// Orchestrator 每个事件走一遍：
// 查规则 → 解析接收者 → 逐接收者合并入库 → 渲染 → 推送。
// 任一接收者的失败只影响它自己，不阻断对其他接收者的投递，
// 也永远不会回抛到发布事件的业务操作里。
type Orchestrator struct {
	registry *rule.Registry
	repo     repository.NotificationRepository
	gateway  push.Gateway
	logger   *elog.Component
}

func (o *Orchestrator) Handle(ctx context.Context, evt domain.DomainEvent) error {
	r, ok := o.registry.Rule(evt.Type)
	if !ok {
		// 未注册的事件类型静默跳过，对业务新事件向前兼容
		return nil
	}

	receivers, err := r.ResolveReceivers(ctx, evt)
	if err != nil {
		// 目录不可用降级为空接收者集
		o.logger.Error("解析接收者失败，跳过本次事件",
			elog.FieldErr(err),
			elog.String("eventType", evt.Type),
			elog.String("targetId", evt.TargetID))
		return nil
	}

	var errSum *multierror.Error
	for _, receiver := range receivers {
		if err := o.deliver(ctx, evt, r, receiver); err != nil {
			errSum = multierror.Append(errSum, err)
		}
	}

	if err := errSum.ErrorOrNil(); err != nil {
		o.logger.Error("部分接收者投递失败",
			elog.FieldErr(err),
			elog.String("eventType", evt.Type),
			elog.String("targetId", evt.TargetID),
			elog.Int("receivers", len(receivers)))
		return err
	}
	return nil
}

func (o *Orchestrator) deliver(ctx context.Context, evt domain.DomainEvent, r rule.NotificationRule, receiver domain.Receiver) error {
	key := r.AggregationKey(evt, receiver)

	notification, err := o.repo.Upsert(ctx, evt, receiver, key)
	if err != nil {
		// 落库失败只跳过这个接收者，不做同步重试
		return fmt.Errorf("合并通知失败: receiver=%s_%s %w", receiver.Type, receiver.ID, err)
	}

	message := render.Render(notification)
	o.gateway.Push(receiver.Type, receiver.ID, push.Payload{
		Notification: notification,
		Message:      message,
	})
	return nil
}

// NewOrchestrator 创建编排器实例
func NewOrchestrator(registry *rule.Registry, repo repository.NotificationRepository, gateway push.Gateway) *Orchestrator {
	return &Orchestrator{
		registry: registry,
		repo:     repo,
		gateway:  gateway,
		logger:   elog.DefaultLogger,
	}
}
