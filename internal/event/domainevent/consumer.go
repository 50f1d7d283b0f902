package domainevent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/gotomicro/ego/core/elog"

	"hr-notification/internal/pkg/idempotent"
	"hr-notification/internal/service/bus"
)

const defaultPollTimeoutMs = 1000

// EventConsumer 从kafka拉取领域事件，去重后交给编排器。
// kafka至少投递一次，重复消息靠事件ID上的幂等检查挡掉。
type EventConsumer struct {
	consumer   *kafka.Consumer
	handler    bus.Handler
	idempotent idempotent.IdempotencyService
	logger     *elog.Component
}

func (c *EventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				c.logger.Info("领域事件消费者退出")
				return
			default:
			}
			if err := c.Consume(ctx); err != nil {
				c.logger.Error("消费领域事件失败", elog.FieldErr(err))
			}
		}
	}()
}

// Consume 处理单条消息
func (c *EventConsumer) Consume(ctx context.Context) error {
	ev := c.consumer.Poll(defaultPollTimeoutMs)
	if ev == nil {
		return nil
	}

	switch e := ev.(type) {
	case *kafka.Message:
		if err := c.processMessage(ctx, e); err != nil {
			c.logger.Error("处理领域事件消息失败",
				elog.FieldErr(err),
				elog.String("topic", *e.TopicPartition.Topic),
				elog.String("offset", e.TopicPartition.Offset.String()))
			return err
		}
		if _, err := c.consumer.CommitMessage(e); err != nil {
			return fmt.Errorf("提交消息失败: %w", err)
		}
	case kafka.Error:
		return fmt.Errorf("kafka错误: %w", e)
	}
	return nil
}

func (c *EventConsumer) processMessage(ctx context.Context, msg *kafka.Message) error {
	var evt DomainEvent
	if err := json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("反序列化领域事件失败: %w", err)
	}

	exists, err := c.idempotent.Exists(ctx, strconv.FormatUint(evt.ID, 10))
	if err != nil {
		// 幂等检查失败宁可重复处理，合并写本身可重入
		c.logger.Warn("幂等检查失败，继续处理",
			elog.FieldErr(err),
			elog.Any("eventId", evt.ID))
	} else if exists {
		c.logger.Info("重复的领域事件，跳过",
			elog.Any("eventId", evt.ID),
			elog.String("eventType", evt.Type))
		return nil
	}

	return c.handler.Handle(ctx, evt.toDomain())
}

// NewEventConsumer 创建领域事件消费者
func NewEventConsumer(consumer *kafka.Consumer, handler bus.Handler, svc idempotent.IdempotencyService) *EventConsumer {
	return &EventConsumer{
		consumer:   consumer,
		handler:    handler,
		idempotent: svc,
		logger:     elog.DefaultLogger,
	}
}
