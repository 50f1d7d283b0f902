package domainevent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"hr-notification/internal/domain"
	"hr-notification/internal/service/bus"
)

var _ bus.Handler = (*Producer)(nil)

// Producer 把领域事件转投到kafka，消费者侧再走编排流程。
// 实现 bus.Handler，和进程内编排器可以互相替换。
type Producer struct {
	producer *kafka.Producer
	topic    string
}

// Handle 序列化并投递事件，同步等待broker确认
func (p *Producer) Handle(ctx context.Context, evt domain.DomainEvent) error {
	value, err := json.Marshal(toWire(evt))
	if err != nil {
		return fmt.Errorf("序列化领域事件失败: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topic,
			Partition: kafka.PartitionAny,
		},
		Key:   []byte(evt.PartitionKey()),
		Value: value,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("投递领域事件失败: %w", err)
	}

	select {
	case ev := <-deliveryChan:
		msg, ok := ev.(*kafka.Message)
		if !ok {
			return fmt.Errorf("非预期的kafka事件: %v", ev)
		}
		if msg.TopicPartition.Error != nil {
			return fmt.Errorf("投递领域事件失败: %w", msg.TopicPartition.Error)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// NewProducer 创建领域事件生产者
func NewProducer(producer *kafka.Producer) *Producer {
	return &Producer{
		producer: producer,
		topic:    EventName,
	}
}
