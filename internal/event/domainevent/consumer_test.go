package domainevent

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-notification/internal/domain"
	"hr-notification/internal/pkg/idempotent"
)

type countingHandler struct {
	count int
	last  domain.DomainEvent
}

func (h *countingHandler) Handle(_ context.Context, evt domain.DomainEvent) error {
	h.count++
	h.last = evt
	return nil
}

func newTestMessage(t *testing.T, evt DomainEvent) *kafka.Message {
	t.Helper()
	value, err := json.Marshal(evt)
	require.NoError(t, err)
	topic := EventName
	return &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic},
		Value:          value,
	}
}

func TestProcessMessage_DeduplicatesByEventID(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	handler := &countingHandler{}
	consumer := NewEventConsumer(nil, handler, idempotent.NewRedisIdempotencyService(client, time.Minute))

	evt := DomainEvent{
		ID:         101,
		Type:       domain.EventTypeLeaveRequested,
		ActorID:    "E1",
		TargetID:   "77",
		TargetType: "LEAVE",
	}

	// 同一事件重复投递两次，只处理一次
	require.NoError(t, consumer.processMessage(t.Context(), newTestMessage(t, evt)))
	require.NoError(t, consumer.processMessage(t.Context(), newTestMessage(t, evt)))

	assert.Equal(t, 1, handler.count)
	assert.Equal(t, uint64(101), handler.last.ID)
	assert.Equal(t, domain.EventTypeLeaveRequested, handler.last.Type)

	// 不同事件正常处理
	evt.ID = 102
	require.NoError(t, consumer.processMessage(t.Context(), newTestMessage(t, evt)))
	assert.Equal(t, 2, handler.count)
}

func TestProcessMessage_MalformedPayload(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	handler := &countingHandler{}
	consumer := NewEventConsumer(nil, handler, idempotent.NewRedisIdempotencyService(client, time.Minute))

	topic := EventName
	err := consumer.processMessage(t.Context(), &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic},
		Value:          []byte("not-json"),
	})

	assert.Error(t, err)
	assert.Equal(t, 0, handler.count)
}
