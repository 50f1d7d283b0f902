package idempotent

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyService_Exists(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	service := NewRedisIdempotencyService(client, time.Minute)

	ctx := t.Context()

	// 第一次调用，键不应该存在
	exists, err := service.Exists(ctx, "evt-1001")
	require.NoError(t, err)
	assert.False(t, exists)

	// 第二次调用，键已经被占用
	exists, err = service.Exists(ctx, "evt-1001")
	require.NoError(t, err)
	assert.True(t, exists)

	// 不同的键互不影响
	exists, err = service.Exists(ctx, "evt-1002")
	require.NoError(t, err)
	assert.False(t, exists)

	// 过期之后重新可用
	mr.FastForward(2 * time.Minute)
	exists, err = service.Exists(ctx, "evt-1001")
	require.NoError(t, err)
	assert.False(t, exists)
}
