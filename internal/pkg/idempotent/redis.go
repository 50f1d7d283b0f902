package idempotent

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisIdempotencyService struct {
	client redis.Cmdable
	expiry time.Duration
}

// Exists 基于 SetNX：第一次看到键时抢占成功返回 false，
// 之后在过期窗口内都返回 true
func (c *RedisIdempotencyService) Exists(ctx context.Context, key string) (bool, error) {
	result, err := c.client.SetNX(ctx, c.getKey(key), "1", c.expiry).Result()
	if err != nil {
		return false, err
	}
	return !result, nil
}

func (c *RedisIdempotencyService) getKey(key string) string {
	return fmt.Sprintf("idempotency:%s", key)
}

// NewRedisIdempotencyService 创建一个新的Redis幂等性服务
func NewRedisIdempotencyService(client redis.Cmdable, expiry time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client: client,
		expiry: expiry,
	}
}
