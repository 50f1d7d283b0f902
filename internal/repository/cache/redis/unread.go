package redis

import (
	"context"
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/redis/go-redis/v9"

	"hr-notification/internal/domain"
	"hr-notification/internal/repository/cache"
)

var _ cache.UnreadCountCache = (*unreadCountCache)(nil)

type unreadCountCache struct {
	client redis.Cmdable
	logger *elog.Component
}

func (c *unreadCountCache) Get(ctx context.Context, receiver domain.Receiver) (int64, error) {
	count, err := c.client.Get(ctx, cache.UnreadCountKey(receiver)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, cache.ErrKeyNotFound
		}
		return 0, err
	}
	return count, nil
}

func (c *unreadCountCache) Set(ctx context.Context, receiver domain.Receiver, count int64) error {
	return c.client.Set(ctx, cache.UnreadCountKey(receiver), count, cache.DefaultExpiredTime).Err()
}

func (c *unreadCountCache) Del(ctx context.Context, receiver domain.Receiver) error {
	return c.client.Del(ctx, cache.UnreadCountKey(receiver)).Err()
}

// NewUnreadCountCache 创建未读数Redis缓存
func NewUnreadCountCache(client redis.Cmdable) cache.UnreadCountCache {
	return &unreadCountCache{
		client: client,
		logger: elog.DefaultLogger,
	}
}
