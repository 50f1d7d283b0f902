package local

import (
	"context"

	"github.com/gotomicro/ego/core/elog"
	ca "github.com/patrickmn/go-cache"

	"hr-notification/internal/domain"
	"hr-notification/internal/repository/cache"
)

var _ cache.DirectoryCache = (*Cache)(nil)

// Cache 拍板人名单的本地缓存。
// 请求类事件每条都要做一次"全体拍板人"解析，不能每次都打数据库。
type Cache struct {
	localCache *ca.Cache
	logger     *elog.Component
}

func (c *Cache) GetPrivileged(_ context.Context) ([]domain.Employee, error) {
	v, ok := c.localCache.Get(cache.DirectoryKey)
	if !ok {
		return nil, cache.ErrKeyNotFound
	}
	employees, ok := v.([]domain.Employee)
	if !ok {
		return nil, cache.ErrKeyNotFound
	}
	return employees, nil
}

func (c *Cache) SetPrivileged(_ context.Context, employees []domain.Employee) error {
	c.localCache.Set(cache.DirectoryKey, employees, cache.DefaultExpiredTime)
	return nil
}

func (c *Cache) DelPrivileged(_ context.Context) error {
	c.localCache.Delete(cache.DirectoryKey)
	return nil
}

// NewCache 创建目录本地缓存
func NewCache() *Cache {
	return &Cache{
		localCache: ca.New(cache.DefaultExpiredTime, cache.DefaultExpiredTime),
		logger:     elog.DefaultLogger,
	}
}
