package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-notification/internal/domain"
)

var ErrKeyNotFound = errors.New("key 不存在")

const (
	UnreadCountPrefix  = "notification:unread"
	DirectoryKey       = "directory:privileged"
	DefaultExpiredTime = 10 * time.Minute
)

// UnreadCountCache 接收者未读数缓存。写路径（合并/标记已读）负责失效，
// 读路径回源后写入。
type UnreadCountCache interface {
	Get(ctx context.Context, receiver domain.Receiver) (int64, error)
	Set(ctx context.Context, receiver domain.Receiver, count int64) error
	Del(ctx context.Context, receiver domain.Receiver) error
}

// DirectoryCache 拍板人名单的进程本地缓存，定时任务整体重载
type DirectoryCache interface {
	GetPrivileged(ctx context.Context) ([]domain.Employee, error)
	SetPrivileged(ctx context.Context, employees []domain.Employee) error
	DelPrivileged(ctx context.Context) error
}

func UnreadCountKey(receiver domain.Receiver) string {
	return fmt.Sprintf("%s:%s_%s", UnreadCountPrefix, receiver.Type, receiver.ID)
}
