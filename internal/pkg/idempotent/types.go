package idempotent

import "context"

// IdempotencyService 幂等性检查。
// Exists 返回 true 表示这个键已经被处理过，调用方应当跳过。
type IdempotencyService interface {
	Exists(ctx context.Context, key string) (bool, error)
}
