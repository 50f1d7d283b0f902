package rule

import (
	"context"
	"fmt"

	"hr-notification/internal/domain"
)

// NotificationRule 一类事件的通知规则：解析接收者，计算聚合键。
// ResolveReceivers 返回空列表表示本次事件无人接收，是合法的跳过而不是错误。
type NotificationRule interface {
	ResolveReceivers(ctx context.Context, evt domain.DomainEvent) ([]domain.Receiver, error)
	AggregationKey(evt domain.DomainEvent, receiver domain.Receiver) string
}

// aggregationKey 规范形式：{接收者类型}_{接收者ID}:{事件类型}:{对象ID}。
// 同一接收者、同一事件类型、同一业务对象永远落到同一条通知上，
// 这就是整个子系统要实现的聚合契约。
func aggregationKey(evt domain.DomainEvent, receiver domain.Receiver) string {
	return fmt.Sprintf("%s_%s:%s:%s", receiver.Type, receiver.ID, evt.Type, evt.TargetID)
}
