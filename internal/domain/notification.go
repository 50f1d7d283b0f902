package domain

import (
	"encoding/json"
)

// NotificationStatus 通知状态
type NotificationStatus string

const (
	NotificationStatusUnread NotificationStatus = "UNREAD" // 未读
	NotificationStatusSeen   NotificationStatus = "SEEN"   // 已读
)

func (s NotificationStatus) String() string {
	return string(s)
}

// Notification 通知领域模型，聚合的基本单位。
// 每个聚合键全局只有一行：首个事件创建，后续事件合并进来。
type Notification struct {
	ID             uint64             `json:"id"`             // 通知唯一标识
	AggregationKey string             `json:"aggregationKey"` // 聚合键，唯一索引
	ReceiverID     string             `json:"receiverId"`     // 接收者ID
	ReceiverType   ReceiverType       `json:"receiverType"`   // 接收者类型
	Type           string             `json:"type"`           // 事件类型，与 DomainEvent.Type 同一命名空间
	TargetID       string             `json:"targetId"`       // 关联业务对象ID
	TargetType     string             `json:"targetType"`     // 关联业务对象类型
	Actors         []string           `json:"actors"`         // 贡献过事件的触发者，按首次出现顺序去重
	Count          int64              `json:"count"`          // 合并进来的事件数，只增不减
	Status         NotificationStatus `json:"status"`         // 每次合并都会重置回 UNREAD
	Ctime          int64              `json:"ctime"`
	Utime          int64              `json:"utime"`
}

// Receiver 返回通知归属的接收者
func (n *Notification) Receiver() Receiver {
	return Receiver{ID: n.ReceiverID, Type: n.ReceiverType}
}

// FirstActor 首个触发者，没有则返回空串
func (n *Notification) FirstActor() string {
	if len(n.Actors) == 0 {
		return ""
	}
	return n.Actors[0]
}

func (n *Notification) MarshalActors() (string, error) {
	jsonBytes, err := json.Marshal(n.Actors)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
