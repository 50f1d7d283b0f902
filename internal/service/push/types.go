package push

import (
	"hr-notification/internal/domain"
)

// Payload 推送给客户端的内容：持久化的通知行加上渲染好的消息
type Payload struct {
	Notification domain.Notification `json:"notification"`
	Message      string              `json:"message"`
}

// Gateway 实时推送网关。连接的生命周期与通知的生命周期完全独立：
// 断开连接不会删除或修改任何通知，掉线的客户端靠收件箱拉取补齐。
type Gateway interface {
	// Register 登记一个主体的在线连接，同一主体可以同时持有多个（多标签页）
	Register(subjectType domain.ReceiverType, subjectID string) *Conn
	// Deregister 注销连接并关闭其通道
	Deregister(conn *Conn)
	// Push 向主体的全部在线连接扇出。没有在线连接时静默丢弃。
	// 返回投递和丢弃的连接数。
	Push(subjectType domain.ReceiverType, subjectID string, payload Payload) (delivered, dropped int)
}

// subjectKey 连接归属的主体，结构体做键，不拼字符串
type subjectKey struct {
	Type domain.ReceiverType
	ID   string
}
