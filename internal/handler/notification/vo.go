package notification

// PublishEventReq 业务方投递领域事件
type PublishEventReq struct {
	Type       string            `json:"type"`
	ActorID    string            `json:"actorId"`
	TargetID   string            `json:"targetId"`
	TargetType string            `json:"targetType"`
	Metadata   map[string]string `json:"metadata"`
}

type PublishEventResp struct {
	EventID uint64 `json:"eventId"`
}

type ListResp struct {
	Notifications []Notification `json:"notifications"`
}

// Notification 收件箱条目
type Notification struct {
	ID      uint64   `json:"id"`
	Type    string   `json:"type"`
	Message string   `json:"message"` // 渲染好的展示文案
	Actors  []string `json:"actors"`
	Count   int64    `json:"count"`
	Status  string   `json:"status"`
	Utime   int64    `json:"utime"`
}

type UnreadCountResp struct {
	Count int64 `json:"count"`
}

// MarkSeenReq ids为空表示整个收件箱一键已读
type MarkSeenReq struct {
	IDs []uint64 `json:"ids"`
}
