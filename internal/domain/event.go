package domain

import (
	"encoding/json"
	"fmt"
	"hr-notification/internal/errs"
)

// 业务事件类型，与通知规则一一对应。
// 业务方可以发布未注册的类型，通知层对其静默忽略。
const (
	EventTypeLeaveRequested   = "LEAVE_REQUESTED"
	EventTypeLeaveApproved    = "LEAVE_APPROVED"
	EventTypeLeaveRejected    = "LEAVE_REJECTED"
	EventTypeTicketCreated    = "TICKET_CREATED"
	EventTypeTicketApproved   = "TICKET_APPROVED"
	EventTypeTicketRejected   = "TICKET_REJECTED"
	EventTypeAttendanceMissed = "ATTENDANCE_MISSED"
)

// MetadataKeyEmployeeID 元数据里指向单个接收员工的键
const MetadataKeyEmployeeID = "employeeId"

// DomainEvent 领域事件，只追加不修改，作为审计记录持久化
type DomainEvent struct {
	ID         uint64            `json:"id"`         // 事件唯一标识
	Type       string            `json:"type"`       // 事件类型，对应一条通知规则
	ActorID    string            `json:"actorId"`    // 触发事件的人
	TargetID   string            `json:"targetId"`   // 事件关联的业务对象ID
	TargetType string            `json:"targetType"` // 业务对象类型，如 LEAVE/TICKET/ATTENDANCE
	Metadata   map[string]string `json:"metadata"`   // 规则可读取的透传参数
	Ctime      int64             `json:"ctime"`      // 创建时间，毫秒
}

func (e *DomainEvent) Validate() error {
	if e.Type == "" {
		return fmt.Errorf("%w: Type = %q", errs.ErrInvalidParameter, e.Type)
	}

	if e.ActorID == "" {
		return fmt.Errorf("%w: ActorID = %q", errs.ErrInvalidParameter, e.ActorID)
	}

	if e.TargetID == "" {
		return fmt.Errorf("%w: TargetID = %q", errs.ErrInvalidParameter, e.TargetID)
	}

	if e.TargetType == "" {
		return fmt.Errorf("%w: TargetType = %q", errs.ErrInvalidParameter, e.TargetType)
	}

	return nil
}

// PartitionKey 投递到消息队列时使用的分区键。
// 同一 (类型, 业务对象) 的事件落在同一分区，保证聚合键内的因果顺序。
func (e *DomainEvent) PartitionKey() string {
	return fmt.Sprintf("%s:%s", e.Type, e.TargetID)
}

func (e *DomainEvent) MarshalMetadata() (string, error) {
	if e.Metadata == nil {
		return "{}", nil
	}
	jsonBytes, err := json.Marshal(e.Metadata)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}
