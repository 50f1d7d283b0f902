package render

import (
	"fmt"
	"strings"

	"hr-notification/internal/domain"
)

// phrase 一类事件的三种措辞。
// withActor 为空表示这类事件的消息与触发者无关（审批结果类）。
type phrase struct {
	withActor string // count==1 且首个触发者可用
	one       string // count==1 且触发者不可用
	many      string // count>1，带 %d 占位
}

var phrases = map[string]phrase{
	domain.EventTypeLeaveRequested: {
		withActor: "%s requested leave",
		one:       "New leave request submitted",
		many:      "%d new leave requests submitted",
	},
	domain.EventTypeTicketCreated: {
		withActor: "%s created a ticket",
		one:       "New ticket created",
		many:      "%d new tickets created",
	},
	domain.EventTypeAttendanceMissed: {
		withActor: "%s missed attendance",
		one:       "Attendance missed",
		many:      "%d attendance records missed",
	},
	domain.EventTypeLeaveApproved: {
		one:  "Your leave has been approved",
		many: "%d of your leave requests have been approved",
	},
	domain.EventTypeLeaveRejected: {
		one:  "Your leave has been rejected",
		many: "%d of your leave requests have been rejected",
	},
	domain.EventTypeTicketApproved: {
		one:  "Your ticket has been approved",
		many: "%d of your tickets have been approved",
	},
	domain.EventTypeTicketRejected: {
		one:  "Your ticket has been rejected",
		many: "%d of your tickets have been rejected",
	},
}

// Render 把通知渲染成给人看的一句话。
// 跑在推送热路径上，必须对任意输入都返回结果，不会panic。
func Render(n domain.Notification) string {
	p, ok := phrases[n.Type]
	if !ok {
		return humanize(n.Type)
	}

	if n.Count > 1 {
		return fmt.Sprintf(p.many, n.Count)
	}

	actor := n.FirstActor()
	if actor != "" && p.withActor != "" {
		return fmt.Sprintf(p.withActor, actor)
	}
	return p.one
}

// humanize 未注册类型的兜底：下划线换空格，转小写
func humanize(eventType string) string {
	return strings.ToLower(strings.ReplaceAll(eventType, "_", " "))
}
