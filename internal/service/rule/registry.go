package rule

import (
	"hr-notification/internal/domain"
	"hr-notification/internal/repository"
)

// Registry 事件类型到通知规则的静态映射。
// 启动时注册完成，运行期只读，不需要加锁。
// 未注册的事件类型查不到规则，上层按无操作处理。
type Registry struct {
	rules map[string]NotificationRule
}

func (r *Registry) Register(eventType string, rule NotificationRule) {
	r.rules[eventType] = rule
}

func (r *Registry) Rule(eventType string) (NotificationRule, bool) {
	rule, ok := r.rules[eventType]
	return rule, ok
}

// NewRegistry 创建空的规则注册表
func NewRegistry() *Registry {
	return &Registry{
		rules: make(map[string]NotificationRule),
	}
}

// NewDefaultRegistry 注册HR业务事件的内置规则集
func NewDefaultRegistry(directory repository.DirectoryRepository) *Registry {
	registry := NewRegistry()

	// 请求类：全体拍板人
	broadcast := NewPrivilegedStaffRule(directory)
	registry.Register(domain.EventTypeLeaveRequested, broadcast)
	registry.Register(domain.EventTypeTicketCreated, broadcast)
	registry.Register(domain.EventTypeAttendanceMissed, broadcast)

	// 审批结果类：点名员工
	named := NewNamedEmployeeRule()
	registry.Register(domain.EventTypeLeaveApproved, named)
	registry.Register(domain.EventTypeLeaveRejected, named)
	registry.Register(domain.EventTypeTicketApproved, named)
	registry.Register(domain.EventTypeTicketRejected, named)

	return registry
}
