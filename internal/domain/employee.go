package domain

import "strconv"

// Role 员工角色。
// 源系统把角色存成无类型的 JSON 数组再在内存里过滤，
// 这里收敛成枚举 + 集合判断。
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleHR         Role = "HR"
	RoleManager    Role = "MANAGER"
	RoleStaff      Role = "STAFF"
)

func (r Role) String() string {
	return string(r)
}

// IsPrivileged 是否属于"少数拍板人"角色集合，
// 请求类事件（请假、工单、考勤异常）全部路由给这批人
func (r Role) IsPrivileged() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHR, RoleManager:
		return true
	default:
		return false
	}
}

// PrivilegedRoles 供 DAO 层做 IN 查询
func PrivilegedRoles() []Role {
	return []Role{RoleSuperAdmin, RoleAdmin, RoleHR, RoleManager}
}

// EmployeeStatus 员工在职状态
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
)

func (s EmployeeStatus) String() string {
	return string(s)
}

// Employee 员工目录读模型，规则解析接收者时查询
type Employee struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Role   Role           `json:"role"`
	Status EmployeeStatus `json:"status"`
}

// AsReceiver 员工对应的通知接收者
func (e Employee) AsReceiver() Receiver {
	typ := ReceiverTypeEmployee
	if e.Role.IsPrivileged() {
		typ = ReceiverTypeAdmin
	}
	return Receiver{ID: strconv.FormatInt(e.ID, 10), Type: typ}
}
