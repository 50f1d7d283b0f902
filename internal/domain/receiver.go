package domain

// ReceiverType 接收者主体类型
type ReceiverType string

const (
	ReceiverTypeAdmin    ReceiverType = "ADMIN"    // 管理侧用户
	ReceiverTypeEmployee ReceiverType = "EMPLOYEE" // 普通员工
)

func (t ReceiverType) String() string {
	return string(t)
}

func (t ReceiverType) IsValid() bool {
	return t == ReceiverTypeAdmin || t == ReceiverTypeEmployee
}

// Receiver 通知接收者。规则解析出来的值对象，不落库。
// 不要用 "type_id" 之类的拼接字符串在边界上传递，统一用这个结构体。
type Receiver struct {
	ID   string       `json:"id"`
	Type ReceiverType `json:"type"`
}

func (r Receiver) IsZero() bool {
	return r.ID == "" || r.Type == ""
}
