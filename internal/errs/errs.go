package errs

import "errors"

var (
	// ErrInvalidParameter 参数非法
	ErrInvalidParameter = errors.New("参数非法")
	// ErrEventNotFound 事件不存在
	ErrEventNotFound = errors.New("事件不存在")
	// ErrNotificationNotFound 通知记录不存在
	ErrNotificationNotFound = errors.New("通知记录不存在")
	// ErrEmployeeNotFound 员工不存在
	ErrEmployeeNotFound = errors.New("员工不存在")
	// ErrUnauthorized 鉴权失败
	ErrUnauthorized = errors.New("鉴权失败")
)
