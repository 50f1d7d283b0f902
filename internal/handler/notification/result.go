package notification

import (
	"github.com/ecodeclub/ginx"
)

const (
	codeSystemError  = 500001
	codeInvalidInput = 400001
	codeUnauthorized = 401001
)

var (
	systemErrorResult = ginx.Result{
		Code: codeSystemError,
		Msg:  "系统异常",
	}
	invalidInputResult = ginx.Result{
		Code: codeInvalidInput,
		Msg:  "参数非法",
	}
	unauthorizedResult = ginx.Result{
		Code: codeUnauthorized,
		Msg:  "未登录",
	}
)
