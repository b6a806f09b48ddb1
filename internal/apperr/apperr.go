package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// 失败种类：每个操作最终只向外暴露其中一种
type Kind int

const (
	Authorization Kind = iota + 1 // 403 角色/归属检查未通过
	Validation                    // 400 载荷不符合规则
	Conflict                      // 409 唯一性冲突（email / bizNumber）
	NotFound                      // 404 目标 ID 不存在
	Authentication                // 403 登录凭证不匹配
	Persistence                   // 500 存储层意外失败（包一层，不透传）
)

type Error struct {
	Kind    Kind
	Field   string // 校验错误时的字段名，其余为空
	Message string
	Err     error // 被包裹的底层原因，永不进响应体
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func New(k Kind, msg string) *Error { return &Error{Kind: k, Message: msg} }

func Newf(k Kind, format string, args ...any) *Error {
	return &Error{Kind: k, Message: fmt.Sprintf(format, args...)}
}

// Field 构造带字段名的校验错误
func FieldError(field, reason string) *Error {
	return &Error{Kind: Validation, Field: field, Message: fmt.Sprintf("%q %s", field, reason)}
}

func Wrap(k Kind, msg string, err error) *Error {
	return &Error{Kind: k, Message: msg, Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func IsKind(err error, k Kind) bool { return KindOf(err) == k }

// Status 按 Kind 映射 HTTP 状态码；未知错误一律 500
func Status(err error) int {
	switch KindOf(err) {
	case Authorization, Authentication:
		return http.StatusForbidden
	case Validation:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message 取对外可见文案；非 *Error 的内部错误不外泄
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
