package errors

import "errors"

// Kind 业务错误分类，决定 HTTP 状态码
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthMissing
	KindAuthInvalid
	KindForbidden
	KindInvalidCredentials
	KindNotFound
	KindConflict
)

// String 返回错误分类名称（用于日志）
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthMissing:
		return "auth_missing"
	case KindAuthInvalid:
		return "auth_invalid"
	case KindForbidden:
		return "forbidden"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// Error 带分类的业务错误
type Error struct {
	Kind    Kind
	Code    int // 业务错误码，0 表示使用分类默认码
	Message string
}

func (e *Error) Error() string { return e.Message }

// New 创建业务错误
func New(kind Kind, code int, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Validation 参数/输入错误
func Validation(code int, message string) *Error {
	return New(KindValidation, code, message)
}

// NotFound 引用的实体不存在
func NotFound(code int, message string) *Error {
	return New(KindNotFound, code, message)
}

// Conflict 唯一性冲突
func Conflict(code int, message string) *Error {
	return New(KindConflict, code, message)
}

// Forbidden 身份有效但权限不足
func Forbidden(code int, message string) *Error {
	return New(KindForbidden, code, message)
}

// KindOf 提取错误分类；非业务错误一律视为 KindInternal
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// As 提取 *Error
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
