package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AbhinandanNM/internal-assessment-portal/pkg/errors"
)

// Response 统一响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details string      `json:"details,omitempty"`
}

// ── 通用错误码 ──

const (
	CodeValidation   = 10001
	CodeAuthMissing  = 10002
	CodeAuthInvalid  = 10003
	CodeForbidden    = 10004
	CodeBodyTooLarge = 10005
	CodeRateLimited  = 10006
	CodeNotFound     = 40400
	CodeConflict     = 40900
	CodeInternal     = 50000
)

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// InternalError 500，不向调用方暴露细节
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, CodeInternal, "服务器内部错误")
}

// StatusOf 业务错误分类对应的 HTTP 状态码
func StatusOf(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthMissing, apperrors.KindAuthInvalid, apperrors.KindInvalidCredentials:
		return http.StatusUnauthorized
	case apperrors.KindForbidden:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		// 前端按 400 处理重复注册
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func defaultCode(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return CodeValidation
	case apperrors.KindAuthMissing:
		return CodeAuthMissing
	case apperrors.KindAuthInvalid:
		return CodeAuthInvalid
	case apperrors.KindForbidden:
		return CodeForbidden
	case apperrors.KindNotFound:
		return CodeNotFound
	case apperrors.KindConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}

// FromError 按业务错误分类写入响应；未分类错误记入 gin 上下文并返回 500
func FromError(c *gin.Context, err error) {
	e, ok := apperrors.As(err)
	if !ok || e.Kind == apperrors.KindInternal {
		_ = c.Error(err)
		InternalError(c)
		return
	}
	code := e.Code
	if code == 0 {
		code = defaultCode(e.Kind)
	}
	Error(c, StatusOf(e.Kind), code, e.Message)
}
