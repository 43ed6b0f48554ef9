package service

import (
	"fmt"

	apperrors "github.com/AbhinandanNM/internal-assessment-portal/pkg/errors"
)

// ── 认证模块业务错误 ──

var (
	// ErrInvalidCredentials 邮箱不存在与密码错误返回同一错误
	ErrInvalidCredentials = apperrors.New(apperrors.KindInvalidCredentials, 11001, "邮箱或密码错误")
	ErrEmailExists        = apperrors.Conflict(11002, "邮箱已被注册")
	ErrRollNumberExists   = apperrors.Conflict(11003, "学号已被注册")
	ErrRollNumberRequired = apperrors.Validation(11004, "学生注册必须填写学号")
	ErrUserNotFound       = apperrors.NotFound(11005, "用户不存在")
	ErrInvalidRole        = apperrors.Validation(11006, "角色必须为 faculty 或 student")
	ErrAccountExists      = apperrors.Conflict(11007, "邮箱或学号已被注册")
)

// ── 课程 / 成绩模块业务错误 ──

var (
	ErrCourseNotFound  = apperrors.NotFound(12001, "课程不存在")
	ErrMarksOutOfRange = apperrors.Validation(13001, "分数超出范围")
	ErrStudentNotFound = apperrors.NotFound(13002, "学生不存在")
	ErrCourseScope     = apperrors.Forbidden(13003, "只能操作本人负责的课程")

	// 批量上传逐条校验必填项
	ErrStudentIDRequired = apperrors.Validation(13008, "studentId 不能为空")
	ErrCourseIDRequired  = apperrors.Validation(13009, "courseId 不能为空")
	ErrMarksRequired     = apperrors.Validation(13010, "分数不能为空")
)

// ── 成绩导入错误 ──

const maxImportRows = 1000

var (
	ErrImportNoData      = apperrors.Validation(13004, "Excel文件无数据行（第一行为表头）")
	ErrImportTooManyRows = apperrors.Validation(13005, fmt.Sprintf("数据行数超过上限 %d 行", maxImportRows))
	ErrImportBadHeader   = apperrors.Validation(13006, "Excel表头缺少必要列（学号/分数）")
	ErrImportBadFile     = apperrors.Validation(13007, "无法解析Excel文件")
)
