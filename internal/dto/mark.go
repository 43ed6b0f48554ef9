package dto

import (
	"time"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/grading"
)

// ── 成绩模块 DTO ──

// UpsertMarkRequest 上传单个学生成绩
// Marks 使用指针以区分 0 分与未填写
type UpsertMarkRequest struct {
	StudentID uint     `json:"studentId" binding:"required"`
	CourseID  uint     `json:"courseId"  binding:"required"`
	Marks     *float64 `json:"marks"     binding:"required"`
}

// MarkResultResponse 单条成绩写入结果
type MarkResultResponse struct {
	StudentID  uint          `json:"studentId"`
	CourseID   uint          `json:"courseId"`
	Marks      grading.Score `json:"marks"`
	Percentage grading.Score `json:"percentage"`
	Grade      grading.Grade `json:"grade"`
}

// BulkUpsertMarksRequest 批量上传成绩
// 条目不 dive 校验，缺字段的条目由服务层单独记为失败
type BulkUpsertMarksRequest struct {
	Entries []UpsertMarkRequest `json:"entries" binding:"required,min=1,max=1000"`
}

// BulkUpsertMarksResponse 批量上传结果，逐条独立成功/失败
type BulkUpsertMarksResponse struct {
	Total  int              `json:"total"`
	Saved  int              `json:"saved"`
	Failed int              `json:"failed"`
	Errors []MarkEntryError `json:"errors,omitempty"`
}

// MarkEntryError 批量上传中单条失败详情
// Index 为请求中的下标；Excel 导入时为行号
type MarkEntryError struct {
	Index     int    `json:"index"`
	StudentID uint   `json:"studentId,omitempty"`
	Reason    string `json:"reason"`
}

// CourseMarkResponse 课程成绩行（教师视图）
type CourseMarkResponse struct {
	ID          uint          `json:"id"`
	StudentID   uint          `json:"studentId"`
	StudentName string        `json:"studentName"`
	RollNumber  string        `json:"rollNumber"`
	Marks       grading.Score `json:"marks"`
	MaxMarks    int           `json:"maxMarks"`
	CourseName  string        `json:"courseName"`
	Percentage  grading.Score `json:"percentage"`
	Grade       grading.Grade `json:"grade"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// StudentMarkResponse 学生本人成绩行
type StudentMarkResponse struct {
	CourseID   uint          `json:"courseId"`
	CourseCode string        `json:"courseCode"`
	CourseName string        `json:"courseName"`
	Marks      grading.Score `json:"marks"`
	MaxMarks   int           `json:"maxMarks"`
	Percentage grading.Score `json:"percentage"`
	Grade      grading.Grade `json:"grade"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
