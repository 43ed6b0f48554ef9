package handler

import (
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/api/middleware"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/service"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FacultyHandler 教师模块 HTTP 处理器
type FacultyHandler struct {
	facultySvc service.FacultyService
}

// NewFacultyHandler 创建 FacultyHandler
func NewFacultyHandler(facultySvc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc}
}

// ListStudents 学生名单
// GET /api/v1/faculty/students
func (h *FacultyHandler) ListStudents(c *gin.Context) {
	result, err := h.facultySvc.ListStudents(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// UpsertMark 上传单个学生成绩
// POST /api/v1/faculty/marks
func (h *FacultyHandler) UpsertMark(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.UpsertMarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	result, err := h.facultySvc.UpsertMark(c.Request.Context(), claims, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// UpsertMarksBulk 批量上传成绩，逐条独立成功/失败
// POST /api/v1/faculty/marks/bulk
func (h *FacultyHandler) UpsertMarksBulk(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	var req dto.BulkUpsertMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	result, err := h.facultySvc.UpsertMarksBulk(c.Request.Context(), claims, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// ImportMarks 从 Excel 导入课程成绩
// POST /api/v1/faculty/marks/import/:courseId  (multipart, 字段名 file)
func (h *FacultyHandler) ImportMarks(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
			return
		}
		response.BadRequest(c, response.CodeValidation, "请上传 Excel 文件（字段名 file）")
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		response.BadRequest(c, response.CodeValidation, "仅支持 .xlsx 文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.FromError(c, err)
		return
	}
	defer file.Close()

	rows, err := h.facultySvc.ParseMarksImport(file)
	if err != nil {
		response.FromError(c, err)
		return
	}

	result, err := h.facultySvc.ImportMarks(c.Request.Context(), claims, courseID, rows)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// ListCourseMarks 课程成绩列表（按学号排序）
// GET /api/v1/faculty/marks/:courseId
func (h *FacultyHandler) ListCourseMarks(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}

	result, err := h.facultySvc.ListCourseMarks(c.Request.Context(), claims, courseID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// ExportMarks 导出课程成绩为 Excel
// GET /api/v1/faculty/marks/:courseId/export
func (h *FacultyHandler) ExportMarks(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}

	buf, filename, err := h.facultySvc.ExportCourseMarks(c.Request.Context(), claims, courseID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Statistics 课程统计
// GET /api/v1/faculty/statistics/:courseId
func (h *FacultyHandler) Statistics(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}

	result, err := h.facultySvc.Statistics(c.Request.Context(), claims, courseID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}
