package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/service"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/response"
)

// StudentHandler 学生 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// OwnMarks 本人成绩
// GET /api/v1/student/marks
func (h *StudentHandler) OwnMarks(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.OwnMarks(c.Request.Context(), claims.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}
