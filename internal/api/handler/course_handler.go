package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/service"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/response"
)

// CourseHandler 课程 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// List 课程列表
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	result, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}
