package handler

import "github.com/AbhinandanNM/internal-assessment-portal/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Course  *CourseHandler
	Faculty *FacultyHandler
	Student *StudentHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Course:  NewCourseHandler(svc.Course),
		Faculty: NewFacultyHandler(svc.Faculty),
		Student: NewStudentHandler(svc.Student),
	}
}
