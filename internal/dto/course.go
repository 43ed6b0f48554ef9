package dto

import "github.com/AbhinandanNM/internal-assessment-portal/internal/model"

// CourseResponse 课程信息
type CourseResponse struct {
	ID         uint   `json:"id"`
	CourseCode string `json:"courseCode"`
	CourseName string `json:"courseName"`
	MaxMarks   int    `json:"maxMarks"`
}

// ToCourseResponse 将 model.Course 转换为 CourseResponse
func ToCourseResponse(c *model.Course) CourseResponse {
	return CourseResponse{
		ID:         c.ID,
		CourseCode: c.CourseCode,
		CourseName: c.CourseName,
		MaxMarks:   c.MaxMarks,
	}
}
