package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/grading"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
)

// StudentService 学生业务接口
type StudentService interface {
	// OwnMarks 当前学生全部课程成绩，附百分比与等级
	OwnMarks(ctx context.Context, studentID uint) ([]dto.StudentMarkResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) OwnMarks(ctx context.Context, studentID uint) ([]dto.StudentMarkResponse, error) {
	marks, err := s.repo.Mark.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error("查询学生成绩失败", zap.Error(err), zap.Uint("student_id", studentID))
		return nil, err
	}

	resp := make([]dto.StudentMarkResponse, 0, len(marks))
	for _, m := range marks {
		item := dto.StudentMarkResponse{
			CourseID:  m.CourseID,
			Marks:     grading.Score(m.MarksValue),
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		}
		if m.Course != nil {
			maxMarks := float64(m.Course.MaxMarks)
			item.CourseCode = m.Course.CourseCode
			item.CourseName = m.Course.CourseName
			item.MaxMarks = m.Course.MaxMarks
			item.Percentage = grading.Percentage(m.MarksValue, maxMarks)
			item.Grade = grading.Calculate(m.MarksValue, maxMarks)
		}
		resp = append(resp, item)
	}
	return resp, nil
}
