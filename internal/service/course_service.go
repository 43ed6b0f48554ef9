package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
)

// CourseService 课程业务接口
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("查询课程列表失败", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		resp = append(resp, dto.ToCourseResponse(&courses[i]))
	}
	return resp, nil
}
