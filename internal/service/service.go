package service

import (
	"go.uber.org/zap"

	"github.com/AbhinandanNM/internal-assessment-portal/config"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Course  CourseService
	Faculty FacultyService
	Student StudentService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, jwtMgr, logger),
		Course:  NewCourseService(repo, logger),
		Faculty: NewFacultyService(repo, cfg.Feature.EnforceCourseScope, logger),
		Student: NewStudentService(repo, logger),
	}
}
