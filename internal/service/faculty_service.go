package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/grading"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
	apperrors "github.com/AbhinandanNM/internal-assessment-portal/pkg/errors"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/metrics"
)

// FacultyService 教师业务接口：学生名单、成绩上传、课程成绩与统计
//
// caller 为已通过鉴权的教师身份；enforceScope 开启时
// 所有按课程的读写都必须落在 caller.AssignedCourseID 上。
type FacultyService interface {
	ListStudents(ctx context.Context) ([]dto.StudentResponse, error)
	UpsertMark(ctx context.Context, caller *jwt.Claims, req *dto.UpsertMarkRequest) (*dto.MarkResultResponse, error)
	UpsertMarksBulk(ctx context.Context, caller *jwt.Claims, req *dto.BulkUpsertMarksRequest) (*dto.BulkUpsertMarksResponse, error)
	ListCourseMarks(ctx context.Context, caller *jwt.Claims, courseID uint) ([]dto.CourseMarkResponse, error)
	Statistics(ctx context.Context, caller *jwt.Claims, courseID uint) (*grading.Statistics, error)
	MarksImporter
	MarksExporter
}

type facultyService struct {
	repo         *repository.Repository
	enforceScope bool
	logger       *zap.Logger
}

// NewFacultyService 创建 FacultyService 实例
func NewFacultyService(repo *repository.Repository, enforceScope bool, logger *zap.Logger) FacultyService {
	return &facultyService{repo: repo, enforceScope: enforceScope, logger: logger}
}

// ────────────────────── ListStudents ──────────────────────

func (s *facultyService) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	users, err := s.repo.User.ListStudents(ctx)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}
	resp := make([]dto.StudentResponse, 0, len(users))
	for _, u := range users {
		item := dto.StudentResponse{ID: u.ID, Email: u.Email, Name: u.Name}
		if u.RollNumber != nil {
			item.RollNumber = *u.RollNumber
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// ────────────────────── UpsertMark ──────────────────────

func (s *facultyService) UpsertMark(ctx context.Context, caller *jwt.Claims, req *dto.UpsertMarkRequest) (*dto.MarkResultResponse, error) {
	if err := s.checkScope(caller, req.CourseID); err != nil {
		return nil, err
	}
	course, err := s.getCourse(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	return s.saveMark(ctx, caller.UserID, course, req.StudentID, req.Marks)
}

// ────────────────────── UpsertMarksBulk ──────────────────────

// UpsertMarksBulk 逐条校验并写入，单条失败不影响其余条目
func (s *facultyService) UpsertMarksBulk(ctx context.Context, caller *jwt.Claims, req *dto.BulkUpsertMarksRequest) (*dto.BulkUpsertMarksResponse, error) {
	resp := &dto.BulkUpsertMarksResponse{Total: len(req.Entries)}
	courses := make(map[uint]*model.Course)

	for i, entry := range req.Entries {
		if _, err := s.saveEntry(ctx, caller, courses, entry); err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, dto.MarkEntryError{
				Index:     i,
				StudentID: entry.StudentID,
				Reason:    s.entryReason(err),
			})
			continue
		}
		resp.Saved++
	}

	s.logger.Info("批量上传成绩",
		zap.Uint("faculty_id", caller.UserID),
		zap.Int("total", resp.Total),
		zap.Int("saved", resp.Saved),
		zap.Int("failed", resp.Failed),
	)
	return resp, nil
}

func (s *facultyService) saveEntry(ctx context.Context, caller *jwt.Claims, courses map[uint]*model.Course, entry dto.UpsertMarkRequest) (*dto.MarkResultResponse, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}
	if err := s.checkScope(caller, entry.CourseID); err != nil {
		return nil, err
	}
	course, ok := courses[entry.CourseID]
	if !ok {
		var err error
		if course, err = s.getCourse(ctx, entry.CourseID); err != nil {
			return nil, err
		}
		courses[entry.CourseID] = course
	}
	return s.saveMark(ctx, caller.UserID, course, entry.StudentID, entry.Marks)
}

// entryReason 业务错误原样返回，内部错误不外泄
func (s *facultyService) entryReason(err error) string {
	if appErr, ok := apperrors.As(err); ok {
		return appErr.Message
	}
	return "保存失败"
}

// ────────────────────── ListCourseMarks ──────────────────────

func (s *facultyService) ListCourseMarks(ctx context.Context, caller *jwt.Claims, courseID uint) ([]dto.CourseMarkResponse, error) {
	if err := s.checkScope(caller, courseID); err != nil {
		return nil, err
	}
	course, err := s.getCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	marks, err := s.listMarks(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return courseMarkRows(course, marks), nil
}

func (s *facultyService) listMarks(ctx context.Context, courseID uint) ([]model.Mark, error) {
	marks, err := s.repo.Mark.ListByCourse(ctx, courseID)
	if err != nil {
		s.logger.Error("查询课程成绩失败", zap.Error(err), zap.Uint("course_id", courseID))
		return nil, err
	}
	return marks, nil
}

// courseMarkRows 转换为教师视图行，保持仓储返回的学号顺序
func courseMarkRows(course *model.Course, marks []model.Mark) []dto.CourseMarkResponse {
	maxMarks := float64(course.MaxMarks)
	resp := make([]dto.CourseMarkResponse, 0, len(marks))
	for _, m := range marks {
		item := dto.CourseMarkResponse{
			ID:         m.ID,
			StudentID:  m.StudentID,
			Marks:      grading.Score(m.MarksValue),
			MaxMarks:   course.MaxMarks,
			CourseName: course.CourseName,
			Percentage: grading.Percentage(m.MarksValue, maxMarks),
			Grade:      grading.Calculate(m.MarksValue, maxMarks),
			CreatedAt:  m.CreatedAt,
			UpdatedAt:  m.UpdatedAt,
		}
		if m.Student != nil {
			item.StudentName = m.Student.Name
			if m.Student.RollNumber != nil {
				item.RollNumber = *m.Student.RollNumber
			}
		}
		resp = append(resp, item)
	}
	return resp
}

// ────────────────────── Statistics ──────────────────────

func (s *facultyService) Statistics(ctx context.Context, caller *jwt.Claims, courseID uint) (*grading.Statistics, error) {
	if err := s.checkScope(caller, courseID); err != nil {
		return nil, err
	}
	course, err := s.getCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	marks, err := s.listMarks(ctx, courseID)
	if err != nil {
		return nil, err
	}
	stats := courseStatistics(course, marks)
	return &stats, nil
}

func courseStatistics(course *model.Course, marks []model.Mark) grading.Statistics {
	records := make([]grading.Record, 0, len(marks))
	for _, m := range marks {
		records = append(records, grading.Record{Marks: m.MarksValue, MaxMarks: float64(course.MaxMarks)})
	}
	return grading.Aggregate(records)
}

// ────────────────────── helpers ──────────────────────

func (s *facultyService) checkScope(caller *jwt.Claims, courseID uint) error {
	if !s.enforceScope {
		return nil
	}
	if caller == nil || caller.AssignedCourseID == nil || *caller.AssignedCourseID != courseID {
		return ErrCourseScope
	}
	return nil
}

func (s *facultyService) getCourse(ctx context.Context, courseID uint) (*model.Course, error) {
	course, err := s.repo.Course.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		s.logger.Error("查询课程失败", zap.Error(err), zap.Uint("course_id", courseID))
		return nil, err
	}
	return course, nil
}

func (s *facultyService) getStudent(ctx context.Context, studentID uint) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err), zap.Uint("student_id", studentID))
		return nil, err
	}
	if !user.IsStudent() {
		return nil, ErrStudentNotFound
	}
	return user, nil
}

// validateEntry 批量条目不经过 binding 校验，必填项在此逐条检查
func validateEntry(entry dto.UpsertMarkRequest) error {
	switch {
	case entry.StudentID == 0:
		return ErrStudentIDRequired
	case entry.CourseID == 0:
		return ErrCourseIDRequired
	case entry.Marks == nil:
		return ErrMarksRequired
	}
	return nil
}

// validateMarks 分数须为 [0, maxMarks] 内的有限数
func validateMarks(marks *float64, maxMarks int) (float64, error) {
	if marks == nil {
		return 0, ErrMarksRequired
	}
	v := *marks
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > float64(maxMarks) {
		return 0, ErrMarksOutOfRange
	}
	return float64(grading.Round2(v)), nil
}

// saveMark 校验学生与分数后执行 upsert
func (s *facultyService) saveMark(ctx context.Context, uploaderID uint, course *model.Course, studentID uint, marks *float64) (*dto.MarkResultResponse, error) {
	value, err := validateMarks(marks, course.MaxMarks)
	if err != nil {
		return nil, err
	}
	if _, err := s.getStudent(ctx, studentID); err != nil {
		return nil, err
	}

	mark := &model.Mark{
		StudentID:  studentID,
		CourseID:   course.ID,
		MarksValue: value,
		UploadedBy: uploaderID,
	}
	if err := s.repo.Mark.Upsert(ctx, mark); err != nil {
		s.logger.Error("保存成绩失败",
			zap.Error(err),
			zap.Uint("student_id", studentID),
			zap.Uint("course_id", course.ID),
		)
		return nil, err
	}
	metrics.MarksSaved.Inc()

	maxMarks := float64(course.MaxMarks)
	return &dto.MarkResultResponse{
		StudentID:  studentID,
		CourseID:   course.ID,
		Marks:      grading.Score(value),
		Percentage: grading.Percentage(value, maxMarks),
		Grade:      grading.Calculate(value, maxMarks),
	}, nil
}
