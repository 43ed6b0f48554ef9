package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
)

// MarkRepository 成绩数据访问接口
type MarkRepository interface {
	// Upsert 按 (student_id, course_id) 插入或覆盖，单条语句保证原子性
	Upsert(ctx context.Context, mark *model.Mark) error
	// ListByCourse 课程成绩（预加载学生），按学号排序
	ListByCourse(ctx context.Context, courseID uint) ([]model.Mark, error)
	// ListByStudent 学生成绩（预加载课程），按课程排序
	ListByStudent(ctx context.Context, studentID uint) ([]model.Mark, error)
}

type markRepo struct {
	db *gorm.DB
}

// NewMarkRepo 创建 MarkRepository 实例
func NewMarkRepo(db *gorm.DB) MarkRepository {
	return &markRepo{db: db}
}

// Upsert INSERT ... ON CONFLICT (student_id, course_id) DO UPDATE
// 冲突时只覆盖分数、上传人和 updated_at，created_at 保持首次写入值
func (r *markRepo) Upsert(ctx context.Context, mark *model.Mark) error {
	now := time.Now()
	if mark.CreatedAt.IsZero() {
		mark.CreatedAt = now
	}
	mark.UpdatedAt = now

	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"marks_value", "uploaded_by", "updated_at"}),
		}).
		Create(mark).Error
}

func (r *markRepo) ListByCourse(ctx context.Context, courseID uint) ([]model.Mark, error) {
	var marks []model.Mark
	err := r.db.WithContext(ctx).
		Joins("Student").
		Preload("Course").
		Where("marks.course_id = ?", courseID).
		Order(`"Student".roll_number`).
		Find(&marks).Error
	return marks, err
}

func (r *markRepo) ListByStudent(ctx context.Context, studentID uint) ([]model.Mark, error) {
	var marks []model.Mark
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("student_id = ?", studentID).
		Order("course_id").
		Find(&marks).Error
	return marks, err
}
