package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db     *gorm.DB
	User   UserRepository
	Course CourseRepository
	Mark   MarkRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:     db,
		User:   NewUserRepo(db),
		Course: NewCourseRepo(db),
		Mark:   NewMarkRepo(db),
	}
}

// Transaction 在单个事务内执行 fn，fn 收到绑定事务的 Repository
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
