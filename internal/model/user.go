package model

import "time"

// User 用户表，对应 users
// 学生必须有学号且没有分配课程；教师没有学号，至多分配一门课程
type User struct {
	ID               uint      `gorm:"primaryKey"                      json:"id"`
	Email            string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	PasswordHash     string    `gorm:"type:varchar(255);not null"      json:"-"`
	Name             string    `gorm:"type:varchar(255);not null"      json:"name"`
	Role             Role      `gorm:"type:varchar(20);not null"       json:"role"`
	RollNumber       *string   `gorm:"type:varchar(50);uniqueIndex"    json:"rollNumber,omitempty"`
	AssignedCourseID *uint     `gorm:"index"                           json:"assignedCourseId,omitempty"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`

	// 关联
	AssignedCourse *Course `gorm:"foreignKey:AssignedCourseID;constraint:OnDelete:SET NULL" json:"assignedCourse,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// IsStudent 是否为学生
func (u *User) IsStudent() bool { return u.Role == RoleStudent }

// IsFaculty 是否为教师
func (u *User) IsFaculty() bool { return u.Role == RoleFaculty }
