package model

import "time"

// DefaultMaxMarks 课程默认满分
const DefaultMaxMarks = 100

// Course 课程表，对应 courses，创建后不再修改
type Course struct {
	ID         uint      `gorm:"primaryKey"                              json:"id"`
	CourseCode string    `gorm:"type:varchar(50);not null;uniqueIndex"   json:"courseCode"`
	CourseName string    `gorm:"type:varchar(255);not null"              json:"courseName"`
	MaxMarks   int       `gorm:"not null;default:100;check:chk_courses_max_marks,max_marks > 0 AND max_marks < 1000" json:"maxMarks"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"      json:"createdAt"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
