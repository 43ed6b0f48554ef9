package model

// Mark 成绩表，对应 marks
// (student_id, course_id) 唯一；重复上传覆盖分数与上传人，保留 created_at
type Mark struct {
	ID         uint    `gorm:"primaryKey"                                          json:"id"`
	StudentID  uint    `gorm:"not null;uniqueIndex:unique_student_course,priority:1" json:"studentId"`
	CourseID   uint    `gorm:"not null;uniqueIndex:unique_student_course,priority:2" json:"courseId"`
	MarksValue float64 `gorm:"type:numeric(5,2);not null"                          json:"marks"`
	UploadedBy uint    `gorm:"not null"                                            json:"uploadedBy"`
	Timestamps

	// 关联
	Student  *User   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"  json:"student,omitempty"`
	Course   *Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"   json:"course,omitempty"`
	Uploader *User   `gorm:"foreignKey:UploadedBy;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName 指定表名
func (Mark) TableName() string { return "marks" }
