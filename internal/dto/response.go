package dto

import "github.com/AbhinandanNM/internal-assessment-portal/internal/model"

// ── 认证模块响应 ──

// TokenResponse 登录响应
type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expiresIn"` // 有效期（秒）
	User      UserResponse `json:"user"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ID    uint       `json:"id"`
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  model.Role `json:"role"`
}

// ── 用户模块响应 ──

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID               uint            `json:"id"`
	Email            string          `json:"email"`
	Name             string          `json:"name"`
	Role             model.Role      `json:"role"`
	RollNumber       string          `json:"rollNumber,omitempty"`
	AssignedCourseID *uint           `json:"assignedCourseId,omitempty"`
	AssignedCourse   *CourseResponse `json:"assignedCourse,omitempty"`
}

// StudentResponse 学生列表项
type StudentResponse struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	RollNumber string `json:"rollNumber"`
}

// ToUserResponse 将 model.User 转换为 UserResponse
func ToUserResponse(u *model.User) UserResponse {
	resp := UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             u.Role,
		AssignedCourseID: u.AssignedCourseID,
	}
	if u.RollNumber != nil {
		resp.RollNumber = *u.RollNumber
	}
	if u.AssignedCourse != nil {
		c := ToCourseResponse(u.AssignedCourse)
		resp.AssignedCourse = &c
	}
	return resp
}
