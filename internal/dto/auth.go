package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest 注册请求
// role=student 时 rollNumber 必填（Service 层校验）
type RegisterRequest struct {
	Email      string `json:"email"      binding:"required,email,max=255"`
	Password   string `json:"password"   binding:"required,min=6,max=72"`
	Name       string `json:"name"       binding:"required,max=255"`
	Role       string `json:"role"       binding:"required,oneof=faculty student"`
	RollNumber string `json:"rollNumber" binding:"omitempty,rollnumber"`
}
