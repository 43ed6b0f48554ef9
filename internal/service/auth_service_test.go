package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AbhinandanNM/internal-assessment-portal/config"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	apperrors "github.com/AbhinandanNM/internal-assessment-portal/pkg/errors"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
)

// ── Helpers ──

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-tests",
		TokenTTL:  24 * time.Hour,
		Issuer:    "assessment-portal-test",
	})
}

func setupTestAuthService() (AuthService, *testRepos, *jwt.Manager) {
	repos := newTestRepos()
	jwtMgr := newTestJWTManager()
	svc := NewAuthService(repos.repo, jwtMgr, zap.NewNop())
	return svc, repos, jwtMgr
}

func createTestUser(t *testing.T, repos *testRepos, u *model.User, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	u.PasswordHash = string(hash)
	if err := repos.users.Create(context.Background(), u); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

// ═══════════════════════════════════════════════════════════
// Login
// ═══════════════════════════════════════════════════════════

func TestLogin_FacultySuccess(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	createTestUser(t, repos, &model.User{
		Email:            "faculty1@college.edu",
		Name:             "Dr. Rajesh Kumar",
		Role:             model.RoleFaculty,
		AssignedCourseID: uintPtr(1),
	}, "faculty123")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "faculty1@college.edu",
		Password: "faculty123",
	})
	if err != nil {
		t.Fatalf("期望登录成功，实际错误: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("期望返回 token")
	}
	if resp.ExpiresIn != 86400 {
		t.Errorf("期望 expiresIn=86400，实际=%d", resp.ExpiresIn)
	}
	if resp.User.Role != model.RoleFaculty {
		t.Errorf("期望 role=faculty，实际=%s", resp.User.Role)
	}

	claims, err := jwtMgr.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("token 解析失败: %v", err)
	}
	if claims.Role != model.RoleFaculty || claims.AssignedCourseID == nil || *claims.AssignedCourseID != 1 {
		t.Errorf("claims 不符: %+v", claims)
	}
	if claims.RollNumber != "" {
		t.Errorf("教师 claims 不应包含学号，实际=%q", claims.RollNumber)
	}
}

func TestLogin_StudentClaims(t *testing.T) {
	svc, repos, jwtMgr := setupTestAuthService()
	createTestUser(t, repos, &model.User{
		Email:      "john@college.edu",
		Name:       "John Michael",
		Role:       model.RoleStudent,
		RollNumber: strPtr("2024CS001"),
	}, "student123")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "john@college.edu", Password: "student123"})
	if err != nil {
		t.Fatalf("期望登录成功，实际错误: %v", err)
	}
	claims, err := jwtMgr.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("token 解析失败: %v", err)
	}
	if claims.RollNumber != "2024CS001" {
		t.Errorf("期望 rollNumber=2024CS001，实际=%q", claims.RollNumber)
	}
	if claims.AssignedCourseID != nil {
		t.Errorf("学生不应有 assignedCourseId")
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	createTestUser(t, repos, &model.User{
		Email: "faculty1@college.edu",
		Name:  "Dr. Rajesh Kumar",
		Role:  model.RoleFaculty,
	}, "faculty123")

	_, errWrongPwd := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "faculty1@college.edu", Password: "wrong",
	})
	_, errNoUser := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@college.edu", Password: "faculty123",
	})

	if !errors.Is(errWrongPwd, ErrInvalidCredentials) {
		t.Errorf("密码错误期望 ErrInvalidCredentials，实际=%v", errWrongPwd)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("邮箱不存在期望 ErrInvalidCredentials，实际=%v", errNoUser)
	}
	if errWrongPwd.Error() != errNoUser.Error() {
		t.Errorf("两种失败的错误信息应一致: %q vs %q", errWrongPwd, errNoUser)
	}
	if apperrors.KindOf(errNoUser) != apperrors.KindInvalidCredentials {
		t.Errorf("期望 KindInvalidCredentials，实际=%s", apperrors.KindOf(errNoUser))
	}
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	createTestUser(t, repos, &model.User{
		Email: "john@college.edu",
		Name:  "John Michael",
		Role:  model.RoleStudent, RollNumber: strPtr("2024CS001"),
	}, "student123")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "JOHN@college.edu", Password: "student123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际=%v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Register
// ═══════════════════════════════════════════════════════════

func TestRegister_StudentSuccess(t *testing.T) {
	svc, repos, _ := setupTestAuthService()

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:      "new@college.edu",
		Password:   "secret123",
		Name:       "New Student",
		Role:       "student",
		RollNumber: "2024CS099",
	})
	if err != nil {
		t.Fatalf("期望注册成功，实际错误: %v", err)
	}
	if resp.ID == 0 || resp.Role != model.RoleStudent {
		t.Errorf("注册响应不符: %+v", resp)
	}

	stored, _ := repos.users.GetByEmail(context.Background(), "new@college.edu")
	if stored.PasswordHash == "secret123" {
		t.Fatal("密码不应明文存储")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")); err != nil {
		t.Errorf("存储的哈希应能校验原密码: %v", err)
	}
	if stored.RollNumber == nil || *stored.RollNumber != "2024CS099" {
		t.Errorf("学号未保存")
	}
}

func TestRegister_FacultyDropsRollNumber(t *testing.T) {
	svc, repos, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:      "prof@college.edu",
		Password:   "secret123",
		Name:       "Prof. New",
		Role:       "faculty",
		RollNumber: "SHOULD-BE-IGNORED",
	})
	if err != nil {
		t.Fatalf("期望注册成功，实际错误: %v", err)
	}
	stored, _ := repos.users.GetByEmail(context.Background(), "prof@college.edu")
	if stored.RollNumber != nil {
		t.Errorf("教师不应保存学号，实际=%q", *stored.RollNumber)
	}
	if stored.AssignedCourseID != nil {
		t.Errorf("注册的教师不应自动分配课程")
	}
}

func TestRegister_StudentWithoutRollNumber(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "new@college.edu", Password: "secret123", Name: "New", Role: "student",
	})
	if !errors.Is(err, ErrRollNumberRequired) {
		t.Errorf("期望 ErrRollNumberRequired，实际=%v", err)
	}
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Errorf("期望 KindValidation，实际=%s", apperrors.KindOf(err))
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	svc, _, _ := setupTestAuthService()

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "x@college.edu", Password: "secret123", Name: "X", Role: "admin",
	})
	if !errors.Is(err, ErrInvalidRole) {
		t.Errorf("期望 ErrInvalidRole，实际=%v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	createTestUser(t, repos, &model.User{Email: "taken@college.edu", Name: "A", Role: model.RoleFaculty}, "pw")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "taken@college.edu", Password: "secret123", Name: "B", Role: "faculty",
	})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际=%v", err)
	}
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("期望 KindConflict，实际=%s", apperrors.KindOf(err))
	}
}

func TestRegister_DuplicateRollNumber(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	createTestUser(t, repos, &model.User{
		Email: "john@college.edu", Name: "John", Role: model.RoleStudent, RollNumber: strPtr("2024CS001"),
	}, "pw")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "other@college.edu", Password: "secret123", Name: "Other", Role: "student", RollNumber: "2024CS001",
	})
	if !errors.Is(err, ErrRollNumberExists) {
		t.Errorf("期望 ErrRollNumberExists，实际=%v", err)
	}
}

func TestRegister_UniqueViolationTranslated(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	repos.users.createErr = gorm.ErrDuplicatedKey

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "race@college.edu", Password: "secret123", Name: "Race", Role: "faculty",
	})
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("期望 ErrAccountExists，实际=%v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// GetCurrentUser
// ═══════════════════════════════════════════════════════════

func TestGetCurrentUser(t *testing.T) {
	svc, repos, _ := setupTestAuthService()
	u := createTestUser(t, repos, &model.User{
		Email: "john@college.edu", Name: "John", Role: model.RoleStudent, RollNumber: strPtr("2024CS001"),
	}, "pw")

	resp, err := svc.GetCurrentUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("期望成功，实际错误: %v", err)
	}
	if resp.RollNumber != "2024CS001" || resp.Email != "john@college.edu" {
		t.Errorf("用户信息不符: %+v", resp)
	}

	if _, err := svc.GetCurrentUser(context.Background(), 9999); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际=%v", err)
	}
}
