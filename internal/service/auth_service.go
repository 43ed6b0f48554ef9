package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/dto"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/repository"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/metrics"
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compareDummy 邮箱不存在时也执行一次 bcrypt 比对，使两种失败耗时一致
func compareDummy(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. 查询用户（邮箱精确匹配）
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			compareDummy(req.Password)
			metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码 (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, ErrInvalidCredentials
	}

	// 3. 签发 Token
	token, err := s.jwtMgr.GenerateToken(jwt.ClaimsFromUser(user))
	if err != nil {
		s.logger.Error("生成 Token 失败", zap.Error(err))
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.logger.Info("用户登录",
		zap.Uint("user_id", user.ID),
		zap.String("role", user.Role.String()),
	)

	return &dto.TokenResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TTL().Seconds()),
		User:      dto.ToUserResponse(user),
	}, nil
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role, err := model.ParseRole(req.Role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	email := strings.TrimSpace(req.Email)
	rollNumber := strings.TrimSpace(req.RollNumber)

	var roll *string
	switch role {
	case model.RoleStudent:
		if rollNumber == "" {
			return nil, ErrRollNumberRequired
		}
		roll = &rollNumber
	case model.RoleFaculty:
		// 教师不持有学号
	default:
		return nil, ErrInvalidRole
	}

	// 检查邮箱唯一性
	if _, err := s.repo.User.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 检查学号唯一性
	if roll != nil {
		if _, err := s.repo.User.GetByRollNumber(ctx, *roll); err == nil {
			return nil, ErrRollNumberExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
		Role:         role,
		RollNumber:   roll,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// 并发注册时预检查可能漏过，唯一约束兜底
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAccountExists
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户注册",
		zap.Uint("user_id", user.ID),
		zap.String("role", role.String()),
	)

	return &dto.RegisterResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询用户失败", zap.Error(err), zap.Uint("user_id", userID))
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}
