package jwt

import (
	"errors"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/AbhinandanNM/internal-assessment-portal/config"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
)

var (
	ErrTokenExpired = errors.New("token 已过期")
	ErrTokenInvalid = errors.New("token 无效")
)

// Claims 会话声明，签发后不在服务端保存
type Claims struct {
	UserID           uint       `json:"userId"`
	Email            string     `json:"email"`
	Role             model.Role `json:"role"`
	Name             string     `json:"name"`
	RollNumber       string     `json:"rollNumber,omitempty"`
	AssignedCourseID *uint      `json:"assignedCourseId,omitempty"`
	jwtv5.RegisteredClaims
}

// Manager JWT 管理器
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
	issuer   string
	now      func() time.Time
}

// NewManager 创建 JWT 管理器
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		issuer:   cfg.Issuer,
		now:      time.Now,
	}
}

// TTL 会话有效期
func (m *Manager) TTL() time.Duration { return m.tokenTTL }

// ClaimsFromUser 由用户记录构造声明集
func ClaimsFromUser(u *model.User) Claims {
	c := Claims{
		UserID:           u.ID,
		Email:            u.Email,
		Role:             u.Role,
		Name:             u.Name,
		AssignedCourseID: u.AssignedCourseID,
	}
	if u.RollNumber != nil {
		c.RollNumber = *u.RollNumber
	}
	return c
}

// GenerateToken 签发会话 Token（固定有效期）
func (m *Manager) GenerateToken(claims Claims) (string, error) {
	now := m.now()
	claims.RegisteredClaims = jwtv5.RegisteredClaims{
		ID:        uuid.New().String(),
		Subject:   strconv.FormatUint(uint64(claims.UserID), 10),
		IssuedAt:  jwtv5.NewNumericDate(now),
		ExpiresAt: jwtv5.NewNumericDate(now.Add(m.tokenTTL)),
		Issuer:    m.issuer,
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken 解析并验证 Token
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	}, jwtv5.WithTimeFunc(m.now), jwtv5.WithExpirationRequired())

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
