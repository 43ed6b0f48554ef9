package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/response"
)

// claimsKey gin.Context 中保存会话声明的键
const claimsKey = "claims"

// JWTAuth 会话认证中间件
// 从 Authorization: Bearer <token> 中提取并验证 Token，声明写入上下文
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, response.CodeAuthMissing, "缺少认证头")
			c.Abort()
			return
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, response.CodeAuthMissing, "认证头格式无效")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(strings.TrimSpace(token))
		if err != nil {
			msg := "Token 无效"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token 已过期"
			}
			response.Unauthorized(c, response.CodeAuthInvalid, msg)
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole 角色校验中间件，须挂在 JWTAuth 之后
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			response.Unauthorized(c, response.CodeAuthMissing, "未认证")
			c.Abort()
			return
		}
		if !roleAllowed(claims.Role, allowed) {
			response.Forbidden(c, response.CodeForbidden, "无权限访问")
			c.Abort()
			return
		}
		c.Next()
	}
}

func roleAllowed(role model.Role, allowed []model.Role) bool {
	switch role {
	case model.RoleFaculty, model.RoleStudent:
		for _, r := range allowed {
			if r == role {
				return true
			}
		}
		return false
	case model.RoleUnknown:
		return false
	default:
		return false
	}
}

// GetClaims 读取 JWTAuth 写入的会话声明
func GetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok && claims != nil
}

// SetClaims 写入会话声明（供测试与内部调用）
func SetClaims(c *gin.Context, claims *jwt.Claims) {
	c.Set(claimsKey, claims)
}
