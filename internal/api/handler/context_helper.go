package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/AbhinandanNM/internal-assessment-portal/internal/api/middleware"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/response"
)

// MustGetClaims 从 Gin 上下文中提取会话声明。
// JWT 中间件未注入时写入 401 响应并返回 false，调用方应直接 return。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		response.Unauthorized(c, response.CodeAuthMissing, "未认证")
		return nil, false
	}
	return claims, true
}

// parseCourseID 解析路径参数 :courseId，非法时写入 400 响应
func parseCourseID(c *gin.Context) (uint, bool) {
	raw := c.Param("courseId")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, response.CodeValidation, "课程 ID 无效")
		return 0, false
	}
	return uint(id), true
}

// handleBindError 请求体绑定失败：超限 413，其余 400 并附字段详情
func handleBindError(c *gin.Context, err error) {
	if middleware.IsBodyTooLarge(err) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			// 去掉顶层结构体名，保留 entries[1].marks 形式的路径
			field := fe.Namespace()
			if _, rest, found := strings.Cut(field, "."); found {
				field = rest
			}
			details = append(details, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "参数校验失败", strings.Join(details, "; "))
		return
	}
	response.BadRequest(c, response.CodeValidation, "参数校验失败")
}
