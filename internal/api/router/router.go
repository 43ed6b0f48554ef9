package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/AbhinandanNM/internal-assessment-portal/config"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/api/handler"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/api/middleware"
	"github.com/AbhinandanNM/internal-assessment-portal/internal/model"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/jwt"
	"github.com/AbhinandanNM/internal-assessment-portal/pkg/metrics"
)

// Pinger 健康检查依赖，nil 表示不检查数据库
type Pinger func(ctx context.Context) error

// Deps 路由依赖
type Deps struct {
	Handler *handler.Handler
	JWT     *jwt.Manager
	// Limiter 为 nil 时登录不限流
	Limiter middleware.RateLimiter
	Ping    Pinger
	Logger  *zap.Logger
}

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, d Deps) *gin.Engine {
	handler.RegisterValidators()

	r := gin.New()
	r.HandleMethodNotAllowed = true

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── 健康检查 / 指标 ──
	r.GET("/health", healthHandler(d.Ping))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	h := d.Handler

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login",
				middleware.RateLimit(d.Limiter, cfg.Auth.LoginRateLimit, cfg.Auth.LoginRateWindow, d.Logger),
				h.Auth.Login,
			)
			auth.POST("/register", h.Auth.Register)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(d.JWT))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.GET("/courses", h.Course.List)

			// 教师模块
			faculty := authorized.Group("/faculty", middleware.RequireRole(model.RoleFaculty))
			{
				faculty.GET("/students", h.Faculty.ListStudents)
				faculty.POST("/marks", h.Faculty.UpsertMark)
				faculty.POST("/marks/bulk", h.Faculty.UpsertMarksBulk)
				faculty.POST("/marks/import/:courseId", h.Faculty.ImportMarks)
				faculty.GET("/marks/:courseId", h.Faculty.ListCourseMarks)
				faculty.GET("/marks/:courseId/export", h.Faculty.ExportMarks)
				faculty.GET("/statistics/:courseId", h.Faculty.Statistics)
			}

			// 学生模块
			student := authorized.Group("/student", middleware.RequireRole(model.RoleStudent))
			{
				student.GET("/marks", h.Student.OwnMarks)
			}
		}
	}

	return r
}

func healthHandler(ping Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := ping(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	}
}
