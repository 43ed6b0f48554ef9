package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 5000},
		Auth: AuthConfig{
			JWTSecret: "test-secret-key-for-unit-testing",
			TokenTTL:  24 * time.Hour,
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("合法配置不应报错: %v", err)
	}
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = "short"
	if err := cfg.Validate(); err == nil {
		t.Error("过短的 jwt_secret 应校验失败")
	}
}

func TestValidate_EmptySecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("空 jwt_secret 应校验失败")
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("非法端口应校验失败")
	}
}

func TestValidate_ZeroTTL(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.TokenTTL = 0
	if err := cfg.Validate(); err == nil {
		t.Error("token_ttl 为 0 应校验失败")
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORTAL_AUTH_JWT_SECRET", "env-secret-key-1234567890")
	t.Setenv("PORTAL_SERVER_PORT", "6001")
	t.Setenv("PORTAL_FEATURE_ENFORCE_COURSE_SCOPE", "false")
	t.Setenv("PORTAL_DB_PASSWORD", "env-db-pass")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}
	if cfg.Auth.JWTSecret != "env-secret-key-1234567890" {
		t.Errorf("期望 jwt_secret 来自环境变量，实际=%q", cfg.Auth.JWTSecret)
	}
	if cfg.Database.Password != "env-db-pass" {
		t.Errorf("期望 db.password 来自环境变量，实际=%q", cfg.Database.Password)
	}
	if cfg.Server.Port != 6001 {
		t.Errorf("期望 port=6001，实际=%d", cfg.Server.Port)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("期望默认 token_ttl=24h，实际=%v", cfg.Auth.TokenTTL)
	}
	if cfg.Feature.EnforceCourseScope {
		t.Error("环境变量应覆盖 enforce_course_scope 默认值")
	}
	if cfg.Database.MaxOpenConns != 10 {
		t.Errorf("期望默认 max_open_conns=10，实际=%d", cfg.Database.MaxOpenConns)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("PORTAL_AUTH_JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Error("未配置 jwt_secret 时 Load 应失败")
	}
}
