package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/AbhinandanNM/internal-assessment-portal/config"
)

func TestNewLogger_Levels(t *testing.T) {
	l, err := NewLogger(&config.LogConfig{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("NewLogger 失败: %v", err)
	}
	if l.Core().Enabled(zapcore.InfoLevel) {
		t.Error("warn 级别下不应输出 info")
	}
	if !l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("warn 级别下应输出 error")
	}
}

func TestNewLogger_Console(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "debug", Format: "console"}); err != nil {
		t.Fatalf("console 格式初始化失败: %v", err)
	}
}

func TestNewLogger_BadLevel(t *testing.T) {
	if _, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"}); err == nil {
		t.Error("非法日志级别应返回错误")
	}
}
