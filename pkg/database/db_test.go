package database

import (
	"strings"
	"testing"

	gormlogger "gorm.io/gorm/logger"
)

func TestGormLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"debug": gormlogger.Info,
		"info":  gormlogger.Warn,
		"warn":  gormlogger.Warn,
		"error": gormlogger.Error,
		"":      gormlogger.Error,
	}
	for in, want := range cases {
		if got := GormLogLevel(in); got != want {
			t.Errorf("GormLogLevel(%q) = %v，期望 %v", in, got, want)
		}
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("读取嵌入迁移目录失败: %v", err)
	}
	var up, down int
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			up++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			down++
		}
	}
	if up == 0 || up != down {
		t.Errorf("迁移文件不成对: up=%d down=%d", up, down)
	}
}

func TestMigrations_CourseMaxMarksBounded(t *testing.T) {
	// marks_value NUMERIC(5,2) 上限 999.99
	data, err := migrationsFS.ReadFile("migrations/000002_courses_max_marks_bound.up.sql")
	if err != nil {
		t.Fatalf("读取迁移失败: %v", err)
	}
	if !strings.Contains(string(data), "max_marks < 1000") {
		t.Errorf("courses 缺少 max_marks 上限约束: %s", data)
	}
}
