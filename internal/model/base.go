package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ── 角色枚举 ──

// Role 用户角色（封闭集合：faculty / student）
type Role uint8

const (
	RoleUnknown Role = iota
	RoleFaculty
	RoleStudent
)

// ParseRole 将字符串解析为 Role，未知值返回错误
func ParseRole(s string) (Role, error) {
	switch s {
	case "faculty":
		return RoleFaculty, nil
	case "student":
		return RoleStudent, nil
	default:
		return RoleUnknown, fmt.Errorf("未知角色 %q", s)
	}
}

// String 返回角色的存储/传输形式
func (r Role) String() string {
	switch r {
	case RoleFaculty:
		return "faculty"
	case RoleStudent:
		return "student"
	default:
		return "unknown"
	}
}

// Valid 是否为已知角色
func (r Role) Valid() bool {
	return r == RoleFaculty || r == RoleStudent
}

// MarshalText 实现 encoding.TextMarshaler（JSON / JWT Claims 使用）
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("无效角色 %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Scan 实现 sql.Scanner，数据库中以 varchar 存储
func (r *Role) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return r.UnmarshalText(v)
	case string:
		return r.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("Role.Scan: unsupported type %T", src)
	}
}

// Value 实现 driver.Valuer
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("Role.Value: 无效角色 %d", r)
	}
	return r.String(), nil
}

// Timestamps 通用时间字段
type Timestamps struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updatedAt"`
}
