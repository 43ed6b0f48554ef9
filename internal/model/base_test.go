package model

import (
	"encoding/json"
	"testing"
)

func TestParseRole(t *testing.T) {
	cases := map[string]Role{"faculty": RoleFaculty, "student": RoleStudent}
	for in, want := range cases {
		got, err := ParseRole(in)
		if err != nil || got != want {
			t.Errorf("ParseRole(%q) = %v, %v", in, got, err)
		}
	}
	for _, bad := range []string{"", "Faculty", "admin", "studnet"} {
		if _, err := ParseRole(bad); err == nil {
			t.Errorf("ParseRole(%q) 应返回错误", bad)
		}
	}
}

func TestRole_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Role Role `json:"role"`
	}{RoleStudent})
	if err != nil {
		t.Fatalf("Marshal 失败: %v", err)
	}
	if string(b) != `{"role":"student"}` {
		t.Errorf("序列化结果不符: %s", b)
	}

	var out struct {
		Role Role `json:"role"`
	}
	if err := json.Unmarshal([]byte(`{"role":"faculty"}`), &out); err != nil {
		t.Fatalf("Unmarshal 失败: %v", err)
	}
	if out.Role != RoleFaculty {
		t.Errorf("期望 RoleFaculty，实际=%v", out.Role)
	}
	if err := json.Unmarshal([]byte(`{"role":"root"}`), &out); err == nil {
		t.Error("未知角色反序列化应失败")
	}
}

func TestRole_ScanValue(t *testing.T) {
	var r Role
	if err := r.Scan([]byte("faculty")); err != nil || r != RoleFaculty {
		t.Errorf("Scan([]byte) 失败: %v %v", r, err)
	}
	if err := r.Scan("student"); err != nil || r != RoleStudent {
		t.Errorf("Scan(string) 失败: %v %v", r, err)
	}
	if err := r.Scan(42); err == nil {
		t.Error("Scan(int) 应失败")
	}

	v, err := RoleStudent.Value()
	if err != nil || v != "student" {
		t.Errorf("Value() = %v, %v", v, err)
	}
	if _, err := RoleUnknown.Value(); err == nil {
		t.Error("RoleUnknown.Value() 应失败")
	}
}
