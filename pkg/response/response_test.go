package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/AbhinandanNM/internal-assessment-portal/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func run(err error) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, err)
	return w, c
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	return resp
}

func TestFromError_Kinds(t *testing.T) {
	cases := []struct {
		err        error
		wantStatus int
		wantCode   int
	}{
		{apperrors.Validation(0, "bad"), http.StatusBadRequest, CodeValidation},
		{apperrors.New(apperrors.KindInvalidCredentials, 11001, "bad creds"), http.StatusUnauthorized, 11001},
		{apperrors.Forbidden(13003, "scope"), http.StatusForbidden, 13003},
		{fmt.Errorf("wrap: %w", apperrors.NotFound(12001, "course")), http.StatusNotFound, 12001},
		{apperrors.Conflict(0, "dup"), http.StatusBadRequest, CodeConflict},
	}
	for _, tc := range cases {
		w, _ := run(tc.err)
		if w.Code != tc.wantStatus {
			t.Errorf("%v: 期望状态 %d，实际 %d", tc.err, tc.wantStatus, w.Code)
		}
		if resp := decode(t, w); resp.Code != tc.wantCode {
			t.Errorf("%v: 期望 code %d，实际 %d", tc.err, tc.wantCode, resp.Code)
		}
	}
}

func TestFromError_Internal(t *testing.T) {
	w, c := run(errors.New("pq: connection refused"))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("期望 500，实际 %d", w.Code)
	}
	resp := decode(t, w)
	if resp.Message != "服务器内部错误" {
		t.Errorf("不应泄漏内部错误信息，实际 message=%s", resp.Message)
	}
	if len(c.Errors) != 1 {
		t.Errorf("内部错误应记录到 gin 上下文，实际 %d 条", len(c.Errors))
	}
}
