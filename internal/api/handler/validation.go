package handler

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 学号：字母数字与连字符，3~32 位
var rollNumberPattern = regexp.MustCompile(`^[A-Za-z0-9-]{3,32}$`)

var registerOnce sync.Once

// RegisterValidators 向 gin 的校验引擎注册自定义规则，可重复调用
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		// 错误详情使用 JSON 字段名
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("rollnumber", func(fl validator.FieldLevel) bool {
			return rollNumberPattern.MatchString(fl.Field().String())
		})
	})
}
