package utils

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// 球號範圍，與開獎規則一致
const (
	minBall = 1
	maxBall = 49
)

// ValidationError 單一欄位的驗證錯誤
type ValidationError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

// CustomValidator 基於 go-playground/validator 的驗證器
type CustomValidator struct {
	validator *validator.Validate
}

var (
	validatorInstance *CustomValidator
	validatorOnce     sync.Once
)

// GetValidator 返回全局驗證器實例
func GetValidator() *CustomValidator {
	validatorOnce.Do(func() {
		v := validator.New()

		// 使用 JSON 或 form 標籤作為欄位名稱
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name != "" && name != "-" {
					return name
				}
			}
			return fld.Name
		})

		_ = v.RegisterValidation("lotto_ball", validateLottoBall)

		validatorInstance = &CustomValidator{validator: v}
	})
	return validatorInstance
}

// validateLottoBall 球號必須在 1 到 49 之間
func validateLottoBall(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := fl.Field().Int()
		return n >= minBall && n <= maxBall
	default:
		return false
	}
}

// Validate 驗證結構體
func (v *CustomValidator) Validate(obj interface{}) []ValidationError {
	if err := v.validator.Struct(obj); err != nil {
		return translateErrors(err)
	}
	return nil
}

// ValidateField 以標籤驗證單一值
func (v *CustomValidator) ValidateField(val interface{}, tag string) []ValidationError {
	if err := v.validator.Var(val, tag); err != nil {
		return translateErrors(err)
	}
	return nil
}

func translateErrors(err error) []ValidationError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []ValidationError{{Message: err.Error()}}
	}

	result := make([]ValidationError, 0, len(validationErrors))
	for _, e := range validationErrors {
		result = append(result, ValidationError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Value:   e.Value(),
			Message: defaultErrorMessage(e.Field(), e.Tag(), e.Param()),
		})
	}
	return result
}

// ErrorsToMap 將驗證錯誤轉為 欄位 -> 訊息
func ErrorsToMap(errs []ValidationError) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func defaultErrorMessage(field, tag, param string) string {
	switch tag {
	case "required":
		return field + "為必填欄位"
	case "min", "gte":
		return field + "不可小於" + param
	case "max", "lte":
		return field + "不可大於" + param
	case "len":
		return field + "長度必須為" + param
	case "unique":
		return field + "不可包含重複的值"
	case "lotto_ball":
		return field + "必須是 1 到 49 之間的球號"
	default:
		return field + "格式不正確"
	}
}
