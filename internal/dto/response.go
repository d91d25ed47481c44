package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	res "debugops/server/internal/response"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse 按业务错误携带的 HTTP 状态码返回 {error, code}
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.Status, res.ErrorBody{Error: err.Msg, Code: err.Code})
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// 取第一个错误
		if len(validationErrs) > 0 {
			firstErr := validationErrs[0]
			jsonField := toCamelCase(firstErr.Field())

			var message string
			switch firstErr.Tag() {
			case "required":
				message = fmt.Sprintf("field '%s' is required", jsonField)
			case "max":
				message = fmt.Sprintf("field '%s' must be at most %s characters", jsonField, firstErr.Param())
			case "oneof":
				message = fmt.Sprintf("field '%s' must be one of: %s", jsonField, firstErr.Param())
			default:
				message = fmt.Sprintf("field '%s' is invalid", jsonField)
			}

			ErrorResponse(c, res.NewValidationError(res.MissingRequiredField, message))
			return
		}
	}

	// 不是 validation 错误时返回通用解析错误
	ErrorResponse(c, res.NewValidationError(res.InvalidParameter, "invalid request body"))
}

// toCamelCase 把结构体字段名转成 JSON 风格的首字母小写形式
func toCamelCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
