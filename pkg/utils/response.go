package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 統一的 JSON 回應格式，Error 為錯誤碼
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    http.StatusCreated,
		Message: "created",
		Data:    data,
	})
}

// Error 以指定狀態碼、錯誤碼與訊息回應
func Error(c *gin.Context, status int, errorCode, message string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
		Error:   errorCode,
	})
}

// ValidationFailed 以 400 回應欄位驗證錯誤
func ValidationFailed(c *gin.Context, errors map[string]string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "validation error",
		Error:   "INVALID_PARAMETER",
		Data:    errors,
	})
}

func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:    http.StatusInternalServerError,
		Message: "internal server error",
		Error:   err.Error(),
	})
}
