package handler

import (
	"errors"
	"net/http"

	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/pkg/utils"

	"github.com/gin-gonic/gin"
)

// statusOf 將錯誤碼對應到 HTTP 狀態碼
func statusOf(err *draw.LotteryError) int {
	switch err.Code {
	case draw.ErrSessionNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// respondError 以統一格式回應錯誤，非模擬器錯誤視為伺服器錯誤
func respondError(c *gin.Context, err error) {
	var lotteryErr *draw.LotteryError
	if errors.As(err, &lotteryErr) {
		utils.Error(c, statusOf(lotteryErr), lotteryErr.Code, lotteryErr.Message)
		return
	}
	_ = c.Error(err)
	utils.ServerError(c, err)
}

// respondValidation 回應 validator 的驗證錯誤
func respondValidation(c *gin.Context, errs []utils.ValidationError) {
	utils.ValidationFailed(c, utils.ErrorsToMap(errs))
}
