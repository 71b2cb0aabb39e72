package handler

import (
	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/internal/lotto_simulator/scoring"
	"lotto_simulator/internal/lotto_simulator/session"
	"lotto_simulator/pkg/utils"

	"github.com/gin-gonic/gin"
)

// LottoHandler 處理不依賴會話的請求
type LottoHandler struct {
	registry *session.Registry
}

func NewLottoHandler(registry *session.Registry) *LottoHandler {
	return &LottoHandler{registry: registry}
}

// Health 健康檢查
// @Summary 健康檢查
// @Tags 系統
// @Produce json
// @Success 200 {object} utils.Response
// @Router /health [get]
func (h *LottoHandler) Health(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":   "ok",
		"sessions": h.registry.Count(),
		"version":  config.GetVersion(),
	})
}

// Score 比對一組預測與開獎號碼
// @Summary 計算中獎
// @Tags 開獎
// @Accept json
// @Produce json
// @Param request body ScoreRequest true "預測與開獎號碼"
// @Success 200 {object} utils.Response{data=ScoreResponse}
// @Failure 400 {object} utils.Response
// @Router /api/v1/score [post]
func (h *LottoHandler) Score(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code, "請求格式錯誤: %v", err))
		return
	}
	if errs := utils.GetValidator().Validate(req); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}

	prediction, err := draw.NormalizePrediction(req.Prediction)
	if err != nil {
		respondError(c, err)
		return
	}
	actual, err := draw.NormalizePrediction(req.Draw)
	if err != nil {
		respondError(c, err)
		return
	}

	correctCount, prize, matched := scoring.Score(prediction, actual)
	utils.Success(c, ScoreResponse{
		CorrectCount: correctCount,
		Prize:        prize,
		Tier:         scoring.TierName(correctCount),
		Matched:      matched,
	})
}

// Prizes 返回獎金表
// @Summary 獎金表
// @Tags 開獎
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/v1/prizes [get]
func (h *LottoHandler) Prizes(c *gin.Context) {
	utils.Success(c, scoring.Tiers())
}

// TimePlayed 將回合數換算為遊玩時間
// @Summary 遊玩時間換算
// @Tags 開獎
// @Produce json
// @Param rounds query int true "回合數"
// @Success 200 {object} utils.Response
// @Router /api/v1/time-played [get]
func (h *LottoHandler) TimePlayed(c *gin.Context) {
	var query TimePlayedQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code, "無效的 rounds 參數: %v", err))
		return
	}
	if errs := utils.GetValidator().Validate(query); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}
	utils.Success(c, gin.H{
		"rounds":      query.Rounds,
		"time_played": scoring.TimePlayed(query.Rounds),
	})
}
