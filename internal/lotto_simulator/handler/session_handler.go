package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/internal/lotto_simulator/events"
	"lotto_simulator/internal/lotto_simulator/session"
	"lotto_simulator/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler 處理模擬會話相關請求
type SessionHandler struct {
	registry *session.Registry
	hub      *events.Hub
	logger   *zap.Logger
}

// NewSessionHandler 創建會話處理器
func NewSessionHandler(registry *session.Registry, hub *events.Hub, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		registry: registry,
		hub:      hub,
		logger:   logger.With(zap.String("component", "session_handler")),
	}
}

// bindOptionalJSON 允許空的請求內容
func bindOptionalJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code, "請求格式錯誤: %v", err)
	}
	return nil
}

// applySessionRequest 依請求更新號碼與遊玩模式，號碼不合法時不改變任何設定
func applySessionRequest(s *session.Session, req SessionRequest) error {
	if req.UserNumbers != nil {
		if err := s.SetUserNumbers(req.UserNumbers); err != nil {
			return err
		}
	}
	if req.PlayAI != nil || req.PlayUser != nil {
		stats := s.Stats()
		playAI, playUser := stats.PlayAI, stats.PlayUser
		if req.PlayAI != nil {
			playAI = *req.PlayAI
		}
		if req.PlayUser != nil {
			playUser = *req.PlayUser
		}
		s.SetPlayModes(playAI, playUser)
	}
	return nil
}

// lookup 依路徑參數取得會話，找不到時已回應錯誤
func (h *SessionHandler) lookup(c *gin.Context) (*session.Session, bool) {
	s, err := h.registry.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return s, true
}

// CreateSession 建立新會話
// @Summary 建立會話
// @Tags 會話
// @Accept json
// @Produce json
// @Param request body SessionRequest false "遊玩模式與使用者號碼"
// @Success 201 {object} utils.Response{data=SessionView}
// @Failure 400 {object} utils.Response
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req SessionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	s := h.registry.Create()
	if err := applySessionRequest(s, req); err != nil {
		_ = h.registry.Delete(s.ID())
		respondError(c, err)
		return
	}
	utils.Created(c, newSessionView(s))
}

// ListSessions 列出所有會話
// @Summary 列出會話
// @Tags 會話
// @Produce json
// @Success 200 {object} utils.Response{data=[]SessionView}
// @Router /api/v1/sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	sessions := h.registry.List()
	views := make([]SessionView, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, newSessionView(s))
	}
	utils.Success(c, views)
}

// GetSession 取得會話狀態
// @Summary 取得會話
// @Tags 會話
// @Produce json
// @Param id path string true "會話 ID"
// @Success 200 {object} utils.Response{data=SessionView}
// @Failure 404 {object} utils.Response
// @Router /api/v1/sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	utils.Success(c, newSessionView(s))
}

// DeleteSession 刪除會話
// @Summary 刪除會話
// @Tags 會話
// @Param id path string true "會話 ID"
// @Success 200 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /api/v1/sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	if err := h.registry.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"id": c.Param("id")})
}

// UpdateNumbers 更新使用者號碼與遊玩模式
// @Summary 更新使用者號碼
// @Tags 會話
// @Accept json
// @Produce json
// @Param id path string true "會話 ID"
// @Param request body SessionRequest true "遊玩模式與使用者號碼"
// @Success 200 {object} utils.Response{data=SessionView}
// @Failure 400 {object} utils.Response
// @Router /api/v1/sessions/{id}/numbers [put]
func (h *SessionHandler) UpdateNumbers(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var req SessionRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := applySessionRequest(s, req); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, newSessionView(s))
}

// PlayRounds 連續遊玩多個回合，format=text 時回傳文字報告
// @Summary 遊玩回合
// @Tags 會話
// @Accept json
// @Produce json,plain
// @Param id path string true "會話 ID"
// @Param format query string false "text 時回傳文字報告"
// @Param request body RoundsRequest true "回合數"
// @Success 200 {object} utils.Response{data=RoundsResponse}
// @Failure 400 {object} utils.Response
// @Router /api/v1/sessions/{id}/rounds [post]
func (h *SessionHandler) PlayRounds(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var req RoundsRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	results, err := s.PlayRounds(c.Request.Context(), req.RoundsInput())
	if err != nil {
		if c.Query("format") == "text" && errors.Is(err, draw.ErrInvalidRoundCount) {
			c.String(http.StatusBadRequest, session.InvalidInputMessage+"\n")
			return
		}
		respondError(c, err)
		return
	}

	if c.Query("format") == "text" {
		reports := make([]string, 0, len(results))
		for _, r := range results {
			reports = append(reports, session.FormatRound(r))
		}
		c.String(http.StatusOK, strings.Join(reports, "\n"))
		return
	}

	utils.Success(c, RoundsResponse{Results: results, Stats: s.Stats()})
}

// ResetSession 重置會話，full=true 時一併清空開獎歷史
// @Summary 重置會話
// @Tags 會話
// @Produce json
// @Param id path string true "會話 ID"
// @Param full query bool false "一併清空開獎歷史"
// @Success 200 {object} utils.Response{data=SessionView}
// @Router /api/v1/sessions/{id}/reset [post]
func (h *SessionHandler) ResetSession(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	full := false
	if value := c.Query("full"); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			respondError(c, draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code, "無效的 full 參數: %s", value))
			return
		}
		full = parsed
	}

	s.Reset(full)
	utils.Success(c, newSessionView(s))
}

// Predict 產生一組熱冷號預測
// @Summary 熱冷號預測
// @Tags 開獎
// @Produce json
// @Param id path string true "會話 ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/sessions/{id}/draws/predict [get]
func (h *SessionHandler) Predict(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	utils.Success(c, gin.H{"numbers": s.Predict()})
}

// OverdueNumbers 最近 10 期未開出的號碼
// @Summary 冷號
// @Tags 開獎
// @Produce json
// @Param id path string true "會話 ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/sessions/{id}/draws/overdue [get]
func (h *SessionHandler) OverdueNumbers(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	utils.Success(c, gin.H{"numbers": s.OverdueNumbers()})
}

// FrequentNumbers 熱號
// @Summary 熱號
// @Tags 開獎
// @Produce json
// @Param id path string true "會話 ID"
// @Success 200 {object} utils.Response
// @Router /api/v1/sessions/{id}/draws/frequent [get]
func (h *SessionHandler) FrequentNumbers(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	utils.Success(c, gin.H{"numbers": s.FrequentNumbers()})
}

// IsPopular 判斷號碼組合是否曾經開出
// @Summary 號碼是否曾開出
// @Tags 開獎
// @Accept json
// @Produce json
// @Param id path string true "會話 ID"
// @Param request body NumbersRequest true "號碼"
// @Success 200 {object} utils.Response
// @Router /api/v1/sessions/{id}/draws/popular [post]
func (h *SessionHandler) IsPopular(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}

	var req NumbersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code, "請求格式錯誤: %v", err))
		return
	}
	if errs := utils.GetValidator().Validate(req); len(errs) > 0 {
		respondValidation(c, errs)
		return
	}
	utils.Success(c, gin.H{"numbers": req.Numbers, "popular": s.IsPopular(req.Numbers)})
}

// Subscribe 以 WebSocket 訂閱會話的回合結果
// @Summary 訂閱回合結果
// @Tags WebSocket
// @Param id path string true "會話 ID"
// @Success 101 {string} string "WebSocket連接成功"
// @Router /ws/sessions/{id} [get]
func (h *SessionHandler) Subscribe(c *gin.Context) {
	s, ok := h.lookup(c)
	if !ok {
		return
	}
	if err := h.hub.ServeWs(c.Writer, c.Request, s.ID()); err != nil {
		h.logger.Warn("WebSocket 訂閱失敗", zap.String("session_id", s.ID()), zap.Error(err))
	}
}
