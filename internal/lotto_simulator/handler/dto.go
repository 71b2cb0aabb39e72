package handler

import (
	"strconv"
	"time"

	"lotto_simulator/internal/lotto_simulator/session"
)

// SessionRequest 建立會話或更新號碼時的請求內容，未提供的欄位保持不變
type SessionRequest struct {
	PlayAI      *bool   `json:"play_ai"`
	PlayUser    *bool   `json:"play_user"`
	UserNumbers [][]int `json:"user_numbers"`
}

// RoundsRequest 連續遊玩的回合數，可為字串或數字
type RoundsRequest struct {
	Rounds interface{} `json:"rounds"`
}

// RoundsInput 將請求中的回合數轉為字串交給會話解析
func (r RoundsRequest) RoundsInput() string {
	switch v := r.Rounds.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// NumbersRequest 一組號碼
type NumbersRequest struct {
	Numbers []int `json:"numbers" validate:"required,dive,lotto_ball"`
}

// ScoreRequest 無狀態對獎
type ScoreRequest struct {
	Prediction []int `json:"prediction" validate:"required"`
	Draw       []int `json:"draw" validate:"required"`
}

// TimePlayedQuery 遊玩時間換算參數
type TimePlayedQuery struct {
	Rounds int `form:"rounds" validate:"gte=0"`
}

// SessionView 會話的對外表示
type SessionView struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	UserNumbers [][]int       `json:"user_numbers"`
	Stats       session.Stats `json:"stats"`
}

func newSessionView(s *session.Session) SessionView {
	return SessionView{
		ID:          s.ID(),
		CreatedAt:   s.CreatedAt(),
		UserNumbers: s.UserNumbers(),
		Stats:       s.Stats(),
	}
}

// RoundsResponse 連續遊玩的結果
type RoundsResponse struct {
	Results []*session.RoundResult `json:"results"`
	Stats   session.Stats          `json:"stats"`
}

// ScoreResponse 對獎結果
type ScoreResponse struct {
	CorrectCount int    `json:"correct_count"`
	Prize        int    `json:"prize"`
	Tier         string `json:"tier,omitempty"`
	Matched      []int  `json:"matched"`
}
