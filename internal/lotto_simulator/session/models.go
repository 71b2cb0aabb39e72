package session

import (
	"lotto_simulator/internal/lotto_simulator/config"
)

// PredictionSource 預測來源
type PredictionSource string

const (
	SourceAI   PredictionSource = "ai"
	SourceUser PredictionSource = "user"
)

// Settings 會話的遊戲參數
type Settings struct {
	WarmupDraws         int `json:"warmup_draws"`
	AIPredictions       int `json:"ai_predictions"`
	TicketCost          int `json:"ticket_cost"`
	MaxUserSets         int `json:"max_user_sets"`
	MaxRoundsPerRequest int `json:"max_rounds_per_request"`
}

// DefaultSettings 與原始遊戲一致的預設參數
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultConfig().Simulator)
}

// SettingsFromConfig 由配置建立會話參數
func SettingsFromConfig(cfg config.SimulatorConfig) Settings {
	return Settings{
		WarmupDraws:         cfg.WarmupDraws,
		AIPredictions:       cfg.AIPredictions,
		TicketCost:          cfg.TicketCost,
		MaxUserSets:         cfg.MaxUserSets,
		MaxRoundsPerRequest: cfg.MaxRoundsPerRequest,
	}
}

// Prediction 一注預測
type Prediction struct {
	Source  PredictionSource `json:"source"`
	Numbers []int            `json:"numbers"`
}

// PredictionResult 一注預測的對獎結果
type PredictionResult struct {
	Index        int              `json:"index"` // 從 1 開始
	Source       PredictionSource `json:"source"`
	Numbers      []int            `json:"numbers"`
	CorrectCount int              `json:"correct_count"`
	Prize        int              `json:"prize"`
	Matched      []int            `json:"matched"`
}

// PrizeCounts 各獎項累計中獎次數
type PrizeCounts struct {
	Jackpot     int `json:"jackpot"`
	FiveNumber  int `json:"five_number"`
	FourNumber  int `json:"four_number"`
	ThreeNumber int `json:"three_number"`
	TwoNumber   int `json:"two_number"`
}

// add 依命中數累加對應獎項
func (p *PrizeCounts) add(correctCount int) {
	switch correctCount {
	case 6:
		p.Jackpot++
	case 5:
		p.FiveNumber++
	case 4:
		p.FourNumber++
	case 3:
		p.ThreeNumber++
	case 2:
		p.TwoNumber++
	}
}

// Stats 會話累計統計
type Stats struct {
	SessionID               string      `json:"session_id"`
	Round                   int         `json:"round"`
	TotalPredictions        int         `json:"total_predictions"`
	TotalWinningPredictions int         `json:"total_winning_predictions"`
	MoneyScore              int         `json:"money_score"`
	TotalWinnings           int         `json:"total_winnings"`
	PrizeCounts             PrizeCounts `json:"prize_counts"`
	Odds                    string      `json:"odds"` // 中獎率百分比，兩位小數
	TimePlayed              string      `json:"time_played"`
	DrawCount               int         `json:"draw_count"`
	PlayAI                  bool        `json:"play_ai"`
	PlayUser                bool        `json:"play_user"`
}

// RoundResult 一個回合的完整結果
type RoundResult struct {
	SessionID     string             `json:"session_id"`
	Round         int                `json:"round"`
	Predictions   []Prediction       `json:"predictions"`
	Actual        []int              `json:"actual"`
	Results       []PredictionResult `json:"results"`
	TotalCorrect  int                `json:"total_correct"`
	RoundWinnings int                `json:"round_winnings"`
	JackpotWon    bool               `json:"jackpot_won"`
	FiveNumberWon bool               `json:"five_number_won"`
	Stats         Stats              `json:"stats"`
}
