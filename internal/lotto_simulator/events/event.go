// Package events 將每回合的結果發送到日誌、Redis、NATS 與 WebSocket 等輸出端
package events

import (
	"context"
	"encoding/json"
	"time"

	"lotto_simulator/internal/lotto_simulator/session"

	"go.uber.org/zap"
)

// EventTypeRound 回合結果事件類型
const EventTypeRound = "round_result"

// publishTimeout 單次發送的逾時時間
const publishTimeout = 3 * time.Second

// RoundEvent 回合結束後對外發送的事件
type RoundEvent struct {
	Type          string    `json:"type"`
	SessionID     string    `json:"session_id"`
	Round         int       `json:"round"`
	Actual        []int     `json:"actual"`
	Predictions   [][]int   `json:"predictions"`
	RoundWinnings int       `json:"round_winnings"`
	MoneyScore    int       `json:"money_score"`
	JackpotWon    bool      `json:"jackpot_won"`
	FiveNumberWon bool      `json:"five_number_won"`
	Odds          string    `json:"odds"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewRoundEvent 由回合結果建立事件
func NewRoundEvent(result *session.RoundResult) RoundEvent {
	predictions := make([][]int, len(result.Predictions))
	for i, p := range result.Predictions {
		predictions[i] = append([]int(nil), p.Numbers...)
	}
	return RoundEvent{
		Type:          EventTypeRound,
		SessionID:     result.SessionID,
		Round:         result.Round,
		Actual:        append([]int(nil), result.Actual...),
		Predictions:   predictions,
		RoundWinnings: result.RoundWinnings,
		MoneyScore:    result.Stats.MoneyScore,
		JackpotWon:    result.JackpotWon,
		FiveNumberWon: result.FiveNumberWon,
		Odds:          result.Stats.Odds,
		Timestamp:     time.Now(),
	}
}

// Marshal 將事件編碼為 JSON
func (e RoundEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher 事件輸出端
type Publisher interface {
	Publish(ctx context.Context, event RoundEvent) error
	Close() error
}

// Observer 將會話回合轉為事件並交給 Publisher，發送失敗只記錄日誌
type Observer struct {
	publisher Publisher
	logger    *zap.Logger
}

// NewObserver 創建回合觀察者
func NewObserver(publisher Publisher, logger *zap.Logger) *Observer {
	return &Observer{
		publisher: publisher,
		logger:    logger.With(zap.String("component", "round_events")),
	}
}

// OnRound 實現 session.RoundObserver
func (o *Observer) OnRound(ctx context.Context, result *session.RoundResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := o.publisher.Publish(ctx, NewRoundEvent(result)); err != nil {
		o.logger.Warn("發送回合事件失敗",
			zap.String("session_id", result.SessionID),
			zap.Int("round", result.Round),
			zap.Error(err))
	}
}
