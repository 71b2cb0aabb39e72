// Package session 是驅動開獎引擎的控制迴圈：每個 Session 擁有一個引擎，
// 記錄回合數、金額分數與各獎項統計，並按原始遊戲流程進行回合。
package session

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/internal/lotto_simulator/scoring"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// maxRegenerations AI 預測與已開出組合或本回合其他預測重複時的重抽上限
const maxRegenerations = 100

// RoundObserver 在每個回合結束後接收結果
type RoundObserver interface {
	OnRound(ctx context.Context, result *RoundResult)
}

// Session 單一模擬會話，所有操作串行執行
type Session struct {
	mu        sync.Mutex
	id        string
	settings  Settings
	engine    *draw.Engine
	logger    *zap.Logger
	observers []RoundObserver
	createdAt time.Time

	playAI   bool
	playUser bool
	userSets [][]int

	round                   int
	totalPredictions        int
	totalWinningPredictions int
	moneyScore              int
	totalWinnings           int
	prizeCounts             PrizeCounts
}

// New 建立新的模擬會話，預設只玩 AI 號碼
func New(id string, settings Settings, rng draw.Source, logger *zap.Logger, observers ...RoundObserver) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		id:        id,
		settings:  settings,
		engine:    draw.NewEngine(rng),
		logger:    logger.With(zap.String("session_id", id)),
		observers: observers,
		createdAt: time.Now(),
		playAI:    true,
	}
}

// ID 返回會話ID
func (s *Session) ID() string {
	return s.id
}

// CreatedAt 返回建立時間
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// SetPlayModes 設定是否使用 AI 號碼與使用者號碼
func (s *Session) SetPlayModes(playAI, playUser bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playAI = playAI
	s.playUser = playUser
}

// SetUserNumbers 設定使用者號碼組。空組會被忽略；
// 任何一組不合法時返回錯誤且保留原本的選擇。
func (s *Session) SetUserNumbers(sets [][]int) error {
	normalized := make([][]int, 0, len(sets))
	for i, set := range sets {
		if len(set) == 0 {
			continue
		}
		numbers, err := draw.NormalizePrediction(set)
		if err != nil {
			s.logger.Info("使用者號碼不合法", zap.Int("set", i+1), zap.Ints("numbers", set), zap.Error(err))
			return err
		}
		normalized = append(normalized, numbers)
	}

	if len(normalized) > s.settings.MaxUserSets {
		return draw.NewLotteryErrorWithFormat(draw.ErrInvalidParameter.Code,
			"最多只能選擇 %d 組號碼，實際為 %d 組", s.settings.MaxUserSets, len(normalized))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSets = normalized
	return nil
}

// UserNumbers 返回目前的使用者號碼組副本
func (s *Session) UserNumbers() [][]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySets(s.userSets)
}

// PlayRound 進行一個回合並通知觀察者
func (s *Session) PlayRound(ctx context.Context) (*RoundResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	result := s.playRoundLocked()
	s.mu.Unlock()

	s.notify(ctx, result)
	return result, nil
}

// PlayRounds 解析回合數並連續進行多個回合。
// 輸入不是有效的非負整數或超過上限時返回錯誤，不改變任何狀態。
func (s *Session) PlayRounds(ctx context.Context, input string) ([]*RoundResult, error) {
	count, err := ParseRoundCount(input, s.settings.MaxRoundsPerRequest)
	if err != nil {
		s.logger.Info("回合數輸入無效", zap.String("input", input), zap.Error(err))
		return nil, err
	}

	results := make([]*RoundResult, 0, count)
	for i := 0; i < count; i++ {
		result, err := s.PlayRound(ctx)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

// ParseRoundCount 將輸入字串轉為回合數
func ParseRoundCount(input string, max int) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, draw.NewLotteryErrorWithFormat(draw.ErrInvalidRoundCount.Code, "無效的回合數: %q", input)
	}
	if count < 0 {
		return 0, draw.NewLotteryErrorWithFormat(draw.ErrInvalidRoundCount.Code, "回合數不可為負數: %d", count)
	}
	if max > 0 && count > max {
		return 0, draw.NewLotteryErrorWithFormat(draw.ErrInvalidRoundCount.Code, "回合數 %d 超過上限 %d", count, max)
	}
	return count, nil
}

func (s *Session) playRoundLocked() *RoundResult {
	s.round++

	// 先開出數期累積歷史
	for i := 0; i < s.settings.WarmupDraws; i++ {
		s.engine.Draw()
	}

	predictions := make([]Prediction, 0, s.settings.AIPredictions+len(s.userSets))
	if s.playAI {
		for i := 0; i < s.settings.AIPredictions; i++ {
			predictions = append(predictions, Prediction{
				Source:  SourceAI,
				Numbers: s.uniquePrediction(predictions),
			})
		}
	}
	if s.playUser {
		for _, set := range s.userSets {
			predictions = append(predictions, Prediction{
				Source:  SourceUser,
				Numbers: append([]int(nil), set...),
			})
		}
	}

	s.totalPredictions += len(predictions)
	s.moneyScore -= len(predictions) * s.settings.TicketCost

	actual := s.engine.Draw()

	result := &RoundResult{
		SessionID:   s.id,
		Round:       s.round,
		Predictions: predictions,
		Actual:      actual,
		Results:     make([]PredictionResult, 0, len(predictions)),
	}

	for i, prediction := range predictions {
		correctCount, prize, matched := scoring.Score(prediction.Numbers, actual)
		result.TotalCorrect += correctCount
		result.RoundWinnings += prize

		if prize > 0 {
			s.totalWinningPredictions++
			s.prizeCounts.add(correctCount)
			switch correctCount {
			case 6:
				result.JackpotWon = true
			case 5:
				result.FiveNumberWon = true
			}
		}

		result.Results = append(result.Results, PredictionResult{
			Index:        i + 1,
			Source:       prediction.Source,
			Numbers:      prediction.Numbers,
			CorrectCount: correctCount,
			Prize:        prize,
			Matched:      matched,
		})
	}

	s.moneyScore += result.RoundWinnings
	s.totalWinnings += result.RoundWinnings
	result.Stats = s.statsLocked()

	s.logger.Debug("回合結束",
		zap.Int("round", s.round),
		zap.Ints("actual", actual),
		zap.Int("predictions", len(predictions)),
		zap.Int("round_winnings", result.RoundWinnings),
		zap.Int("money_score", s.moneyScore))

	return result
}

// uniquePrediction 產生既不是已開出組合、也不與本回合其他預測重複的 AI 預測
func (s *Session) uniquePrediction(existing []Prediction) []int {
	prediction := s.engine.Predict()
	for attempt := 0; s.engine.IsPopular(prediction) || containsNumbers(existing, prediction); attempt++ {
		if attempt >= maxRegenerations {
			s.logger.Warn("AI 預測重抽次數已達上限，接受目前結果",
				zap.Ints("prediction", prediction), zap.Int("attempts", attempt))
			break
		}
		prediction = s.engine.Predict()
	}
	return prediction
}

func containsNumbers(predictions []Prediction, numbers []int) bool {
	for _, p := range predictions {
		if equalInts(p.Numbers, numbers) {
			return true
		}
	}
	return false
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func copySets(sets [][]int) [][]int {
	out := make([][]int, len(sets))
	for i, set := range sets {
		out[i] = append([]int(nil), set...)
	}
	return out
}

func (s *Session) notify(ctx context.Context, result *RoundResult) {
	for _, observer := range s.observers {
		observer.OnRound(ctx, result)
	}
}

// Stats 返回目前的累計統計
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) statsLocked() Stats {
	return Stats{
		SessionID:               s.id,
		Round:                   s.round,
		TotalPredictions:        s.totalPredictions,
		TotalWinningPredictions: s.totalWinningPredictions,
		MoneyScore:              s.moneyScore,
		TotalWinnings:           s.totalWinnings,
		PrizeCounts:             s.prizeCounts,
		Odds:                    WinningOdds(s.totalWinningPredictions, s.totalPredictions),
		TimePlayed:              scoring.TimePlayed(s.round),
		DrawCount:               s.engine.DrawCount(),
		PlayAI:                  s.playAI,
		PlayUser:                s.playUser,
	}
}

// exactFloatExponent 足以容納任何 float64 的完整十進位展開
const exactFloatExponent = -1100

// WinningOdds 以兩位小數返回中獎預測佔總預測的百分比，沒有預測時為 0.00。
// 先以 float64 計算，再對其精確二進位值做銀行家捨入，與 printf 的 %.2f 一致。
func WinningOdds(winning, total int) string {
	if total == 0 {
		return decimal.Zero.StringFixedBank(2)
	}
	percent := float64(winning) / float64(total) * 100
	return decimal.NewFromFloatWithExponent(percent, exactFloatExponent).StringFixedBank(2)
}

// Reset 清除分數與使用者號碼；full 為 true 時一併清空開獎歷史
func (s *Session) Reset(full bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.round = 0
	s.totalPredictions = 0
	s.totalWinningPredictions = 0
	s.moneyScore = 0
	s.totalWinnings = 0
	s.prizeCounts = PrizeCounts{}
	s.userSets = nil

	if full {
		s.engine.Reset()
	}
	s.logger.Info("會話已重置", zap.Bool("full", full))
}

// Draw 直接開出一期，計入歷史
func (s *Session) Draw() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Draw()
}

// Predict 產生一組熱冷號預測
func (s *Session) Predict() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Predict()
}

// OverdueNumbers 返回最近 10 期未開出的號碼
func (s *Session) OverdueNumbers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.OverdueNumbers()
}

// FrequentNumbers 返回熱號
func (s *Session) FrequentNumbers() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.FrequentNumbers()
}

// IsPopular 判斷該組號碼是否曾經開出
func (s *Session) IsPopular(numbers []int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.IsPopular(numbers)
}
