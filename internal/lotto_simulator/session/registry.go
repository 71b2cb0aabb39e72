package session

import (
	"sort"
	"sync"
	"time"

	"lotto_simulator/internal/lotto_simulator/draw"
	"lotto_simulator/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LifecycleObserver 可選接口，接收會話建立與刪除通知
type LifecycleObserver interface {
	OnSessionOpened(sessionID string)
	OnSessionClosed(sessionID string)
}

// Registry 以 UUID 管理多個模擬會話
type Registry struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	settings  Settings
	seed      int64
	created   int64
	logger    *zap.Logger
	observers []RoundObserver
}

// NewRegistry 創建會話註冊表。seed 為 0 時每個會話以時間為種子，
// 否則第 n 個會話使用 seed+n，讓整個服務可重現。
func NewRegistry(settings Settings, seed int64, logger *zap.Logger, observers ...RoundObserver) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		sessions:  make(map[string]*Session),
		settings:  settings,
		seed:      seed,
		logger:    logger.With(zap.String("component", "session_registry")),
		observers: observers,
	}
}

// Settings 返回新會話使用的參數
func (r *Registry) Settings() Settings {
	return r.settings
}

// Create 建立新會話並返回
func (r *Registry) Create() *Session {
	r.mu.Lock()
	id := uuid.New().String()
	r.created++
	seed := r.seed + r.created
	if r.seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := New(id, r.settings, utils.NewRandomGenerator(seed), r.logger, r.observers...)
	r.sessions[id] = s
	r.mu.Unlock()

	r.logger.Info("建立模擬會話", zap.String("session_id", id), zap.Int64("seed", seed))
	for _, observer := range r.observers {
		if lo, ok := observer.(LifecycleObserver); ok {
			lo.OnSessionOpened(id)
		}
	}
	return s
}

// Get 依ID取得會話
func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, draw.NewLotteryErrorWithFormat(draw.ErrSessionNotFound.Code, "找不到模擬會話: %s", id)
	}
	return s, nil
}

// Delete 刪除會話
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	if _, ok := r.sessions[id]; !ok {
		r.mu.Unlock()
		return draw.NewLotteryErrorWithFormat(draw.ErrSessionNotFound.Code, "找不到模擬會話: %s", id)
	}
	delete(r.sessions, id)
	r.mu.Unlock()

	r.logger.Info("刪除模擬會話", zap.String("session_id", id))
	for _, observer := range r.observers {
		if lo, ok := observer.(LifecycleObserver); ok {
			lo.OnSessionClosed(id)
		}
	}
	return nil
}

// List 依建立時間返回所有會話
func (r *Registry) List() []*Session {
	r.mu.RLock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.mu.RUnlock()

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt().Before(sessions[j].CreatedAt())
	})
	return sessions
}

// Count 返回目前會話數量
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
