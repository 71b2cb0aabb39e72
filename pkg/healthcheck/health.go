package healthcheck

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Checker 定義健康檢查的接口
type Checker interface {
	// Name 返回檢查器的名稱
	Name() string

	// Check 執行健康檢查，如果健康返回 nil，否則返回錯誤
	Check(ctx context.Context) error
}

// CheckType 表示檢查類型：活性檢查或就緒檢查
type CheckType int

const (
	LivenessCheck CheckType = iota
	ReadinessCheck
)

const defaultCheckTimeout = 3 * time.Second

// Manager 健康檢查管理器
type Manager struct {
	readyState atomic.Bool
	checkers   map[CheckType][]Checker
	logger     *zap.Logger
	mu         sync.RWMutex
}

// New 創建健康檢查管理器，初始狀態為未就緒
func New(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Manager{
		checkers: make(map[CheckType][]Checker),
		logger:   logger.With(zap.String("component", "health_manager")),
	}
	m.AddReadinessCheck(&readinessStateChecker{manager: m})
	return m
}

// AddChecker 添加一個特定類型的健康檢查器
func (m *Manager) AddChecker(checkType CheckType, checker Checker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Debug("添加健康檢查",
		zap.String("checker", checker.Name()),
		zap.Int("type", int(checkType)))
	m.checkers[checkType] = append(m.checkers[checkType], checker)
}

// AddLivenessCheck 添加一個活性檢查
func (m *Manager) AddLivenessCheck(checker Checker) {
	m.AddChecker(LivenessCheck, checker)
}

// AddReadinessCheck 添加一個就緒檢查
func (m *Manager) AddReadinessCheck(checker Checker) {
	m.AddChecker(ReadinessCheck, checker)
}

// SetReady 設置服務的就緒狀態
func (m *Manager) SetReady(ready bool) {
	if m.readyState.Swap(ready) != ready {
		if ready {
			m.logger.Info("服務已標記為就緒")
		} else {
			m.logger.Info("服務已標記為未就緒")
		}
	}
}

// IsReady 返回服務的就緒狀態
func (m *Manager) IsReady() bool {
	return m.readyState.Load()
}

// Report 單次檢查結果
type Report struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Run 執行指定類型的所有檢查，返回是否全部通過
func (m *Manager) Run(ctx context.Context, checkType CheckType) (Report, bool) {
	m.mu.RLock()
	checkers := append([]Checker{}, m.checkers[checkType]...)
	m.mu.RUnlock()

	report := Report{Status: "ok", Checks: make(map[string]string, len(checkers))}
	healthy := true
	for _, checker := range checkers {
		checkCtx, cancel := context.WithTimeout(ctx, defaultCheckTimeout)
		err := checker.Check(checkCtx)
		cancel()

		if err != nil {
			m.logger.Warn("健康檢查失敗",
				zap.String("checker", checker.Name()),
				zap.Error(err))
			report.Checks[checker.Name()] = err.Error()
			healthy = false
			continue
		}
		report.Checks[checker.Name()] = "ok"
	}
	if !healthy {
		report.Status = "unavailable"
	}
	return report, healthy
}

// Handler 返回指定類型的 HTTP 處理程序
func (m *Manager) Handler(checkType CheckType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, healthy := m.Run(r.Context(), checkType)

		status := http.StatusOK
		if !healthy {
			status = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(report)
	}
}

// readinessStateChecker 檢查服務的就緒狀態
type readinessStateChecker struct {
	manager *Manager
}

func (r *readinessStateChecker) Name() string {
	return "readiness-state"
}

func (r *readinessStateChecker) Check(ctx context.Context) error {
	if !r.manager.IsReady() {
		return errNotReady
	}
	return nil
}
