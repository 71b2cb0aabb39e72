// Package metrics 以 Prometheus 記錄回合、預測、中獎與 HTTP 請求
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"lotto_simulator/internal/lotto_simulator/scoring"
	"lotto_simulator/internal/lotto_simulator/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "lotto"

// Recorder 持有模擬器的 Prometheus 指標，並實現 session.RoundObserver
type Recorder struct {
	registry *prometheus.Registry

	roundsPlayed   prometheus.Counter
	predictions    *prometheus.CounterVec
	prizeWins      *prometheus.CounterVec
	winnings       prometheus.Counter
	sessionsActive prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder 創建指標並註冊到獨立的 Registry
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		roundsPlayed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_played_total",
			Help:      "Total number of simulated rounds.",
		}),
		predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Total number of scored predictions by source.",
		}, []string{"source"}),
		prizeWins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prize_wins_total",
			Help:      "Total number of winning predictions by prize tier.",
		}, []string{"tier"}),
		winnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "winnings_total",
			Help:      "Total prize money won across all sessions.",
		}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Current number of simulator sessions.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms 到約 4s
		}, []string{"method", "path"}),
	}

	r.registry.MustRegister(
		r.roundsPlayed,
		r.predictions,
		r.prizeWins,
		r.winnings,
		r.sessionsActive,
		r.httpRequests,
		r.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Registry 返回底層 Registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// OnRound 依回合結果累加指標
func (r *Recorder) OnRound(ctx context.Context, result *session.RoundResult) {
	r.roundsPlayed.Inc()
	for _, pr := range result.Results {
		r.predictions.WithLabelValues(string(pr.Source)).Inc()
		if pr.Prize > 0 {
			r.prizeWins.WithLabelValues(scoring.TierName(pr.CorrectCount)).Inc()
		}
	}
	r.winnings.Add(float64(result.RoundWinnings))
}

// OnSessionOpened 實現 session.LifecycleObserver
func (r *Recorder) OnSessionOpened(sessionID string) {
	r.sessionsActive.Inc()
}

// OnSessionClosed 實現 session.LifecycleObserver
func (r *Recorder) OnSessionClosed(sessionID string) {
	r.sessionsActive.Dec()
}

// Handler 返回 /metrics 處理器
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// GinMiddleware 記錄每個請求的次數與耗時，路徑使用路由模板避免標籤爆量
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		r.httpRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		r.httpDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

var Module = fx.Module("metrics",
	fx.Provide(
		NewRecorder,
		fx.Annotate(
			func(r *Recorder) session.RoundObserver { return r },
			fx.ResultTags(`group:"round_observers"`),
		),
	),
)
