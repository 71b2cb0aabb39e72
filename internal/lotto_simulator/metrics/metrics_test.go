package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lotto_simulator/internal/lotto_simulator/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderOnRound(t *testing.T) {
	r := NewRecorder()

	r.OnRound(context.Background(), &session.RoundResult{
		Results: []session.PredictionResult{
			{Source: session.SourceAI, CorrectCount: 2, Prize: 5},
			{Source: session.SourceAI, CorrectCount: 0},
			{Source: session.SourceUser, CorrectCount: 4, Prize: 1000},
		},
		RoundWinnings: 1005,
	})
	r.OnRound(context.Background(), &session.RoundResult{})

	assert.Equal(t, 2.0, testutil.ToFloat64(r.roundsPlayed))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.predictions.WithLabelValues("ai")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.predictions.WithLabelValues("user")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.prizeWins.WithLabelValues("2-Number")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.prizeWins.WithLabelValues("4-Number")))
	assert.Equal(t, 1005.0, testutil.ToFloat64(r.winnings))
}

func TestRecorderSessionGauge(t *testing.T) {
	r := NewRecorder()
	registry := session.NewRegistry(session.DefaultSettings(), 1, nil, r)

	a := registry.Create()
	registry.Create()
	assert.Equal(t, 2.0, testutil.ToFloat64(r.sessionsActive))

	require.NoError(t, registry.Delete(a.ID()))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.sessionsActive))
}

func TestRecorderObservesSessionRounds(t *testing.T) {
	r := NewRecorder()
	registry := session.NewRegistry(session.DefaultSettings(), 1, nil, r)

	_, err := registry.Create().PlayRounds(context.Background(), "3")
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(r.roundsPlayed))
	assert.Equal(t, 18.0, testutil.ToFloat64(r.predictions.WithLabelValues("ai")))
}

func TestHandlerAndMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRecorder()

	router := gin.New()
	router.Use(r.GinMiddleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(r.Handler()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.httpRequests.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "lotto_rounds_played_total")
	assert.Contains(t, string(body), "lotto_sessions_active")
}
