package healthcheck

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestReadinessFollowsState(t *testing.T) {
	m := New(zaptest.NewLogger(t))

	_, healthy := m.Run(context.Background(), ReadinessCheck)
	assert.False(t, healthy)

	m.SetReady(true)
	report, healthy := m.Run(context.Background(), ReadinessCheck)
	assert.True(t, healthy)
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, "ok", report.Checks["readiness-state"])
}

func TestLivenessWithoutCheckers(t *testing.T) {
	m := New(nil)
	report, healthy := m.Run(context.Background(), LivenessCheck)
	assert.True(t, healthy)
	assert.Empty(t, report.Checks)
}

func TestFuncCheckerFailure(t *testing.T) {
	m := New(zaptest.NewLogger(t))
	m.SetReady(true)
	m.AddReadinessCheck(&FuncChecker{Name_: "redis", Fn: func(ctx context.Context) error {
		return errors.New("connection refused")
	}})

	rec := httptest.NewRecorder()
	m.Handler(ReadinessCheck)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var report Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "unavailable", report.Status)
	assert.Equal(t, "connection refused", report.Checks["redis"])
	assert.Equal(t, "ok", report.Checks["readiness-state"])
}

func TestFuncCheckerDefaults(t *testing.T) {
	c := &FuncChecker{}
	assert.Equal(t, "func-checker", c.Name())
	assert.Error(t, c.Check(context.Background()))
}

func TestHandlerOK(t *testing.T) {
	m := New(nil)
	m.SetReady(true)

	rec := httptest.NewRecorder()
	m.Handler(ReadinessCheck)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}
