package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lotto_simulator/internal/lotto_simulator/config"
	"lotto_simulator/internal/lotto_simulator/session"
	"lotto_simulator/pkg/healthcheck"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleResult(sessionID string, round int) *session.RoundResult {
	return &session.RoundResult{
		SessionID: sessionID,
		Round:     round,
		Predictions: []session.Prediction{
			{Source: session.SourceAI, Numbers: []int{1, 2, 3, 4, 5, 6}},
		},
		Actual:        []int{1, 2, 10, 20, 30, 40},
		RoundWinnings: 5,
		Stats:         session.Stats{MoneyScore: 2, Odds: "100.00"},
	}
}

type mockRedisClient struct {
	mock.Mock
}

func (m *mockRedisClient) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	args := m.Called(ctx, channel, message)
	return args.Get(0).(*redis.IntCmd)
}

func (m *mockRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	args := m.Called(ctx)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *mockRedisClient) Close() error {
	return m.Called().Error(0)
}

type mockNATSConn struct {
	mock.Mock
}

func (m *mockNATSConn) Publish(subject string, data []byte) error {
	return m.Called(subject, data).Error(0)
}

func (m *mockNATSConn) IsConnected() bool {
	return m.Called().Bool(0)
}

func (m *mockNATSConn) Drain() error {
	return m.Called().Error(0)
}

type stubPublisher struct {
	err       error
	published []RoundEvent
	closed    bool
}

func (s *stubPublisher) Publish(ctx context.Context, event RoundEvent) error {
	s.published = append(s.published, event)
	return s.err
}

func (s *stubPublisher) Close() error {
	s.closed = true
	return s.err
}

func TestNewRoundEvent(t *testing.T) {
	result := sampleResult("s1", 3)
	event := NewRoundEvent(result)

	assert.Equal(t, EventTypeRound, event.Type)
	assert.Equal(t, "s1", event.SessionID)
	assert.Equal(t, 3, event.Round)
	assert.Equal(t, [][]int{{1, 2, 3, 4, 5, 6}}, event.Predictions)
	assert.Equal(t, 2, event.MoneyScore)
	assert.Equal(t, "100.00", event.Odds)
	assert.False(t, event.Timestamp.IsZero())

	// 事件不與回合結果共用切片
	event.Actual[0] = 99
	assert.Equal(t, 1, result.Actual[0])
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	publisher := NewLogPublisher(zap.New(core))

	require.NoError(t, publisher.Publish(context.Background(), NewRoundEvent(sampleResult("s1", 1))))
	require.NoError(t, publisher.Close())

	entries := logs.FilterMessage("回合結果").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "s1", entries[0].ContextMap()["session_id"])
	assert.Equal(t, "event_log", entries[0].ContextMap()["component"])
}

func TestRedisPublisher(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Publish", mock.Anything, "lotto:rounds", mock.Anything).Return(redis.NewIntResult(1, nil))
	client.On("Close").Return(nil)

	publisher := NewRedisPublisher(client, "lotto:rounds")
	require.NoError(t, publisher.Publish(context.Background(), NewRoundEvent(sampleResult("s1", 2))))
	require.NoError(t, publisher.Close())

	payload := client.Calls[0].Arguments.Get(2).([]byte)
	var decoded RoundEvent
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "s1", decoded.SessionID)
	assert.Equal(t, 2, decoded.Round)
	client.AssertExpectations(t)
}

func TestRedisPublisherWrapsError(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Publish", mock.Anything, "ch", mock.Anything).Return(redis.NewIntResult(0, errors.New("boom")))

	err := NewRedisPublisher(client, "ch").Publish(context.Background(), NewRoundEvent(sampleResult("s1", 1)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRedisPublisherUnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	publisher := NewRedisPublisher(client, "lotto:rounds")
	defer publisher.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.Error(t, publisher.Publish(ctx, NewRoundEvent(sampleResult("s1", 1))))
}

func TestNATSPublisher(t *testing.T) {
	conn := new(mockNATSConn)
	conn.On("Publish", "lotto.rounds", mock.Anything).Return(nil)
	conn.On("Drain").Return(nil)

	publisher := NewNATSPublisher(conn, "lotto.rounds")
	require.NoError(t, publisher.Publish(context.Background(), NewRoundEvent(sampleResult("s2", 4))))
	require.NoError(t, publisher.Close())

	var decoded RoundEvent
	require.NoError(t, json.Unmarshal(conn.Calls[0].Arguments.Get(1).([]byte), &decoded))
	assert.Equal(t, "s2", decoded.SessionID)
	conn.AssertExpectations(t)
}

func TestNATSPublisherHonoursContext(t *testing.T) {
	conn := new(mockNATSConn)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewNATSPublisher(conn, "lotto.rounds").Publish(ctx, NewRoundEvent(sampleResult("s2", 1)))
	assert.ErrorIs(t, err, context.Canceled)
	conn.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestConnectNATSUnreachable(t *testing.T) {
	_, err := ConnectNATS(config.NATSConfig{URL: "nats://127.0.0.1:1", Name: "test"})
	assert.Error(t, err)
}

func TestMultiPublisherCollectsErrors(t *testing.T) {
	failing := &stubPublisher{err: errors.New("down")}
	healthy := &stubPublisher{}
	multi := NewMultiPublisher(failing, healthy)

	err := multi.Publish(context.Background(), NewRoundEvent(sampleResult("s1", 1)))
	assert.ErrorContains(t, err, "down")
	assert.Len(t, healthy.published, 1, "前一個輸出端失敗不影響後續")

	assert.Error(t, multi.Close())
	assert.True(t, failing.closed)
	assert.True(t, healthy.closed)
	assert.Equal(t, 2, multi.Len())
}

func TestMultiPublisherHealthCheckers(t *testing.T) {
	client := new(mockRedisClient)
	client.On("Ping", mock.Anything).Return(redis.NewStatusResult("PONG", nil))
	conn := new(mockNATSConn)
	conn.On("IsConnected").Return(false)

	multi := NewMultiPublisher(NewLogPublisher(zap.NewNop()), NewRedisPublisher(client, "c"), NewNATSPublisher(conn, "s"))
	checkers := multi.HealthCheckers()
	require.Len(t, checkers, 2)

	assert.Equal(t, "events-redis", checkers[0].Name())
	assert.NoError(t, checkers[0].Check(context.Background()))
	assert.Equal(t, "events-nats", checkers[1].Name())
	assert.ErrorIs(t, checkers[1].Check(context.Background()), errNATSDisconnected)

	health := healthcheck.New(zap.NewNop())
	health.SetReady(true)
	RegisterHealthChecks(health, multi)
	report, healthy := health.Run(context.Background(), healthcheck.ReadinessCheck)
	assert.False(t, healthy)
	assert.Equal(t, "ok", report.Checks["events-redis"])
}

func TestObserverLogsPublishFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	failing := &stubPublisher{err: errors.New("down")}

	NewObserver(failing, zap.New(core)).OnRound(context.Background(), sampleResult("s1", 7))

	require.Len(t, failing.published, 1)
	assert.Equal(t, 7, failing.published[0].Round)
	assert.Equal(t, 1, logs.FilterMessage("發送回合事件失敗").Len())
}

func TestBuildPublishersSkipsUnreachableNATS(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Events.Backends = []string{config.BackendLog, config.BackendNATS, config.BackendWebsocket}
	cfg.Events.NATS.URL = "nats://127.0.0.1:1"
	hub := NewHub(zap.NewNop())

	publishers := BuildPublishers(context.Background(), cfg, hub, zap.NewNop())
	require.Len(t, publishers, 2)
	assert.IsType(t, &LogPublisher{}, publishers[0])
	assert.Same(t, hub, publishers[1])
}

func dialHub(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?session=" + sessionID
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	// 第一則訊息為訂閱確認
	var hello map[string]string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, "subscribed", hello["type"])
	require.Equal(t, sessionID, hello["session_id"])
	return conn
}

func TestHubDeliversOnlySubscribedSession(t *testing.T) {
	hub := NewHub(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Start(ctx)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.ServeWs(w, r, r.URL.Query().Get("session"))
	}))
	defer server.Close()

	connA := dialHub(t, server, "a")
	defer connA.Close()
	connB := dialHub(t, server, "b")
	defer connB.Close()

	assert.Equal(t, 1, hub.ClientCount("a"))
	assert.Equal(t, 2, hub.ClientCount(""))

	require.NoError(t, hub.Publish(context.Background(), NewRoundEvent(sampleResult("a", 1))))
	require.NoError(t, hub.Publish(context.Background(), NewRoundEvent(sampleResult("b", 9))))

	var got RoundEvent
	require.NoError(t, connA.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, connA.ReadJSON(&got))
	assert.Equal(t, "a", got.SessionID)
	assert.Equal(t, 1, got.Round)

	require.NoError(t, connB.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, connB.ReadJSON(&got))
	assert.Equal(t, "b", got.SessionID)
	assert.Equal(t, 9, got.Round)

	require.NoError(t, hub.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount("") == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Error(t, hub.Publish(context.Background(), NewRoundEvent(sampleResult("a", 2))))
}
