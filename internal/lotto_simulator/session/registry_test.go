package session

import (
	"context"
	"sync"
	"testing"

	"lotto_simulator/internal/lotto_simulator/draw"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycleRecorder struct {
	mu     sync.Mutex
	opened []string
	closed []string
	rounds int
}

func (l *lifecycleRecorder) OnRound(ctx context.Context, result *RoundResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rounds++
}

func (l *lifecycleRecorder) OnSessionOpened(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opened = append(l.opened, sessionID)
}

func (l *lifecycleRecorder) OnSessionClosed(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = append(l.closed, sessionID)
}

func TestRegistryCreateGetDelete(t *testing.T) {
	recorder := &lifecycleRecorder{}
	registry := NewRegistry(DefaultSettings(), 1, nil, recorder)

	s := registry.Create()
	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, registry.Count())

	got, err := registry.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = got.PlayRound(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, recorder.rounds, "註冊表的觀察者會收到會話回合")

	require.NoError(t, registry.Delete(s.ID()))
	assert.Zero(t, registry.Count())
	assert.Equal(t, []string{s.ID()}, recorder.opened)
	assert.Equal(t, []string{s.ID()}, recorder.closed)

	_, err = registry.Get(s.ID())
	assert.ErrorIs(t, err, draw.ErrSessionNotFound)
	assert.ErrorIs(t, registry.Delete(s.ID()), draw.ErrSessionNotFound)
}

func TestRegistryListOrder(t *testing.T) {
	registry := NewRegistry(DefaultSettings(), 1, nil)

	first := registry.Create()
	second := registry.Create()
	third := registry.Create()

	list := registry.List()
	require.Len(t, list, 3)
	ids := []string{list[0].ID(), list[1].ID(), list[2].ID()}
	assert.ElementsMatch(t, []string{first.ID(), second.ID(), third.ID()}, ids)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt().Before(list[i-1].CreatedAt()))
	}
}

func TestRegistrySeedIsReproducible(t *testing.T) {
	a := NewRegistry(DefaultSettings(), 99, nil).Create()
	b := NewRegistry(DefaultSettings(), 99, nil).Create()

	ra, err := a.PlayRound(context.Background())
	require.NoError(t, err)
	rb, err := b.PlayRound(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ra.Actual, rb.Actual)
	assert.Equal(t, ra.Predictions, rb.Predictions)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := NewRegistry(DefaultSettings(), 0, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s := registry.Create()
			_, err := s.PlayRounds(context.Background(), "2")
			assert.NoError(t, err)
			_ = registry.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 8, registry.Count())
}
