package timer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newManualCountdown(seconds int, opts ...Option) (*Countdown, *Manual) {
	m := NewManual()
	return New(seconds, append([]Option{WithTicker(m.NewTicker)}, opts...)...), m
}

func TestCountdownRunsToCompletion(t *testing.T) {
	var mu sync.Mutex
	var ticks []int
	final := make(chan State, 1)
	c, m := newManualCountdown(3,
		OnTick(func(r int) {
			mu.Lock()
			ticks = append(ticks, r)
			mu.Unlock()
		}),
		OnDone(func(s State) { final <- s }),
	)

	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, Running, c.State())

	for i := 0; i < 3; i++ {
		require.True(t, m.Tick())
	}
	assert.Equal(t, Finished, <-final)
	assert.Equal(t, Finished, c.Wait())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 3, c.Elapsed())
	assert.False(t, m.Active())

	mu.Lock()
	assert.Equal(t, []int{2, 1, 0}, ticks)
	mu.Unlock()
}

func TestCountdownPauseStopsTicker(t *testing.T) {
	c, m := newManualCountdown(5)
	require.NoError(t, c.Start(context.Background()))

	require.True(t, m.Tick())
	require.Eventually(t, func() bool { return c.Remaining() == 4 }, time.Second, time.Millisecond)

	require.NoError(t, c.Pause())
	assert.Equal(t, Paused, c.State())
	assert.False(t, m.Active(), "paused countdown must not hold a ticker")
	assert.False(t, m.Tick())
	assert.Equal(t, 4, c.Remaining())

	require.NoError(t, c.Resume())
	assert.Equal(t, 2, m.Created())
	assert.True(t, m.Active())
	require.True(t, m.Tick())
	require.Eventually(t, func() bool { return c.Remaining() == 3 }, time.Second, time.Millisecond)

	require.NoError(t, c.Toggle())
	assert.Equal(t, Paused, c.State())
	require.NoError(t, c.Toggle())
	assert.Equal(t, Running, c.State())

	require.NoError(t, c.Cancel())
	assert.Equal(t, Cancelled, c.Wait())
	assert.Equal(t, 3, c.Remaining())
}

func TestCountdownInvalidTransitions(t *testing.T) {
	c, _ := newManualCountdown(2)

	assert.ErrorIs(t, c.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, c.Resume(), ErrInvalidTransition)
	assert.ErrorIs(t, c.Cancel(), ErrInvalidTransition)

	require.NoError(t, c.Start(context.Background()))
	assert.ErrorIs(t, c.Start(context.Background()), ErrInvalidTransition)
	assert.ErrorIs(t, c.Resume(), ErrInvalidTransition)

	require.NoError(t, c.Cancel())
	assert.ErrorIs(t, c.Pause(), ErrInvalidTransition)
	assert.ErrorIs(t, c.Cancel(), ErrInvalidTransition)
}

func TestCountdownContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c, m := newManualCountdown(10)
	require.NoError(t, c.Start(ctx))
	require.NoError(t, c.Pause())

	cancel()
	assert.Equal(t, Cancelled, c.Wait())
	assert.False(t, m.Active())
}

func TestCountdownZeroLength(t *testing.T) {
	done := make(chan State, 1)
	c, m := newManualCountdown(0, OnDone(func(s State) { done <- s }))
	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, Finished, <-done)
	assert.Equal(t, 0, m.Created())
}

func TestCountdownRealTicker(t *testing.T) {
	c := New(2, WithInterval(5*time.Millisecond))
	require.NoError(t, c.Start(context.Background()))

	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("countdown did not finish")
	}
	assert.Equal(t, Finished, c.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "paused", Paused.String())
	assert.True(t, Cancelled.Terminal())
	assert.False(t, Running.Terminal())
	assert.Equal(t, "State(9)", State(9).String())
}
