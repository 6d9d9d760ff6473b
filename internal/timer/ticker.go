package timer

import (
	"sync"
	"time"
)

// Ticker is the subset of *time.Ticker a Countdown needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker.
func NewRealTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Manual is a ticker source driven by explicit Tick calls.
type Manual struct {
	mu      sync.Mutex
	cur     *manualTicker
	created int
}

type manualTicker struct {
	c       chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               { t.once.Do(func() { close(t.stopped) }) }

func NewManual() *Manual { return &Manual{} }

// NewTicker satisfies TickerFunc.
func (m *Manual) NewTicker(time.Duration) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{c: make(chan time.Time), stopped: make(chan struct{})}
	m.cur = t
	m.created++
	return t
}

// Tick delivers one tick to the most recent ticker. It blocks until the
// tick is received and returns false when no live ticker exists.
func (m *Manual) Tick() bool {
	m.mu.Lock()
	t := m.cur
	m.mu.Unlock()
	if t == nil {
		return false
	}
	select {
	case <-t.stopped:
		return false
	default:
	}
	select {
	case t.c <- time.Now():
		return true
	case <-t.stopped:
		return false
	}
}

// Active reports whether the most recent ticker is still running.
func (m *Manual) Active() bool {
	m.mu.Lock()
	t := m.cur
	m.mu.Unlock()
	if t == nil {
		return false
	}
	select {
	case <-t.stopped:
		return false
	default:
		return true
	}
}

// Created counts tickers handed out so far.
func (m *Manual) Created() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created
}
