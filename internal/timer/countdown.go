// Package timer provides a pausable one-second countdown. A paused
// countdown holds no ticker; resuming starts a fresh one.
package timer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/logger"
)

var ErrInvalidTransition = errors.New("invalid timer transition")

type State int

const (
	Idle State = iota
	Running
	Paused
	Finished
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == Finished || s == Cancelled
}

type Option func(*Countdown)

// WithTicker replaces the ticker source.
func WithTicker(fn TickerFunc) Option {
	return func(c *Countdown) { c.newTicker = fn }
}

// WithInterval sets the tick period (one second by default).
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) {
		if d > 0 {
			c.interval = d
		}
	}
}

// OnTick registers fn to run after each decrement with the seconds left.
func OnTick(fn func(remaining int)) Option {
	return func(c *Countdown) { c.onTick = fn }
}

// OnDone registers fn to run once when the countdown finishes or is cancelled.
func OnDone(fn func(State)) Option {
	return func(c *Countdown) { c.onDone = fn }
}

type Countdown struct {
	mu        sync.Mutex
	total     int
	remaining int
	state     State

	interval  time.Duration
	newTicker TickerFunc
	onTick    func(int)
	onDone    func(State)

	ticker Ticker
	stop   chan struct{}
	done   chan struct{}
}

// New returns an idle countdown of seconds length.
func New(seconds int, opts ...Option) *Countdown {
	if seconds < 0 {
		seconds = 0
	}
	c := &Countdown{
		total:     seconds,
		remaining: seconds,
		interval:  constants.DefaultTimerTickPeriod,
		newTicker: NewRealTicker,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins counting. A zero-length countdown finishes immediately.
// Cancelling ctx cancels the countdown.
func (c *Countdown) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Idle {
		st := c.state
		c.mu.Unlock()
		return fmt.Errorf("start from %s: %w", st, ErrInvalidTransition)
	}
	if c.remaining == 0 {
		c.finishLocked(Finished)
		c.mu.Unlock()
		c.notifyDone(Finished)
		return nil
	}
	c.state = Running
	c.runLocked()
	c.mu.Unlock()
	if ctx != nil && ctx.Done() != nil {
		go c.watch(ctx)
	}
	logger.Debug("Countdown started", "seconds", c.total)
	return nil
}

func (c *Countdown) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Running {
		return fmt.Errorf("pause from %s: %w", c.state, ErrInvalidTransition)
	}
	c.state = Paused
	c.haltLocked()
	logger.Debug("Countdown paused", "remaining", c.remaining)
	return nil
}

func (c *Countdown) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Paused {
		return fmt.Errorf("resume from %s: %w", c.state, ErrInvalidTransition)
	}
	c.state = Running
	c.runLocked()
	logger.Debug("Countdown resumed", "remaining", c.remaining)
	return nil
}

// Toggle pauses a running countdown or resumes a paused one.
func (c *Countdown) Toggle() error {
	if c.State() == Paused {
		return c.Resume()
	}
	return c.Pause()
}

func (c *Countdown) Cancel() error {
	c.mu.Lock()
	switch c.state {
	case Running, Paused:
	default:
		st := c.state
		c.mu.Unlock()
		return fmt.Errorf("cancel from %s: %w", st, ErrInvalidTransition)
	}
	c.finishLocked(Cancelled)
	c.mu.Unlock()
	logger.Debug("Countdown cancelled")
	c.notifyDone(Cancelled)
	return nil
}

func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Total() int {
	return c.total
}

// Elapsed is the number of seconds already counted.
func (c *Countdown) Elapsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total - c.remaining
}

func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Done is closed once the countdown finishes or is cancelled.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Wait blocks until the countdown ends and returns its final state.
func (c *Countdown) Wait() State {
	<-c.done
	return c.State()
}

func (c *Countdown) runLocked() {
	t := c.newTicker(c.interval)
	stop := make(chan struct{})
	c.ticker = t
	c.stop = stop
	go c.loop(t, stop)
}

// watch cancels the countdown when ctx ends first, paused or not.
func (c *Countdown) watch(ctx context.Context) {
	select {
	case <-ctx.Done():
		_ = c.Cancel()
	case <-c.done:
	}
}

func (c *Countdown) haltLocked() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
}

func (c *Countdown) finishLocked(st State) {
	c.haltLocked()
	c.state = st
	close(c.done)
}

func (c *Countdown) loop(t Ticker, stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if c.tick(stop) {
				return
			}
		}
	}
}

// tick decrements once and reports whether the loop should exit.
func (c *Countdown) tick(stop <-chan struct{}) bool {
	c.mu.Lock()
	if c.state != Running || c.stop != stop {
		c.mu.Unlock()
		return true
	}
	c.remaining--
	remaining := c.remaining
	finished := remaining <= 0
	if finished {
		c.remaining = 0
		remaining = 0
		c.finishLocked(Finished)
	}
	c.mu.Unlock()

	if c.onTick != nil {
		c.onTick(remaining)
	}
	if finished {
		logger.Debug("Countdown finished", "seconds", c.total)
		c.notifyDone(Finished)
	}
	return finished
}

func (c *Countdown) notifyDone(st State) {
	if c.onDone != nil {
		c.onDone(st)
	}
}
