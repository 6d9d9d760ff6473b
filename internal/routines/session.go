package routines

import (
	"context"
	"errors"
	"sync"

	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/timer"
)

var ErrStopped = errors.New("session stopped")

type SessionOption func(*Session)

// WithTimerOptions passes options to every step's countdown.
func WithTimerOptions(opts ...timer.Option) SessionOption {
	return func(s *Session) { s.timerOpts = append(s.timerOpts, opts...) }
}

// OnStep runs when step i begins.
func OnStep(fn func(i int, step Step)) SessionOption {
	return func(s *Session) { s.onStep = fn }
}

// OnStepTick runs after every second of step i.
func OnStepTick(fn func(i int, remaining int)) SessionOption {
	return func(s *Session) { s.onTick = fn }
}

// Session plays a sequence of steps back to back, one countdown each.
type Session struct {
	steps     []Step
	timerOpts []timer.Option
	onStep    func(int, Step)
	onTick    func(int, int)

	mu        sync.Mutex
	current   *timer.Countdown
	index     int
	completed int
	skipping  bool
	stopped   bool
}

func NewSession(steps []Step, opts ...SessionOption) *Session {
	s := &Session{steps: append([]Step(nil), steps...), index: -1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run blocks until every step has played, the session is stopped, or ctx
// ends.
func (s *Session) Run(ctx context.Context) error {
	for i, step := range s.steps {
		i := i
		opts := append(append([]timer.Option(nil), s.timerOpts...), timer.OnTick(func(r int) {
			if s.onTick != nil {
				s.onTick(i, r)
			}
		}))
		c := timer.New(step.Seconds, opts...)

		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return ErrStopped
		}
		s.current = c
		s.index = i
		s.mu.Unlock()

		if s.onStep != nil {
			s.onStep(i, step)
		}
		if err := c.Start(ctx); err != nil {
			return err
		}
		if c.Wait() == timer.Cancelled {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.mu.Lock()
			skipped, stopped := s.skipping, s.stopped
			s.skipping = false
			s.mu.Unlock()
			if stopped || !skipped {
				return ErrStopped
			}
			logger.Debug("Session step skipped", "step", step.Name)
			continue
		}

		s.mu.Lock()
		s.completed++
		s.mu.Unlock()
	}
	return nil
}

func (s *Session) Pause() error {
	c := s.countdown()
	if c == nil {
		return timer.ErrInvalidTransition
	}
	return c.Pause()
}

func (s *Session) Resume() error {
	c := s.countdown()
	if c == nil {
		return timer.ErrInvalidTransition
	}
	return c.Resume()
}

func (s *Session) Toggle() error {
	c := s.countdown()
	if c == nil {
		return timer.ErrInvalidTransition
	}
	return c.Toggle()
}

// Skip ends the current step early without counting it as done.
func (s *Session) Skip() error {
	s.mu.Lock()
	c := s.current
	if c == nil {
		s.mu.Unlock()
		return timer.ErrInvalidTransition
	}
	s.skipping = true
	s.mu.Unlock()
	return c.Cancel()
}

// Stop ends the session; Run returns ErrStopped.
func (s *Session) Stop() {
	s.mu.Lock()
	s.stopped = true
	c := s.current
	s.mu.Unlock()
	if c != nil {
		_ = c.Cancel()
	}
}

// Current reports the active step index (-1 before the first) and its
// seconds left.
func (s *Session) Current() (index int, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return s.index, 0
	}
	return s.index, s.current.Remaining()
}

// Completed counts steps that ran to the end.
func (s *Session) Completed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Progress is the percentage of steps completed.
func (s *Session) Progress() int {
	return Progress(s.Completed(), len(s.steps))
}

func (s *Session) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

func (s *Session) countdown() *timer.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
