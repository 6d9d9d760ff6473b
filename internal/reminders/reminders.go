// Package reminders fires periodic wellness reminder toasts.
package reminders

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/notifier"
)

// Reminder is a repeating message.
type Reminder struct {
	Name     string
	Message  string
	Interval time.Duration
}

// Defaults are the water, stretch and breathe reminders.
func Defaults() []Reminder {
	return []Reminder{
		{"water", "Time to drink water! 💧 Stay hydrated for optimal health.", constants.WaterReminderMin * time.Minute},
		{"stretch", "Time for a quick stretch! 🧘 Your body will thank you.", constants.StretchReminderMin * time.Minute},
		{"breathe", "Take a moment to breathe deeply. 🌬️ Reduce stress with a quick breathing exercise.", constants.BreatheReminderMin * time.Minute},
	}
}

// Scheduler runs reminders until its context ends.
type Scheduler struct {
	Reminders []Reminder
	Notifier  notifier.Notifier
	Sound     bool

	// Jitter picks the first delay within an interval. Defaults to a
	// uniform random duration in [0, interval).
	Jitter func(interval time.Duration) time.Duration
	// After and NewTicker replace the time package in tests.
	After     func(d time.Duration) <-chan time.Time
	NewTicker func(d time.Duration) (<-chan time.Time, func())
}

func New(n notifier.Notifier, sound bool) *Scheduler {
	return &Scheduler{Reminders: Defaults(), Notifier: n, Sound: sound}
}

func randomJitter(interval time.Duration) time.Duration {
	if interval <= 0 {
		return 0
	}
	return rand.N(interval)
}

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Run blocks, one goroutine per reminder, until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, r := range s.Reminders {
		if r.Interval <= 0 {
			continue
		}
		wg.Add(1)
		go func(r Reminder) {
			defer wg.Done()
			s.loop(ctx, r)
		}(r)
	}
	logger.Info("Reminders scheduled", "count", len(s.Reminders))
	wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, r Reminder) {
	jitter := s.Jitter
	if jitter == nil {
		jitter = randomJitter
	}
	after := s.After
	if after == nil {
		after = time.After
	}
	newTicker := s.NewTicker
	if newTicker == nil {
		newTicker = realTicker
	}

	select {
	case <-ctx.Done():
		return
	case <-after(jitter(r.Interval)):
	}
	s.fire(ctx, r)

	tick, stop := newTicker(r.Interval)
	defer stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			s.fire(ctx, r)
		}
	}
}

func (s *Scheduler) fire(ctx context.Context, r Reminder) {
	toast := notifier.NewToast(notifier.KindReminder, r.Message).WithSound(s.Sound)
	if err := s.Notifier.Notify(ctx, toast); err != nil {
		logger.Warn("Reminder delivery failed", "reminder", r.Name, "error", err)
	}
}
