package notifier

import (
	"context"
	"errors"
	"sync"

	"github.com/julianstephens/wellhub/internal/logger"
)

// Multi delivers each toast to every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, t Toast) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, t); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// BestEffort wraps n so delivery failures are logged instead of returned.
// A missing tray app is expected and only logged at debug level.
func BestEffort(n Notifier) Notifier {
	return Func(func(ctx context.Context, t Toast) error {
		if err := n.Notify(ctx, t); err != nil {
			if errors.Is(err, ErrTrayNotRunning) {
				logger.Debug("Tray app not running", "kind", t.Kind)
			} else {
				logger.Warn("Toast delivery failed", "kind", t.Kind, "error", err)
			}
		}
		return nil
	})
}

// Recorder keeps every toast it is given.
type Recorder struct {
	mu     sync.Mutex
	toasts []Toast
}

func (r *Recorder) Notify(_ context.Context, t Toast) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.toasts = append(r.toasts, t)
	return nil
}

func (r *Recorder) Toasts() []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Toast(nil), r.toasts...)
}

// Last returns the most recent toast.
func (r *Recorder) Last() (Toast, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}
