// Package notifier delivers toasts to the terminal and the desktop tray app.
package notifier

import (
	"context"
	"time"

	"github.com/julianstephens/wellhub/internal/constants"
)

type Kind string

const (
	KindSuccess  Kind = "success"
	KindError    Kind = "error"
	KindInfo     Kind = "info"
	KindWarning  Kind = "warning"
	KindReminder Kind = "reminder"
)

var icons = map[Kind]string{
	KindSuccess:  "✅",
	KindError:    "❌",
	KindInfo:     "ℹ️",
	KindWarning:  "⚠️",
	KindReminder: "🔔",
}

// Icon returns the glyph for k; unknown kinds use the info icon.
func (k Kind) Icon() string {
	if icon, ok := icons[k]; ok {
		return icon
	}
	return icons[KindInfo]
}

// Toast is a transient message.
type Toast struct {
	Message  string
	Kind     Kind
	Duration time.Duration
	Sound    bool
}

// NewToast builds a toast with the default duration for its kind.
func NewToast(kind Kind, message string) Toast {
	if _, ok := icons[kind]; !ok {
		kind = KindInfo
	}
	d := constants.NotificationDuration
	if kind == KindReminder {
		d = constants.ReminderToastDuration
	}
	return Toast{Message: message, Kind: kind, Duration: d}
}

func Success(msg string) Toast { return NewToast(KindSuccess, msg) }
func Error(msg string) Toast   { return NewToast(KindError, msg) }
func Info(msg string) Toast    { return NewToast(KindInfo, msg) }
func Warning(msg string) Toast { return NewToast(KindWarning, msg) }

// WithSound returns a copy of t carrying the sounds preference.
func (t Toast) WithSound(enabled bool) Toast {
	t.Sound = enabled
	return t
}

// Text is the icon-prefixed message.
func (t Toast) Text() string {
	return t.Kind.Icon() + " " + t.Message
}

// Notifier delivers toasts.
type Notifier interface {
	Notify(ctx context.Context, t Toast) error
}

// Func adapts a function to Notifier.
type Func func(ctx context.Context, t Toast) error

func (f Func) Notify(ctx context.Context, t Toast) error { return f(ctx, t) }
