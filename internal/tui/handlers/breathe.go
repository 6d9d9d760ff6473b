package handlers

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/routines"
	"github.com/julianstephens/wellhub/internal/timer"
	"github.com/julianstephens/wellhub/internal/tui/components/breathe"
	"github.com/julianstephens/wellhub/internal/tui/state"
)

// startSession runs steps on a background goroutine. Step changes, ticks
// and the final result arrive as messages on the model's event channel.
func startSession(m *state.Model, steps []routines.Step) {
	ctx, cancel := context.WithCancel(m.Context())
	sess := routines.NewSession(steps,
		routines.WithTimerOptions(timer.WithInterval(m.Tick)),
		routines.OnStep(func(i int, step routines.Step) {
			m.Post(state.SessionStepMsg{Index: i, Step: step})
		}),
		routines.OnStepTick(func(i, remaining int) {
			m.Post(state.SessionTickMsg{Index: i, Remaining: remaining})
		}),
	)
	m.Session = sess
	m.StopSession = cancel
	m.SessionSteps = steps
	m.SessionPaused = false

	go func() {
		err := sess.Run(ctx)
		m.Post(state.SessionDoneMsg{Err: err, Completed: sess.Completed(), Total: len(steps), Percent: sess.Progress()})
	}()
}

func sessionProgress(m *state.Model, index, remaining int) breathe.Progress {
	p := breathe.Progress{
		Step:      index,
		Total:     len(m.SessionSteps),
		Remaining: remaining,
		Paused:    m.SessionPaused,
	}
	if index >= 0 && index < len(m.SessionSteps) {
		p.Phase = m.SessionSteps[index].Name
	}
	if m.Session != nil {
		p.Percent = m.Session.Progress()
	}
	return p
}

// HandleBreatheMessages starts and controls breathing sessions.
func HandleBreatheMessages(m *state.Model, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case breathe.StartMsg:
		if m.Session != nil {
			return true, nil
		}
		steps := msg.Pattern.Steps(msg.Cycles)
		if len(steps) == 0 {
			return true, ShowToast(m, notifier.Warning("This pattern has no steps."))
		}
		startSession(m, steps)
		logger.Info("Breathing session started", "pattern", msg.Pattern.Name, "cycles", msg.Cycles)
		return true, m.Breathe.Started()

	case breathe.ToggleMsg:
		if m.Session == nil {
			return true, nil
		}
		if err := m.Session.Toggle(); err != nil {
			logger.Debug("Session toggle ignored", "error", err)
			return true, nil
		}
		m.SessionPaused = !m.SessionPaused
		i, remaining := m.Session.Current()
		m.Breathe.SetProgress(sessionProgress(m, i, remaining))
		return true, nil

	case breathe.SkipMsg:
		if m.Session != nil {
			if err := m.Session.Skip(); err != nil {
				logger.Debug("Session skip ignored", "error", err)
			}
			m.SessionPaused = false
		}
		return true, nil

	case breathe.StopMsg:
		if m.Session != nil {
			m.Session.Stop()
		}
		return true, nil

	case state.SessionStepMsg:
		m.Breathe.SetProgress(sessionProgress(m, msg.Index, msg.Step.Seconds))
		return true, nil

	case state.SessionTickMsg:
		m.Breathe.SetProgress(sessionProgress(m, msg.Index, msg.Remaining))
		return true, nil

	case state.SessionDoneMsg:
		title := PatternTitle(m.Breathe.Pattern())
		if m.StopSession != nil {
			m.StopSession()
		}
		m.Session = nil
		m.StopSession = nil
		m.SessionSteps = nil
		m.SessionPaused = false
		m.Breathe.Finished()

		if msg.Err == nil {
			return true, ShowToast(m, notifier.Success(title+" complete. Well done! 🌬️"))
		}
		if !errors.Is(msg.Err, routines.ErrStopped) && !errors.Is(msg.Err, context.Canceled) {
			return true, ShowToast(m, errorToast("breathing session failed", msg.Err))
		}
		return true, ShowToast(m, notifier.Info(fmt.Sprintf("Session stopped after %d/%d steps (%d%%).", msg.Completed, msg.Total, msg.Percent)))
	}
	return false, nil
}
