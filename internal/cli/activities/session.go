package activities

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/julianstephens/wellhub/internal/cli"
	"github.com/julianstephens/wellhub/internal/logger"
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/routines"
	"github.com/julianstephens/wellhub/internal/timer"
	"github.com/julianstephens/wellhub/internal/utils"
)

const controlsHelp = "Controls: p + Enter pauses/resumes, s + Enter skips, q + Enter stops."

// lockedWriter serialises writes from the timer goroutine and the control reader.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format, args...)
}

// player runs a routine session in the terminal.
type player struct {
	ctx   *cli.Context
	out   *lockedWriter
	tick  time.Duration
	title string
	done  string
}

func newPlayer(ctx *cli.Context, tick time.Duration, title, done string) *player {
	return &player{ctx: ctx, out: &lockedWriter{w: ctx.Writer()}, tick: tick, title: title, done: done}
}

// play runs steps to completion. onTick, when set, sees every second of
// step i.
func (p *player) play(steps []routines.Step, onTick func(i, remaining int)) error {
	if len(steps) == 0 {
		return fmt.Errorf("nothing to play")
	}

	total := len(steps)
	opts := []routines.SessionOption{
		routines.OnStep(func(i int, s routines.Step) {
			line := fmt.Sprintf("[%d/%d] %s (%s)", i+1, total, s.Name, utils.FormatClock(s.Seconds))
			if s.Description != "" {
				line += " · " + s.Description
			}
			p.out.Printf("%s\n", line)
		}),
	}
	if onTick != nil {
		opts = append(opts, routines.OnStepTick(onTick))
	}
	if p.tick > 0 {
		opts = append(opts, routines.WithTimerOptions(timer.WithInterval(p.tick)))
	}
	sess := routines.NewSession(steps, opts...)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p.out.Printf("%s · %s total\n%s\n\n", p.title, utils.FormatClock(routines.TotalSeconds(steps)), controlsHelp)
	go p.readControls(runCtx, sess)

	err := sess.Run(runCtx)
	switch {
	case err == nil:
		p.out.Printf("\n")
		p.ctx.Notify(notifier.Success(p.done))
		return nil
	case errors.Is(err, routines.ErrStopped), errors.Is(err, context.Canceled):
		p.out.Printf("\nSession stopped after %d/%d steps (%d%%).\n", sess.Completed(), total, sess.Progress())
		return nil
	default:
		return err
	}
}

// readControls applies one command per input line until input ends or ctx
// is done.
func (p *player) readControls(ctx context.Context, sess *routines.Session) {
	scanner := bufio.NewScanner(p.ctx.Reader())
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		if quit := p.control(sess, scanner.Text()); quit {
			return
		}
	}
}

func (p *player) control(sess *routines.Session, cmd string) (quit bool) {
	var err error
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "p", "pause", "resume":
		if err = sess.Toggle(); err == nil {
			_, remaining := sess.Current()
			p.out.Printf("⏯  toggled (%s left in step)\n", utils.FormatClock(remaining))
		}
	case "s", "skip":
		if err = sess.Skip(); err == nil {
			p.out.Printf("⏭  skipped\n")
		}
	case "q", "quit", "stop":
		sess.Stop()
		return true
	case "":
	default:
		p.out.Printf("%s\n", controlsHelp)
	}
	if err != nil {
		logger.Debug("Session control ignored", "command", cmd, "error", err)
	}
	return false
}
