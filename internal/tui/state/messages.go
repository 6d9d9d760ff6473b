package state

import (
	"github.com/julianstephens/wellhub/internal/notifier"
	"github.com/julianstephens/wellhub/internal/routines"
)

// ToastMsg shows t in the toast area.
type ToastMsg struct {
	Toast notifier.Toast
}

// ClearToastMsg hides toast ID if it is still the one shown.
type ClearToastMsg struct {
	ID int
}

// DataChangedMsg reports that the store changed outside this process.
type DataChangedMsg struct{}

type SessionStepMsg struct {
	Index int
	Step  routines.Step
}

type SessionTickMsg struct {
	Index     int
	Remaining int
}

// SessionDoneMsg is sent once when a session's Run returns.
type SessionDoneMsg struct {
	Err       error
	Completed int
	Total     int
	Percent   int
}
