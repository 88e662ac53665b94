package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/shipway/internal/provisioning"
)

// StepMsg reports a step transition to the TUI.
type StepMsg struct {
	Step string
	Type provisioning.EventType
}

// DoneMsg reports the end of the run.
type DoneMsg struct {
	Status provisioning.Status
}

// tickMsg drives the spinner animation.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Forwarder adapts pipeline observer events into TUI messages. It wraps a
// delegate observer so log lines still reach the console log.
type Forwarder struct {
	Send     func(tea.Msg)
	Delegate provisioning.Observer
}

// Printf implements provisioning.Logger.
func (f *Forwarder) Printf(format string, v ...interface{}) {
	if f.Delegate != nil {
		f.Delegate.Printf(format, v...)
	}
}

// Event implements provisioning.Observer.
func (f *Forwarder) Event(event provisioning.Event) {
	if f.Delegate != nil {
		f.Delegate.Event(event)
	}
	f.Send(StepMsg{Step: event.Step, Type: event.Type})
}
