package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/imamik/shipway/internal/provisioning"
)

// StepState is the display state of one pipeline step.
type StepState int

const (
	// StatePending means the step has not started yet.
	StatePending StepState = iota
	// StateActive means the step is currently running.
	StateActive
	// StateDone means the step succeeded.
	StateDone
	// StateFailed means the step failed.
	StateFailed
	// StateSkipped means the step had nothing to do.
	StateSkipped
)

// StepView is one row of the progress display.
type StepView struct {
	Name  string
	State StepState
}

// Model is the Bubble Tea model for the provision progress display.
type Model struct {
	Title     string
	Steps     []StepView
	StartTime time.Time

	SpinnerFrame int
	Done         bool
	Status       provisioning.Status

	Width  int
	Height int
}

// NewModel creates a progress model for the named steps.
func NewModel(title string, stepNames []string) Model {
	steps := make([]StepView, 0, len(stepNames))
	for _, name := range stepNames {
		steps = append(steps, StepView{Name: name, State: StatePending})
	}
	return Model{
		Title:     title,
		Steps:     steps,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StepMsg:
		m.applyStep(msg)

	case DoneMsg:
		m.Done = true
		m.Status = msg.Status
		return m, tea.Quit

	case tickMsg:
		m.SpinnerFrame = (m.SpinnerFrame + 1) % len(spinnerFrames)
		if !m.Done {
			return m, tickCmd()
		}
	}

	return m, nil
}

func (m *Model) applyStep(msg StepMsg) {
	for i := range m.Steps {
		if m.Steps[i].Name != msg.Step {
			continue
		}
		switch msg.Type {
		case provisioning.EventStepStarted:
			m.Steps[i].State = StateActive
		case provisioning.EventStepSucceeded:
			m.Steps[i].State = StateDone
		case provisioning.EventStepFailed:
			m.Steps[i].State = StateFailed
		case provisioning.EventStepSkipped:
			m.Steps[i].State = StateSkipped
		}
		return
	}
}
