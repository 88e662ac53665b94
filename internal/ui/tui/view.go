package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/imamik/shipway/internal/provisioning"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.Title))
	b.WriteString("\n\n")

	for _, step := range m.Steps {
		b.WriteString(m.renderStep(step))
		b.WriteByte('\n')
	}

	elapsed := time.Since(m.StartTime).Round(time.Second)
	footer := fmt.Sprintf("elapsed %s · q to quit", elapsed)
	if m.Done && m.Status == provisioning.StatusAborted {
		footer = failedStyle.Render("run aborted") + dimStyle.Render(" · elapsed "+elapsed.String())
	}
	b.WriteString(footerStyle.Render(footer))
	b.WriteByte('\n')

	return b.String()
}

func (m Model) renderStep(step StepView) string {
	switch step.State {
	case StateActive:
		return activeStyle.Render(spinnerFrames[m.SpinnerFrame] + " " + step.Name)
	case StateDone:
		return doneStyle.Render(checkMark + " " + step.Name)
	case StateFailed:
		return failedStyle.Render(crossMark + " " + step.Name)
	case StateSkipped:
		return skippedStyle.Render(skipMark + " " + step.Name + " (skipped)")
	default:
		return dimStyle.Render(pending + " " + step.Name)
	}
}
