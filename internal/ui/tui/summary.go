package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/imamik/shipway/internal/provisioning"
)

// RenderSummary renders the post-run result table shown after the pipeline
// finishes, on TTY and non-TTY output alike.
func RenderSummary(run *provisioning.Run) string {
	var b strings.Builder

	switch run.Status {
	case provisioning.StatusCompleted:
		b.WriteString(doneStyle.Render("Run completed"))
	case provisioning.StatusAborted:
		b.WriteString(failedStyle.Render("Run aborted"))
	default:
		b.WriteString(dimStyle.Render("Run " + string(run.Status)))
	}
	b.WriteString("\n\n")

	for _, result := range run.Results {
		b.WriteString(renderResult(result))
		b.WriteByte('\n')
	}

	for i := len(run.Results); i < len(run.Steps); i++ {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s %s (not run)", pending, run.Steps[i].Name)))
		b.WriteByte('\n')
	}

	if err := run.Err(); err != nil {
		b.WriteByte('\n')
		b.WriteString(failedStyle.Render("Failure: " + err.Error()))
		b.WriteByte('\n')
	}
	return b.String()
}

func renderResult(result provisioning.StepResult) string {
	duration := result.Duration().Round(10 * time.Millisecond)
	switch result.Outcome {
	case provisioning.OutcomeSucceeded:
		return doneStyle.Render(fmt.Sprintf("%s %s (%s)", checkMark, result.StepName, duration))
	case provisioning.OutcomeFailed:
		return failedStyle.Render(fmt.Sprintf("%s %s: %v", crossMark, result.StepName, result.Err))
	default:
		return skippedStyle.Render(fmt.Sprintf("%s %s (skipped)", skipMark, result.StepName))
	}
}
