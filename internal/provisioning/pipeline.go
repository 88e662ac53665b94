package provisioning

import (
	"errors"
	"fmt"
	"time"
)

// Runner executes step pipelines. It sequences, times, and reports; the
// actions own every external effect.
type Runner struct{}

// NewRunner creates a pipeline runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the steps strictly in order. Step i+1 starts only after
// step i has produced a result. A failing required step aborts the run;
// the returned Run then carries exactly the results produced so far and
// its Err() is the originating failure. Actions are attempted exactly
// once; there are no retries and no rollback of earlier steps.
func (r *Runner) Run(ctx *Context, steps []Step) *Run {
	run := &Run{Steps: steps, Status: StatusRunning}

	start := time.Now()
	ctx.Observer.Printf("Starting pipeline with %d steps...", len(steps))

	for i, step := range steps {
		label := fmt.Sprintf("%s (%d/%d)", step.Name, i+1, len(steps))
		LogStepStart(ctx.Observer, step.Name)

		result := executeStep(ctx, step)
		run.Results = append(run.Results, result)

		switch result.Outcome {
		case OutcomeSkipped:
			LogStepSkipped(ctx.Observer, step.Name)
		case OutcomeFailed:
			LogStepFailed(ctx.Observer, step.Name, result.Err)
			if step.Required {
				run.Status = StatusAborted
				ctx.Observer.Printf("[%s] aborting run: %v", label, result.Err)
				return run
			}
			ctx.Observer.Printf("[%s] optional step failed, continuing", label)
		default:
			LogStepSucceeded(ctx.Observer, step.Name, result.Duration())
		}
	}

	run.Status = StatusCompleted
	ctx.Observer.Printf("Pipeline completed in %v", time.Since(start).Round(time.Millisecond))
	return run
}

// executeStep runs one action and folds its return value into a result.
func executeStep(ctx *Context, step Step) StepResult {
	result := StepResult{StepName: step.Name, StartedAt: time.Now()}

	err := step.Action.Run(ctx)
	result.EndedAt = time.Now()

	switch {
	case err == nil:
		result.Outcome = OutcomeSucceeded
	case errors.Is(err, ErrSkipped):
		result.Outcome = OutcomeSkipped
	default:
		result.Outcome = OutcomeFailed
		result.Err = fmt.Errorf("%s step failed: %w", step.Name, err)
	}
	return result
}
