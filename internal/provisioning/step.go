package provisioning

import "time"

// Step is one entry in a pipeline run: a labelled action plus its failure
// policy. Steps are immutable after construction.
type Step struct {
	// Name is the human-readable label used in events and results.
	Name string

	// Action performs the step's external effect.
	Action Action

	// Required controls the failure policy: a failing required step aborts
	// the remaining run, a failing optional step is recorded and skipped over.
	Required bool
}

// Outcome classifies a completed step.
type Outcome string

const (
	// OutcomeSucceeded means the action returned without error.
	OutcomeSucceeded Outcome = "succeeded"
	// OutcomeFailed means the action returned an error other than ErrSkipped.
	OutcomeFailed Outcome = "failed"
	// OutcomeSkipped means the action reported nothing to do.
	OutcomeSkipped Outcome = "skipped"
)

// StepResult records the terminal state of one executed step. Results are
// appended to the run log in execution order and never mutated afterwards.
type StepResult struct {
	StepName  string
	Outcome   Outcome
	Err       error // non-nil iff Outcome is OutcomeFailed
	StartedAt time.Time
	EndedAt   time.Time
}

// Duration returns the wall-clock time the step took.
func (r StepResult) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Status is the overall state of a pipeline run.
type Status string

const (
	// StatusRunning means the run is still executing steps.
	StatusRunning Status = "running"
	// StatusCompleted means every step produced a result and no required step failed.
	StatusCompleted Status = "completed"
	// StatusAborted means a required step failed and the remainder never ran.
	StatusAborted Status = "aborted"
)

// Run is the record of one pipeline execution. Results grows as execution
// proceeds and always satisfies len(Results) <= len(Steps); once Status is
// StatusAborted no further steps execute.
type Run struct {
	Steps   []Step
	Results []StepResult
	Status  Status
}

// Err returns the error of the failed required step for an aborted run,
// or nil for any other state. The last recorded result is authoritative.
func (r *Run) Err() error {
	if r.Status != StatusAborted || len(r.Results) == 0 {
		return nil
	}
	return r.Results[len(r.Results)-1].Err
}

// Failed returns the results of all failed steps, required or not.
func (r *Run) Failed() []StepResult {
	var failed []StepResult
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailed {
			failed = append(failed, res)
		}
	}
	return failed
}
