// Package supervisor chains planning, execution, and verification into one
// QA pipeline run and derives the final verdict.
package supervisor

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/edithqa/edith/internal/executor"
	"github.com/edithqa/edith/internal/observability"
)

// Planner produces an ordered list of UI steps for a goal.
type Planner interface {
	Plan(ctx context.Context, goal string) ([]string, error)
}

// Executor runs planned steps and reports exactly one outcome per step,
// order preserved.
type Executor interface {
	Execute(ctx context.Context, runID string, steps []string) ([]executor.Outcome, error)
}

// Verifier scores outcomes against the goal.
type Verifier interface {
	Verify(goal string, outcomes []executor.Outcome) (matched []string, ok bool)
}

// Verdict messages. A failed verdict is terminal and asks for human review;
// the pipeline never retries on its own.
const (
	VerdictSuccess = "✅ [Supervisor] Task completed successfully!"
	VerdictFailure = "❌ [Supervisor] Task failed. Manual review required."
)

// TaskReport is the complete record of one pipeline run. The JSON field
// names match the QA log format consumed downstream.
type TaskReport struct {
	RunID    string             `json:"run_id"`
	Goal     string             `json:"task_prompt"`
	Steps    []string           `json:"planner_steps"`
	Outcomes []executor.Outcome `json:"executor_results"`
	Matched  []string           `json:"verifier_keywords"`
	Success  bool               `json:"success"`
	Verdict  string             `json:"supervisor_result"`
}

// Supervisor owns the pipeline wiring. It depends only on the narrow stage
// interfaces, never on concrete clients.
type Supervisor struct {
	Planner  Planner
	Executor Executor
	Verifier Verifier
	Logger   *observability.Logger
}

func New(p Planner, e Executor, v Verifier, logger *observability.Logger) *Supervisor {
	return &Supervisor{
		Planner:  p,
		Executor: e,
		Verifier: v,
		Logger:   logger,
	}
}

// Run drives one goal through plan, execute, and verify, strictly in
// sequence. An error from any stage aborts the run as-is: no retry, no
// partial report. A failed verification is not an error; it yields a
// complete report with the failure verdict.
func (s *Supervisor) Run(ctx context.Context, goal string) (*TaskReport, error) {
	runID := uuid.NewString()
	log.Printf("[Supervisor] New task %s: %s", runID, goal)
	defer observability.SetStatus(observability.RoleIdle, "")

	observability.SetStatus(observability.RolePlanning, goal)
	steps, err := s.Planner.Plan(ctx, goal)
	if err != nil {
		return nil, err
	}
	s.Logger.LogPlan(runID, goal, steps)

	observability.SetStatus(observability.RoleExecuting, goal)
	outcomes, err := s.Executor.Execute(ctx, runID, steps)
	if err != nil {
		return nil, err
	}
	for i, o := range outcomes {
		s.Logger.LogStep(runID, i+1, o)
	}

	observability.SetStatus(observability.RoleVerifying, goal)
	matched, ok := s.Verifier.Verify(goal, outcomes)
	s.Logger.LogVerify(runID, matched, ok)

	verdict := VerdictFailure
	if ok {
		verdict = VerdictSuccess
	}
	s.Logger.LogVerdict(runID, verdict)

	return &TaskReport{
		RunID:    runID,
		Goal:     goal,
		Steps:    steps,
		Outcomes: outcomes,
		Matched:  matched,
		Success:  ok,
		Verdict:  verdict,
	}, nil
}
