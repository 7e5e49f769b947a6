package executor

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Mock simulates a device-automation backend. Each step waits out a fixed
// delay, writes a placeholder screenshot, and reports success. Artifacts are
// scoped under a per-run directory so concurrent or repeated runs never
// overwrite each other.
type Mock struct {
	ImageDir  string
	StepDelay time.Duration
}

func NewMock(imageDir string, stepDelay time.Duration) *Mock {
	return &Mock{
		ImageDir:  imageDir,
		StepDelay: stepDelay,
	}
}

// Execute runs the planned steps in order and returns exactly one outcome
// per step. A cancelled context or a failed artifact write aborts the run;
// no partial outcome list is returned.
func (m *Mock) Execute(ctx context.Context, runID string, steps []string) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(steps))
	if len(steps) == 0 {
		return outcomes, nil
	}

	runDir := filepath.Join(m.ImageDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("executor: create artifact dir: %w", err)
	}

	for i, step := range steps {
		log.Printf("[Executor] Step %d: %s", i+1, step)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.StepDelay):
		}

		frame := filepath.Join(runDir, fmt.Sprintf("step_%02d_mock.png", i+1))
		if err := writeMockFrame(frame, i+1); err != nil {
			return nil, fmt.Errorf("executor: write artifact: %w", err)
		}

		outcomes = append(outcomes, Outcome{Step: step, Status: StatusSuccess})
	}

	return outcomes, nil
}
