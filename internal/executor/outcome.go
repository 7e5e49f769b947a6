package executor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status discriminates how a step finished. The mock backend only ever
// reports success, but real device backends need the failure branch, so the
// supervisor contract carries it from the start.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Outcome is the result of executing one step. Outcomes pair 1:1 with the
// input steps, in order.
type Outcome struct {
	Step   string
	Status Status
	Reason string // set only when Status is StatusFailed
}

func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// String renders the outcome in the QA log format the verifier and the
// report file consume. An outcome with no status, as produced by parsing a
// stored string with no recognizable marker, renders as its raw text.
func (o Outcome) String() string {
	if o.Status == "" {
		return o.Step
	}
	if o.Status == StatusFailed && o.Reason != "" {
		return fmt.Sprintf("%s — %s: %s", o.Step, o.Status, o.Reason)
	}
	return fmt.Sprintf("%s — %s", o.Step, o.Status)
}

// MarshalJSON keeps persisted reports wire-compatible with the rendered
// outcome strings.
func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON parses the rendered form back into its parts so stored
// reports round-trip.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*o = parseOutcome(s)
	return nil
}

func parseOutcome(s string) Outcome {
	i := strings.LastIndex(s, " — ")
	if i < 0 {
		return Outcome{Step: s}
	}

	step, marker := s[:i], s[i+len(" — "):]
	switch {
	case marker == string(StatusSuccess):
		return Outcome{Step: step, Status: StatusSuccess}
	case marker == string(StatusFailed):
		return Outcome{Step: step, Status: StatusFailed}
	case strings.HasPrefix(marker, string(StatusFailed)+": "):
		return Outcome{
			Step:   step,
			Status: StatusFailed,
			Reason: strings.TrimPrefix(marker, string(StatusFailed)+": "),
		}
	}
	return Outcome{Step: s}
}
