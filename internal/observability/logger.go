package observability

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/edithqa/edith/internal/executor"
)

// EventType defines the category of the log event.
type EventType string

const (
	EventTypePlan    EventType = "plan"
	EventTypeStep    EventType = "step"
	EventTypeVerify  EventType = "verify"
	EventTypeVerdict EventType = "verdict"
)

// Event represents a structured log entry.
type Event struct {
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id,omitempty"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Logger emits structured JSON events to stdout and appends them to a
// rotating jsonl file.
type Logger struct {
	eventLogPath string
	maxSize      int64
}

func NewLogger(logDir string) *Logger {
	return &Logger{
		eventLogPath: filepath.Join(logDir, "events.jsonl"),
		maxSize:      10 * 1024 * 1024, // 10MB
	}
}

// Log emits a structured JSON event.
func (l *Logger) Log(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now()
	}
	data, err := json.Marshal(evt)
	if err != nil {
		fmt.Printf("{\"error\": \"failed to marshal event: %v\"}\n", err)
		return
	}
	fmt.Println(string(data))
	l.writeToFile(data)
}

func (l *Logger) writeToFile(data []byte) {
	if err := os.MkdirAll(filepath.Dir(l.eventLogPath), 0755); err != nil {
		log.Printf("failed to create log directory: %v", err)
		return
	}

	// Check size before writing
	info, err := os.Stat(l.eventLogPath)
	if err == nil && info.Size() > l.maxSize {
		l.rotateLogs()
	}

	f, err := os.OpenFile(l.eventLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("failed to open log file: %v", err)
		return
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Printf("failed to write to log file: %v", err)
	}
}

func (l *Logger) rotateLogs() {
	// Simple rotation: keep one .old file
	oldPath := l.eventLogPath + ".old"
	_ = os.Remove(oldPath)
	_ = os.Rename(l.eventLogPath, oldPath)
}

// Helper methods for common events

func (l *Logger) LogPlan(runID, goal string, steps []string) {
	l.Log(Event{
		Type:  EventTypePlan,
		RunID: runID,
		Data: map[string]any{
			"goal":  goal,
			"steps": steps,
		},
	})
}

func (l *Logger) LogStep(runID string, ordinal int, outcome executor.Outcome) {
	l.Log(Event{
		Type:  EventTypeStep,
		RunID: runID,
		Data: map[string]any{
			"ordinal": ordinal,
			"step":    outcome.Step,
			"status":  string(outcome.Status),
		},
	})
}

func (l *Logger) LogVerify(runID string, matched []string, ok bool) {
	l.Log(Event{
		Type:  EventTypeVerify,
		RunID: runID,
		Data: map[string]any{
			"matched": matched,
			"success": ok,
		},
	})
}

func (l *Logger) LogVerdict(runID, verdict string) {
	l.Log(Event{
		Type:  EventTypeVerdict,
		RunID: runID,
		Data:  map[string]string{"verdict": verdict},
	})
}
