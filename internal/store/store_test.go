package store

import (
	"path/filepath"
	"testing"

	"github.com/edithqa/edith/internal/executor"
	"github.com/edithqa/edith/internal/supervisor"
)

func testReport() *supervisor.TaskReport {
	return &supervisor.TaskReport{
		RunID: "run-test",
		Goal:  "Enable Airplane Mode",
		Steps: []string{"1. Open Settings", "2. Enable Airplane Mode"},
		Outcomes: []executor.Outcome{
			{Step: "1. Open Settings", Status: executor.StatusSuccess},
			{Step: "2. Enable Airplane Mode", Status: executor.StatusSuccess},
		},
		Matched: []string{"enable", "airplane", "mode"},
		Success: true,
		Verdict: supervisor.VerdictSuccess,
	}
}

func TestRunStore_SaveAndRecent(t *testing.T) {
	s, err := NewRunStore(filepath.Join(t.TempDir(), "edith.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := s.Save(testReport()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err := s.Recent(5)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	if runs[0].RunID != "run-test" || runs[0].Goal != "Enable Airplane Mode" {
		t.Errorf("Unexpected run summary: %+v", runs[0])
	}
	if !runs[0].Success {
		t.Error("Expected the run to be recorded as successful")
	}
}

func TestRunStore_GetReportRoundTrip(t *testing.T) {
	s, err := NewRunStore(filepath.Join(t.TempDir(), "edith.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	want := testReport()
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetReport("run-test")
	if err != nil {
		t.Fatalf("GetReport failed: %v", err)
	}
	if got.Goal != want.Goal || got.Verdict != want.Verdict {
		t.Errorf("Report changed in storage: %+v", got)
	}
	if len(got.Outcomes) != len(want.Outcomes) {
		t.Fatalf("Expected %d outcomes, got %d", len(want.Outcomes), len(got.Outcomes))
	}
	for i, o := range got.Outcomes {
		if o != want.Outcomes[i] {
			t.Errorf("Outcome %d changed: %v -> %v", i, want.Outcomes[i], o)
		}
	}
}

func TestRunStore_RecentNewestFirst(t *testing.T) {
	s, err := NewRunStore(filepath.Join(t.TempDir(), "edith.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	first := testReport()
	second := testReport()
	second.RunID = "run-later"
	if err := s.Save(first); err != nil {
		t.Fatal(err)
	}
	if err := s.Save(second); err != nil {
		t.Fatal(err)
	}

	runs, err := s.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].RunID != "run-later" {
		t.Errorf("Expected the newest run first, got %+v", runs)
	}
}
