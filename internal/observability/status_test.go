package observability

import (
	"testing"
	"time"
)

func TestSetStatus(t *testing.T) {
	defer SetStatus(RoleIdle, "")

	SetStatus(RoleExecuting, "Enable Airplane Mode")
	role, goal, _ := GetStatus()
	if role != RoleExecuting {
		t.Errorf("Expected RoleExecuting, got %s", role)
	}
	if goal != "Enable Airplane Mode" {
		t.Errorf("Unexpected active goal: %q", goal)
	}
}

func TestHeartbeat(t *testing.T) {
	_, _, before := GetStatus()

	time.Sleep(time.Millisecond)
	Heartbeat()

	_, _, after := GetStatus()
	if !after.After(before) {
		t.Errorf("Expected the heartbeat to advance: %v -> %v", before, after)
	}
}
