package planner

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	for _, m := range messages {
		for _, p := range m.Parts {
			if text, ok := p.(llms.TextContent); ok {
				f.prompts = append(f.prompts, text.Text)
			}
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.reply}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return f.reply, f.err
}

func TestPlan_SplitsLines(t *testing.T) {
	model := &fakeModel{reply: "1. Unlock the device\n2. Open Settings\n3. Enable Airplane Mode\n"}
	p := New(model)

	steps, err := p.Plan(context.Background(), "Enable Airplane Mode")
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	want := []string{"1. Unlock the device", "2. Open Settings", "3. Enable Airplane Mode"}
	if len(steps) != len(want) {
		t.Fatalf("Expected %d steps, got %d: %v", len(want), len(steps), steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("Step %d = %q, want %q", i, steps[i], want[i])
		}
	}
}

func TestPlan_PromptEmbedsGoal(t *testing.T) {
	model := &fakeModel{reply: "1. Do it"}
	p := New(model)

	if _, err := p.Plan(context.Background(), "Open Calculator"); err != nil {
		t.Fatal(err)
	}
	if len(model.prompts) != 1 {
		t.Fatalf("Expected one prompt, got %d", len(model.prompts))
	}
	if !strings.Contains(model.prompts[0], "Goal: Open Calculator") {
		t.Errorf("Prompt does not embed the goal: %q", model.prompts[0])
	}
}

func TestPlan_EmptyCompletion(t *testing.T) {
	p := New(&fakeModel{reply: ""})

	steps, err := p.Plan(context.Background(), "Enable Airplane Mode")
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("Expected an empty plan, got %v", steps)
	}
}

func TestPlan_UnstructuredCompletionPassesThrough(t *testing.T) {
	p := New(&fakeModel{reply: "Sure, here is a plan:\n\nOpen Settings"})

	steps, err := p.Plan(context.Background(), "Open Settings")
	if err != nil {
		t.Fatal(err)
	}
	// No normalization: preamble and blank lines flow through unchanged.
	want := []string{"Sure, here is a plan:", "", "Open Settings"}
	if len(steps) != len(want) {
		t.Fatalf("Expected %v, got %v", want, steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("Step %d = %q, want %q", i, steps[i], want[i])
		}
	}
}

func TestPlan_UpstreamErrorPropagates(t *testing.T) {
	upstream := errors.New("rate limited")
	p := New(&fakeModel{err: upstream})

	steps, err := p.Plan(context.Background(), "Enable Airplane Mode")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if !errors.Is(err, upstream) {
		t.Errorf("Expected the upstream error in the chain, got %v", err)
	}
	if steps != nil {
		t.Errorf("Expected no steps on error, got %v", steps)
	}
}
