package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// ErrNoAPIKey indicates that no completion-provider credential was
// configured. It is checked once at startup, not per call.
var ErrNoAPIKey = errors.New("planner: completion provider API key is not configured")

// Temperature keeps planning deterministic-leaning without pinning the
// model to a single completion.
const Temperature = 0.2

const promptTemplate = `You are an intelligent task planner for Android UI automation testing.
Given a high-level goal, break it down into step-by-step UI actions.

Format your answer as a numbered list of short steps.

Goal: %s
`

// LLMPlanner turns a natural-language goal into an ordered list of UI steps
// by delegating to a chat completion model.
type LLMPlanner struct {
	Model llms.Model
}

func New(model llms.Model) *LLMPlanner {
	return &LLMPlanner{Model: model}
}

// Plan asks the model for a numbered step list and splits the reply on line
// boundaries. The reply's structure is not validated; whatever the model
// returns flows through unchanged, including an empty plan.
func (p *LLMPlanner) Plan(ctx context.Context, goal string) ([]string, error) {
	messages := []llms.MessageContent{
		{
			Role:  schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf(promptTemplate, goal))},
		},
	}

	resp, err := p.Model.GenerateContent(ctx, messages, llms.WithTemperature(Temperature))
	if err != nil {
		return nil, fmt.Errorf("planner: completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("planner: completion returned no choices")
	}

	return splitLines(resp.Choices[0].Content), nil
}

// splitLines splits completion text on line breaks, dropping only the empty
// tail a trailing newline would otherwise produce. Blank interior lines are
// kept.
func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
