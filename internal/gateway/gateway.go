package gateway

import (
	"context"

	"github.com/edithqa/edith/internal/store"
	"github.com/edithqa/edith/internal/supervisor"
)

// Messenger defines the interface for communication gateways (Telegram, etc.)
type Messenger interface {
	// Start begins the message listening loop
	Start() error
	// Send sends a message to a specific chat
	Send(chatID string, text string) error
	// Stop gracefully shuts down the gateway
	Stop() error
}

// Runner runs one goal through the QA pipeline.
type Runner interface {
	Run(ctx context.Context, goal string) (*supervisor.TaskReport, error)
}

// History reads past runs for the gateway's /history command.
type History interface {
	Recent(limit int) ([]store.RunSummary, error)
}
