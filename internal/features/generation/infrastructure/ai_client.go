package infrastructure

import (
	"context"
)

// IdeaRefiner rewrites a raw idea into a clearer one before analysis.
type IdeaRefiner interface {
	Refine(ctx context.Context, idea string) (string, error)
}

// AIConfig holds configuration for AI clients
type AIConfig struct {
	APIKey string `json:"api_key"`
	Model  string `json:"model"`
	// BaseURL overrides the provider endpoint; empty means the default.
	BaseURL string `json:"base_url,omitempty"`
}
