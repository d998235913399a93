package llm_provider

import (
	"context"
	"errors"

	"meme-localizer/pkg/types"
)

// Provider defines the interface that all generative model backends must implement
type Provider interface {
	Complete(ctx context.Context, parts []types.Part) (string, error)
	StreamCompletion(ctx context.Context, parts []types.Part, onChunk func(string) error) error
}

// GenerativeProviderType represents the type of generative model backend
type GenerativeProviderType string

const (
	ProviderOpenAI GenerativeProviderType = "openai"
	ProviderGemini GenerativeProviderType = "gemini"
)

// ErrMissingAPIKey is returned when the selected provider has no credential configured.
var ErrMissingAPIKey = errors.New("api key not configured")
