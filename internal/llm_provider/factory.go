package llm_provider

import (
	"context"
	"fmt"

	"meme-localizer/internal/third_party/gemini"
	localizer_openai "meme-localizer/internal/third_party/openai"
	"meme-localizer/pkg/types"
)

// Factory creates model providers based on the specified type
type Factory struct {
	config *types.Config
}

// NewFactory creates a new provider factory
func NewFactory(config *types.Config) *Factory {
	return &Factory{
		config: config,
	}
}

// CreateProvider creates a provider based on the specified type.
// It returns ErrMissingAPIKey when the provider's credential is empty.
func (f *Factory) CreateProvider(ctx context.Context, providerType GenerativeProviderType) (Provider, error) {
	switch providerType {
	case ProviderOpenAI:
		if f.config.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("%s: %w", providerType, ErrMissingAPIKey)
		}
		return localizer_openai.NewOpenAIClient(f.config.OpenAI), nil
	case ProviderGemini:
		if f.config.Gemini.APIKey == "" {
			return nil, fmt.Errorf("%s: %w", providerType, ErrMissingAPIKey)
		}
		client, err := gemini.NewGeminiClient(ctx, f.config.Gemini)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}
