// Package factory builds Generator adapters from generation settings.
package factory

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/faqgen-core/adapters/driven/generation/anthropic"
	"github.com/custodia-labs/faqgen-core/adapters/driven/generation/ollama"
	"github.com/custodia-labs/faqgen-core/adapters/driven/generation/openai"
	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// CreateGenerator creates the appropriate generator based on settings.
// Returns nil if the provider is not configured.
func CreateGenerator(settings *domain.GenerationSettings) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	switch settings.Provider {
	case domain.ProviderOllama:
		return ollama.NewGenerator(ollama.Config{
			BaseURL:           settings.BaseURL,
			Model:             settings.Model,
			Temperature:       settings.Temperature,
			MaxTokens:         settings.MaxTokens,
			RequestsPerSecond: settings.RequestsPerSecond,
		}), nil

	case domain.ProviderOpenAI:
		return openai.NewGenerator(openai.Config{
			APIKey:            settings.APIKey,
			BaseURL:           settings.BaseURL,
			Model:             settings.Model,
			Temperature:       settings.Temperature,
			MaxTokens:         settings.MaxTokens,
			RequestsPerSecond: settings.RequestsPerSecond,
		})

	case domain.ProviderAnthropic:
		return anthropic.NewGenerator(anthropic.Config{
			APIKey:            settings.APIKey,
			BaseURL:           settings.BaseURL,
			Model:             settings.Model,
			Temperature:       settings.Temperature,
			MaxTokens:         settings.MaxTokens,
			RequestsPerSecond: settings.RequestsPerSecond,
		})

	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedProvider, settings.Provider)
	}
}

// CreateAndValidateGenerator creates a generator and validates connectivity.
// Returns the generator if successful, or an error with guidance.
func CreateAndValidateGenerator(settings *domain.GenerationSettings) (driven.Generator, error) {
	if settings == nil || !settings.IsConfigured() {
		return nil, nil
	}

	gen, err := CreateGenerator(settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneratorUnavailable, err)
	}

	if gen == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := gen.Ping(ctx); err != nil {
		gen.Close()
		return nil, fmt.Errorf("%w: service unreachable (%w)", domain.ErrGeneratorUnavailable, err)
	}

	return gen, nil
}
