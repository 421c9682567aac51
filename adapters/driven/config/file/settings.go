package file

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

// Environment variable names recognised by Load.
const (
	EnvProvider          = "FAQGEN_PROVIDER"
	EnvModel             = "FAQGEN_MODEL"
	EnvAPIKey            = "FAQGEN_API_KEY"
	EnvBaseURL           = "FAQGEN_BASE_URL"
	EnvRequestsPerSecond = "FAQGEN_REQUESTS_PER_SECOND"

	// Provider-native key variables, used when FAQGEN_API_KEY is unset.
	EnvOpenAIKey    = "OPENAI_API_KEY"
	EnvAnthropicKey = "ANTHROPIC_API_KEY"
)

// Settings is the on-disk configuration shape.
type Settings struct {
	// Pipeline holds chunking, filtering, and merging parameters.
	Pipeline domain.PipelineConfig `toml:"pipeline"`

	// Generation holds generator connection parameters. The API key is
	// normally supplied via the environment rather than the file.
	Generation domain.GenerationSettings `toml:"generation"`
}

// DefaultSettings returns settings with pipeline defaults and an
// unconfigured generator.
func DefaultSettings() Settings {
	return Settings{
		Pipeline: domain.DefaultPipelineConfig(),
	}
}

// Load reads settings from a TOML file and applies environment overrides.
// A missing file is not an error; defaults are used. A .env file in the
// working directory is loaded first when present, never overriding
// variables already set in the environment.
func Load(path string) (Settings, error) {
	// godotenv only sets variables that are not already present.
	_ = godotenv.Load()

	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file yet - that's fine, start from defaults
		case err != nil:
			return Settings{}, fmt.Errorf("read config: %w", err)
		default:
			if err := toml.Unmarshal(data, &settings); err != nil {
				return Settings{}, fmt.Errorf("%w: parse %s: %w", domain.ErrInvalidConfig, path, err)
			}
		}
	}

	applyEnvOverrides(&settings)

	if err := settings.Pipeline.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// Save writes settings to a TOML file with restricted permissions.
func Save(path string, settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides layers environment variables over file values.
func applyEnvOverrides(settings *Settings) {
	if v := os.Getenv(EnvProvider); v != "" {
		settings.Generation.Provider = domain.Provider(v)
	}
	if v := os.Getenv(EnvModel); v != "" {
		settings.Generation.Model = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		settings.Generation.BaseURL = v
	}
	if v := os.Getenv(EnvRequestsPerSecond); v != "" {
		if rps, err := strconv.ParseFloat(v, 64); err == nil {
			settings.Generation.RequestsPerSecond = rps
		}
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		settings.Generation.APIKey = v
		return
	}

	// Fall back to the provider's conventional variable.
	switch settings.Generation.Provider {
	case domain.ProviderOpenAI:
		if v := os.Getenv(EnvOpenAIKey); v != "" {
			settings.Generation.APIKey = v
		}
	case domain.ProviderAnthropic:
		if v := os.Getenv(EnvAnthropicKey); v != "" {
			settings.Generation.APIKey = v
		}
	}
}
