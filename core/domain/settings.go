package domain

const unknownDescription = "Unknown"

// Provider identifies a generation service provider.
type Provider string

// Available providers.
const (
	// ProviderOpenAI is the OpenAI cloud API.
	ProviderOpenAI Provider = "openai"

	// ProviderAnthropic is the Anthropic cloud API.
	ProviderAnthropic Provider = "anthropic"

	// ProviderOllama is a local Ollama instance.
	ProviderOllama Provider = "ollama"
)

// IsValid returns true if the provider is recognised.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p Provider) RequiresAPIKey() bool {
	return p == ProviderOpenAI || p == ProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p Provider) IsLocal() bool {
	return p == ProviderOllama
}

// String returns the string representation.
func (p Provider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p Provider) Description() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI (cloud)"
	case ProviderAnthropic:
		return "Anthropic (cloud)"
	case ProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// GenerationSettings holds generator connection configuration.
// The API key is supplied by the caller; key management is out of scope.
type GenerationSettings struct {
	// Provider selects the generation backend.
	Provider Provider `json:"provider" toml:"provider"`

	// Model is the model name. Empty uses the adapter default.
	Model string `json:"model" toml:"model"`

	// APIKey authenticates cloud providers.
	APIKey string `json:"-" toml:"api_key"`

	// BaseURL overrides the API endpoint. Empty uses the adapter default.
	BaseURL string `json:"base_url,omitempty" toml:"base_url"`

	// Temperature is the sampling temperature in [0,1].
	Temperature float64 `json:"temperature" toml:"temperature"`

	// MaxTokens caps the response length per generation call.
	MaxTokens int `json:"max_tokens" toml:"max_tokens"`

	// RequestsPerSecond throttles generation calls. Zero disables
	// throttling.
	RequestsPerSecond float64 `json:"requests_per_second" toml:"requests_per_second"`
}

// IsConfigured returns true if the settings name a valid provider with the
// credentials it requires.
func (s GenerationSettings) IsConfigured() bool {
	if !s.Provider.IsValid() {
		return false
	}
	if s.Provider.RequiresAPIKey() && s.APIKey == "" {
		return false
	}
	return true
}
