package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faqgen.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// clearEnv blanks every recognised variable so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvProvider, EnvModel, EnvAPIKey, EnvBaseURL, EnvRequestsPerSecond,
		EnvOpenAIKey, EnvAnthropicKey,
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	settings, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPipelineConfig(), settings.Pipeline)
	assert.False(t, settings.Generation.IsConfigured())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	clearEnv(t)
	settings, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPipelineConfig(), settings.Pipeline)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[pipeline]
max_chunk_chars = 1000
overlap_chars = 100

[generation]
provider = "ollama"
model = "llama3.2"
`)

	settings, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1000, settings.Pipeline.MaxChunkChars)
	assert.Equal(t, 100, settings.Pipeline.OverlapChars)
	// Unspecified fields keep their defaults.
	assert.Equal(t, domain.DefaultMaxFAQsPerChunk, settings.Pipeline.MaxFAQsPerChunk)
	assert.Equal(t, domain.DefaultSimilarityThreshold, settings.Pipeline.SimilarityThreshold)

	assert.Equal(t, domain.ProviderOllama, settings.Generation.Provider)
	assert.Equal(t, "llama3.2", settings.Generation.Model)
	assert.True(t, settings.Generation.IsConfigured())
}

func TestLoad_InvalidTOML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "not [valid toml")

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoad_InvalidPipelineValues(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[pipeline]
max_chunk_chars = -5
`)

	_, err := Load(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[generation]
provider = "ollama"
model = "llama3.2"
`)

	t.Setenv(EnvProvider, "anthropic")
	t.Setenv(EnvModel, "claude-3-5-haiku-latest")
	t.Setenv(EnvAPIKey, "sk-test")
	t.Setenv(EnvBaseURL, "https://proxy.example.com")
	t.Setenv(EnvRequestsPerSecond, "2.5")

	settings, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, domain.ProviderAnthropic, settings.Generation.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", settings.Generation.Model)
	assert.Equal(t, "sk-test", settings.Generation.APIKey)
	assert.Equal(t, "https://proxy.example.com", settings.Generation.BaseURL)
	assert.Equal(t, 2.5, settings.Generation.RequestsPerSecond)
}

func TestLoad_ProviderNativeKeyFallback(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[generation]
provider = "openai"
`)

	t.Setenv(EnvOpenAIKey, "sk-openai")

	settings, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "sk-openai", settings.Generation.APIKey)
	assert.True(t, settings.Generation.IsConfigured())
}

func TestLoad_ExplicitKeyBeatsProviderNative(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[generation]
provider = "openai"
`)

	t.Setenv(EnvAPIKey, "sk-explicit")
	t.Setenv(EnvOpenAIKey, "sk-openai")

	settings, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "sk-explicit", settings.Generation.APIKey)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "faqgen.toml")
	original := DefaultSettings()
	original.Pipeline.MaxFAQs = 25
	original.Generation.Provider = domain.ProviderOllama
	original.Generation.Model = "mistral"

	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.Pipeline, loaded.Pipeline)
	assert.Equal(t, original.Generation, loaded.Generation)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
