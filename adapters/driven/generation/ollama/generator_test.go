package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
)

func TestGenerator_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3.2", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "The cache holds rendered pages.")

		resp := chatResponse{
			Message: chatMessage{
				Role:    "assistant",
				Content: `{"faqs": [{"question": "What does the cache hold?", "answer": "Rendered pages."}]}`,
			},
			Done: true,
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	candidates, err := gen.Generate(context.Background(),
		domain.Chunk{Index: 0, Text: "The cache holds rendered pages."},
		driven.GenerationParams{MaxFAQsPerChunk: 1})

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "What does the cache hold?", candidates[0].Question)
	assert.Equal(t, "Rendered pages.", candidates[0].Answer)
}

func TestGenerator_Generate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	_, err := gen.Generate(context.Background(), domain.Chunk{Text: "text"}, driven.GenerationParams{MaxFAQsPerChunk: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrGeneration)
	assert.Contains(t, err.Error(), "status 404")
}

func TestGenerator_Generate_UnparseableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := chatResponse{Message: chatMessage{Role: "assistant", Content: "no pairs here"}, Done: true}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	_, err := gen.Generate(context.Background(), domain.Chunk{Text: "text"}, driven.GenerationParams{MaxFAQsPerChunk: 1})

	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestGenerator_Defaults(t *testing.T) {
	gen := NewGenerator(Config{})

	assert.Equal(t, DefaultModel, gen.ModelName())
}

func TestGenerator_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	assert.NoError(t, gen.Ping(context.Background()))
}

func TestGenerator_Ping_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gen := NewGenerator(Config{BaseURL: server.URL})

	assert.Error(t, gen.Ping(context.Background()))
}
