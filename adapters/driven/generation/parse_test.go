package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

func TestParseCandidates_JSON(t *testing.T) {
	response := `{
		"faqs": [
			{"question": "What port does the server use?", "answer": "Port 8080 by default."},
			{"question": "How is TLS configured?", "answer": "Via the tls section of the config file."}
		]
	}`

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "What port does the server use?", candidates[0].Question)
	assert.Equal(t, "Port 8080 by default.", candidates[0].Answer)
	assert.Equal(t, "How is TLS configured?", candidates[1].Question)
}

func TestParseCandidates_JSONWithSurroundingProse(t *testing.T) {
	response := "Sure, here are the FAQs you asked for:\n\n" +
		`{"faqs": [{"question": "What is cached?", "answer": "Rendered pages, for one hour."}]}` +
		"\n\nLet me know if you need more."

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "What is cached?", candidates[0].Question)
}

func TestParseCandidates_JSONSkipsBlankPairs(t *testing.T) {
	response := `{"faqs": [
		{"question": "  ", "answer": "An answer."},
		{"question": "What remains?", "answer": "Only this pair."},
		{"question": "A question?", "answer": ""}
	]}`

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "What remains?", candidates[0].Question)
}

func TestParseCandidates_QAFallback(t *testing.T) {
	response := `Q: What port does the server use?
A: Port 8080 by default.

Q: How is TLS configured?
A: Via the tls section of the config file.`

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, "What port does the server use?", candidates[0].Question)
	assert.Equal(t, "Port 8080 by default.", candidates[0].Answer)
	assert.Equal(t, "Via the tls section of the config file.", candidates[1].Answer)
}

func TestParseCandidates_QAFallbackStripsMarkdown(t *testing.T) {
	response := `**Q:** What is backed up?
**A:** The database and uploaded files.`

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "What is backed up?", candidates[0].Question)
	assert.Equal(t, "The database and uploaded files.", candidates[0].Answer)
}

func TestParseCandidates_QAAnswerStopsAtBlankLine(t *testing.T) {
	response := `Q: What is retained?
A: Logs for 30 days.

Unrelated commentary the model added afterwards.`

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Logs for 30 days.", candidates[0].Answer)
}

func TestParseCandidates_MalformedJSONFallsBack(t *testing.T) {
	// Broken JSON followed by a usable Q/A section.
	response := `{"faqs": [{"question": "truncated...
Q: What still parses?
A: The fallback format.`

	candidates, err := ParseCandidates(response)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "What still parses?", candidates[0].Question)
}

func TestParseCandidates_NothingParses(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "empty", response: ""},
		{name: "prose only", response: "I could not find any questions in this text."},
		{name: "empty faqs array", response: `{"faqs": []}`},
		{name: "question without answer marker", response: "Q: Where is the answer?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCandidates(tt.response)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrParse)
		})
	}
}

func TestParseCandidates_LeavesProvenanceUnset(t *testing.T) {
	candidates, err := ParseCandidates(`{"faqs": [{"question": "Who sets the span?", "answer": "The collector."}]}`)

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Empty(t, candidates[0].ID)
	assert.Zero(t, candidates[0].SourceChunkIndex)
	assert.Zero(t, candidates[0].SpanStart)
	assert.Zero(t, candidates[0].SpanEnd)
}
