package generation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/custodia-labs/faqgen-core/core/domain"
)

// faqsPayload is the JSON shape the prompt asks for.
type faqsPayload struct {
	FAQs []struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"faqs"`
}

// ParseCandidates extracts question/answer pairs from a model response.
// It first looks for the requested JSON payload anywhere in the response,
// then falls back to the loose "Q: ... A: ..." format models sometimes
// produce. A response yielding no pairs wraps domain.ErrParse.
//
// Provenance fields (ID, chunk index, span) are left unset; the collector
// attaches them.
func ParseCandidates(response string) ([]domain.Candidate, error) {
	if candidates := parseJSON(response); len(candidates) > 0 {
		return candidates, nil
	}
	if candidates := parseQA(response); len(candidates) > 0 {
		return candidates, nil
	}
	return nil, fmt.Errorf("%w: no question/answer pairs in response (%d chars)",
		domain.ErrParse, len(response))
}

// parseJSON finds the outermost JSON object in the response and decodes
// the "faqs" array.
func parseJSON(response string) []domain.Candidate {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil
	}

	var payload faqsPayload
	if err := json.Unmarshal([]byte(response[start:end+1]), &payload); err != nil {
		return nil
	}

	var candidates []domain.Candidate
	for _, faq := range payload.FAQs {
		question := strings.TrimSpace(faq.Question)
		answer := strings.TrimSpace(faq.Answer)
		if question == "" || answer == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{Question: question, Answer: answer})
	}
	return candidates
}

// parseQA handles the fallback "Q: ... A: ..." format. An answer runs
// until the next blank line.
func parseQA(response string) []domain.Candidate {
	var candidates []domain.Candidate

	parts := strings.Split(response, "Q:")
	for _, part := range parts[1:] {
		qText, aText, found := strings.Cut(part, "A:")
		if !found {
			continue
		}

		question := cleanQA(qText)
		answer, _, _ := strings.Cut(strings.TrimSpace(aText), "\n\n")
		answer = cleanQA(answer)

		if question == "" || answer == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{Question: question, Answer: answer})
	}

	return candidates
}

// cleanQA strips markdown emphasis and surrounding whitespace.
func cleanQA(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}
