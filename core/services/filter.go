package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/internal/logger"
)

// Quality score weights. Scoring is deterministic given the same inputs
// and weights.
const (
	answerLengthWeight = 0.4
	specificityWeight  = 0.3
	hedgingWeight      = 0.3

	// fullLengthWords is the answer word count that earns the full
	// length score.
	fullLengthWords = 50

	// lowInformationThreshold is the token-overlap level above which an
	// answer counts as a restatement of its question.
	lowInformationThreshold = 0.8

	// hedgePenalty is subtracted from the hedging component per hedge
	// phrase found in the answer.
	hedgePenalty = 0.25
)

// boilerplateQuestions are generic questions that add nothing to a FAQ.
// Matching is by substring on the normalised question.
var boilerplateQuestions = []string{
	"what is this document about",
	"what is this text about",
	"what is the main topic",
	"what is the purpose of this document",
	"what does this document cover",
	"can you summarize",
	"can you summarise",
}

// hedgePhrases signal non-committal answers.
var hedgePhrases = []string{
	"might be",
	"may be",
	"perhaps",
	"possibly",
	"it seems",
	"it appears",
	"presumably",
	"not clear",
	"unclear",
}

// interrogatives are question openers that tend to elicit substantive
// answers rather than yes/no artifacts.
var interrogatives = []string{"what", "how", "why", "when", "where", "who", "which"}

// Filter rejects malformed, too-short, generic, or low-information
// candidates and scores the survivors. It is a total function: malformed
// input is handled by rejection, never by an error.
type Filter struct {
	requireQuestionMark bool
	minQuestionRunes    int
}

// NewFilter creates a quality filter from the pipeline configuration.
func NewFilter(cfg domain.PipelineConfig) *Filter {
	return &Filter{
		requireQuestionMark: cfg.RequireQuestionMark,
		minQuestionRunes:    cfg.MinQuestionRunes,
	}
}

// Filter scores every candidate. Rejected candidates are retained with
// their reason for diagnostics; rules are evaluated in order and the first
// match wins.
func (f *Filter) Filter(candidates []domain.Candidate) []domain.ScoredCandidate {
	scored := make([]domain.ScoredCandidate, 0, len(candidates))

	for _, cand := range candidates {
		sc := domain.ScoredCandidate{Candidate: cand}

		if reason := f.reject(cand); reason != "" {
			sc.RejectReason = reason
			logger.Debug("Rejected candidate %s (%s): %.60q", cand.ID, reason, cand.Question)
		} else {
			sc.QualityScore = f.score(cand)
		}

		scored = append(scored, sc)
	}

	return scored
}

// reject applies the rejection rules in order. An empty reason means the
// candidate survives.
func (f *Filter) reject(cand domain.Candidate) domain.RejectReason {
	question := strings.TrimSpace(cand.Question)
	answer := strings.TrimSpace(cand.Answer)

	if question == "" || answer == "" {
		return domain.RejectEmptyOrMalformed
	}
	if f.requireQuestionMark && !strings.Contains(question, "?") {
		return domain.RejectEmptyOrMalformed
	}

	if utf8.RuneCountInString(question) < f.minQuestionRunes {
		return domain.RejectTooShort
	}

	normalised := strings.ToLower(question)
	for _, pattern := range boilerplateQuestions {
		if strings.Contains(normalised, pattern) {
			return domain.RejectBoilerplate
		}
	}

	if jaccard(normaliseTokens(question), normaliseTokens(answer)) >= lowInformationThreshold {
		return domain.RejectLowInformationAnswer
	}

	return ""
}

// score combines answer length, specificity, and absence of hedging into
// a quality score in [0,1].
func (f *Filter) score(cand domain.Candidate) float64 {
	length := answerLengthScore(cand.Answer)
	specificity := specificityScore(cand.Question, cand.Answer)
	hedging := hedgingScore(cand.Answer)

	return answerLengthWeight*length + specificityWeight*specificity + hedgingWeight*hedging
}

// answerLengthScore normalises the answer word count: longer answers are
// usually more informative, saturating at fullLengthWords.
func answerLengthScore(answer string) float64 {
	words := len(strings.Fields(answer))
	score := float64(words) / fullLengthWords
	if score > 1 {
		score = 1
	}
	return score
}

// specificityScore rewards numbers and named entities in the answer and an
// interrogative question opener.
func specificityScore(question, answer string) float64 {
	var score float64

	if containsDigit(answer) {
		score += 0.4
	}
	if containsEntity(answer) {
		score += 0.4
	}

	opener := strings.ToLower(firstField(question))
	for _, w := range interrogatives {
		if opener == w {
			score += 0.2
			break
		}
	}

	return score
}

// hedgingScore starts at 1 and loses hedgePenalty per hedge phrase.
func hedgingScore(answer string) float64 {
	normalised := strings.ToLower(answer)
	score := 1.0
	for _, phrase := range hedgePhrases {
		if strings.Contains(normalised, phrase) {
			score -= hedgePenalty
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// containsEntity reports whether any word after the first starts with an
// upper-case letter - a cheap proxy for named entities.
func containsEntity(s string) bool {
	fields := strings.Fields(s)
	for i, field := range fields {
		if i == 0 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(field)
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
