package domain

// Candidate is a raw question/answer pair proposed by a generator for a
// single chunk. It has not been vetted yet.
type Candidate struct {
	// ID is the unique identifier for the candidate.
	ID string `json:"id"`

	// Question is the proposed question text.
	Question string `json:"question"`

	// Answer is the proposed answer text.
	Answer string `json:"answer"`

	// SourceChunkIndex is the index of the chunk that produced this pair.
	SourceChunkIndex int `json:"source_chunk_index"`

	// SpanStart and SpanEnd record the source character span the candidate
	// was generated from, in document offsets. When a generator cannot
	// attribute more precisely, the span covers the whole chunk.
	SpanStart int `json:"span_start"`
	SpanEnd   int `json:"span_end"`
}

// RejectReason identifies why the quality filter discarded a candidate.
type RejectReason string

// Rejection reasons, evaluated in this order by the filter.
const (
	// RejectEmptyOrMalformed covers blank questions or answers, and
	// questions missing a question mark when the policy requires one.
	RejectEmptyOrMalformed RejectReason = "empty_or_malformed"

	// RejectTooShort covers questions below the minimum length.
	RejectTooShort RejectReason = "too_short"

	// RejectBoilerplate covers generic questions matching the denylist.
	RejectBoilerplate RejectReason = "boilerplate"

	// RejectLowInformationAnswer covers answers that merely restate the
	// question.
	RejectLowInformationAnswer RejectReason = "low_information_answer"
)

// IsValid returns true if the reject reason is recognised.
func (r RejectReason) IsValid() bool {
	switch r {
	case RejectEmptyOrMalformed, RejectTooShort, RejectBoilerplate, RejectLowInformationAnswer:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r RejectReason) String() string {
	return string(r)
}

// Description returns a human-readable description of the reason.
func (r RejectReason) Description() string {
	switch r {
	case RejectEmptyOrMalformed:
		return "Empty or malformed question/answer"
	case RejectTooShort:
		return "Question below minimum length"
	case RejectBoilerplate:
		return "Generic boilerplate question"
	case RejectLowInformationAnswer:
		return "Answer restates the question"
	default:
		return unknownDescription
	}
}

// ScoredCandidate is a candidate after quality filtering. Rejected
// candidates are retained with their reason for diagnostics but excluded
// from merging.
type ScoredCandidate struct {
	Candidate

	// QualityScore is in [0,1]. Zero for rejected candidates.
	QualityScore float64 `json:"quality_score"`

	// RejectReason is empty for accepted candidates.
	RejectReason RejectReason `json:"reject_reason,omitempty"`
}

// Accepted returns true if the candidate survived filtering.
func (s ScoredCandidate) Accepted() bool {
	return s.RejectReason == ""
}
