package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRejectReason_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		reason RejectReason
		valid  bool
	}{
		{name: "empty or malformed", reason: RejectEmptyOrMalformed, valid: true},
		{name: "too short", reason: RejectTooShort, valid: true},
		{name: "boilerplate", reason: RejectBoilerplate, valid: true},
		{name: "low information answer", reason: RejectLowInformationAnswer, valid: true},
		{name: "empty string", reason: RejectReason(""), valid: false},
		{name: "unknown", reason: RejectReason("bogus"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.reason.IsValid())
		})
	}
}

func TestRejectReason_Description(t *testing.T) {
	assert.Equal(t, "Empty or malformed question/answer", RejectEmptyOrMalformed.Description())
	assert.Equal(t, "Question below minimum length", RejectTooShort.Description())
	assert.Equal(t, "Generic boilerplate question", RejectBoilerplate.Description())
	assert.Equal(t, "Answer restates the question", RejectLowInformationAnswer.Description())
	assert.Equal(t, "Unknown", RejectReason("bogus").Description())
}

func TestScoredCandidate_Accepted(t *testing.T) {
	accepted := ScoredCandidate{
		Candidate:    Candidate{Question: "What is kept?", Answer: "This one."},
		QualityScore: 0.6,
	}
	rejected := ScoredCandidate{
		Candidate:    Candidate{Question: "", Answer: ""},
		RejectReason: RejectEmptyOrMalformed,
	}

	assert.True(t, accepted.Accepted())
	assert.False(t, rejected.Accepted())
}
