package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/custodia-labs/faqgen-core/core/domain"
	"github.com/custodia-labs/faqgen-core/core/ports/driven"
	"github.com/custodia-labs/faqgen-core/internal/logger"
)

// Confidence weights: the representative's quality score dominates, with a
// bonus for corroboration across distinct chunks.
const (
	confidenceQualityWeight       = 0.8
	confidenceCorroborationWeight = 0.2
)

// attributionMarker prefixes answer material contributed by a non-
// representative cluster member.
const attributionMarker = "Additionally (from section %d): %s"

// Merger clusters near-duplicate candidates and merges each cluster into
// one representative FAQ entry.
//
// Clustering is greedy single-linkage over pairwise question similarity:
// two candidates join the same cluster iff their similarity meets the
// threshold, and membership is transitive. If A~B and B~C clear the
// threshold, A,B,C form one cluster even when A~C falls below it. This is
// an explicit policy, not an accident; its known failure mode is cluster
// drift when the threshold is set low.
type Merger struct {
	similarity           driven.Similarity
	similarityThreshold  float64
	answerMergeThreshold float64
	maxFAQs              int
}

// NewMerger creates a merger using the given similarity strategy.
func NewMerger(similarity driven.Similarity, cfg domain.PipelineConfig) *Merger {
	return &Merger{
		similarity:           similarity,
		similarityThreshold:  cfg.SimilarityThreshold,
		answerMergeThreshold: cfg.AnswerMergeThreshold,
		maxFAQs:              cfg.MaxFAQs,
	}
}

// faqCluster groups near-duplicate candidates during a merge. It is
// transient: nothing outside Merge ever sees one.
type faqCluster struct {
	members        []domain.ScoredCandidate
	representative domain.ScoredCandidate
	mergedAnswer   string
}

// Merge clusters the accepted candidates and produces the final ordered
// FAQ list: descending confidence, ties broken by first source chunk.
// Rejected candidates are ignored. The only error source is the similarity
// strategy; the lexical strategy never fails.
func (m *Merger) Merge(ctx context.Context, scored []domain.ScoredCandidate) ([]domain.FAQEntry, error) {
	accepted := make([]domain.ScoredCandidate, 0, len(scored))
	for _, sc := range scored {
		if sc.Accepted() {
			accepted = append(accepted, sc)
		}
	}
	if len(accepted) == 0 {
		return []domain.FAQEntry{}, nil
	}

	// Canonical order first: clustering and tie-breaking must not depend
	// on the caller's input order.
	sort.SliceStable(accepted, func(i, j int) bool {
		return candidateBefore(accepted[i], accepted[j])
	})

	clusters, err := m.cluster(ctx, accepted)
	if err != nil {
		return nil, err
	}
	logger.Debug("Clustered %d candidates into %d clusters", len(accepted), len(clusters))

	entries := make([]domain.FAQEntry, 0, len(clusters))
	for i := range clusters {
		if err := m.mergeAnswers(ctx, &clusters[i]); err != nil {
			return nil, err
		}
		entries = append(entries, entryFromCluster(clusters[i]))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Confidence != entries[j].Confidence {
			return entries[i].Confidence > entries[j].Confidence
		}
		if entries[i].SourceChunks[0] != entries[j].SourceChunks[0] {
			return entries[i].SourceChunks[0] < entries[j].SourceChunks[0]
		}
		return entries[i].Question < entries[j].Question
	})

	// Truncation is strictly post-merge: the cap never influences which
	// clusters form.
	if m.maxFAQs > 0 && len(entries) > m.maxFAQs {
		entries = entries[:m.maxFAQs]
	}

	return entries, nil
}

// cluster runs union-find single-linkage over pairwise question
// similarity.
func (m *Merger) cluster(ctx context.Context, accepted []domain.ScoredCandidate) ([]faqCluster, error) {
	parent := make([]int, len(accepted))
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	union := func(i, j int) {
		ri, rj := find(i), find(j)
		if ri != rj {
			parent[rj] = ri
		}
	}

	for i := 0; i < len(accepted); i++ {
		for j := i + 1; j < len(accepted); j++ {
			score, err := m.similarity.Score(ctx, accepted[i].Question, accepted[j].Question)
			if err != nil {
				return nil, fmt.Errorf("question similarity: %w", err)
			}
			if score >= m.similarityThreshold {
				union(i, j)
			}
		}
	}

	// Group members by root, preserving canonical order within clusters
	// and first-appearance order across clusters.
	byRoot := make(map[int]*faqCluster)
	var order []int
	for i, sc := range accepted {
		root := find(i)
		cl, ok := byRoot[root]
		if !ok {
			cl = &faqCluster{}
			byRoot[root] = cl
			order = append(order, root)
		}
		cl.members = append(cl.members, sc)
	}

	clusters := make([]faqCluster, 0, len(order))
	for _, root := range order {
		cl := *byRoot[root]
		cl.representative = selectRepresentative(cl.members)
		clusters = append(clusters, cl)
	}
	return clusters, nil
}

// selectRepresentative picks the highest-scoring member; ties go to the
// earliest chunk, then the earliest span start.
func selectRepresentative(members []domain.ScoredCandidate) domain.ScoredCandidate {
	best := members[0]
	for _, sc := range members[1:] {
		switch {
		case sc.QualityScore > best.QualityScore:
			best = sc
		case sc.QualityScore == best.QualityScore && candidateBefore(sc, best):
			best = sc
		}
	}
	return best
}

// mergeAnswers keeps the representative's answer and appends cluster
// answers that differ substantially, with attribution, rather than
// silently discarding information.
func (m *Merger) mergeAnswers(ctx context.Context, cl *faqCluster) error {
	merged := cl.representative.Answer
	kept := []string{cl.representative.Answer}

	for _, member := range cl.members {
		if member.ID == cl.representative.ID {
			continue
		}

		distinct := true
		for _, existing := range kept {
			score, err := m.similarity.Score(ctx, existing, member.Answer)
			if err != nil {
				return fmt.Errorf("answer similarity: %w", err)
			}
			if score >= m.answerMergeThreshold {
				distinct = false
				break
			}
		}
		if distinct {
			merged += "\n\n" + fmt.Sprintf(attributionMarker, member.SourceChunkIndex, member.Answer)
			kept = append(kept, member.Answer)
		}
	}

	cl.mergedAnswer = merged
	return nil
}

// entryFromCluster builds the final FAQ entry for a cluster.
func entryFromCluster(cl faqCluster) domain.FAQEntry {
	chunkSet := make(map[int]struct{})
	for _, member := range cl.members {
		chunkSet[member.SourceChunkIndex] = struct{}{}
	}
	chunks := make([]int, 0, len(chunkSet))
	for idx := range chunkSet {
		chunks = append(chunks, idx)
	}
	sort.Ints(chunks)

	return domain.FAQEntry{
		ID:           uuid.New().String(),
		Question:     cl.representative.Question,
		Answer:       cl.mergedAnswer,
		SourceChunks: chunks,
		Confidence:   confidence(cl.representative.QualityScore, len(chunks)),
	}
}

// confidence combines the representative's quality score with cross-chunk
// corroboration: entries seen in more chunks rank higher.
func confidence(qualityScore float64, distinctChunks int) float64 {
	corroboration := 0.0
	if distinctChunks > 1 {
		corroboration = 1 - 1/float64(distinctChunks)
	}
	return confidenceQualityWeight*qualityScore + confidenceCorroborationWeight*corroboration
}

// candidateBefore is the canonical candidate order: earliest chunk, then
// earliest span start, then question text.
func candidateBefore(a, b domain.ScoredCandidate) bool {
	if a.SourceChunkIndex != b.SourceChunkIndex {
		return a.SourceChunkIndex < b.SourceChunkIndex
	}
	if a.SpanStart != b.SpanStart {
		return a.SpanStart < b.SpanStart
	}
	return a.Question < b.Question
}
