// Package score assigns each sentence a deterministic importance score from
// legal-keyword density, document position, and length heuristics.
package score

import (
	"sort"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// Tunable weights. keywordWeight must stay larger than the worst combined
// penalty so an extra keyword always raises the clamped score.
const (
	keywordWeight = 2.0
	leadBonus     = 1.0 // sentences in the opening of the document
	tailBonus     = 0.5 // sentences in the closing of the document
	shortPenalty  = 1.0 // fragments below minWords, down-weighted but kept
	longPenalty   = 0.5 // run-on sentences above maxWords

	leadFraction = 0.2
	tailFraction = 0.8
	minWords     = 5
	maxWords     = 60
)

// Scorer scores sentences against a fixed legal keyword vocabulary.
// The vocabulary is read-only after construction.
type Scorer struct {
	keywords []string
}

// NewScorer creates a scorer with the built-in vocabulary. Entries are
// lowercase stems so inflected forms ("warranties", "indemnification")
// count as occurrences.
func NewScorer() *Scorer {
	return &Scorer{
		keywords: []string{
			"liability", "warrant", "indemnif", "terminat",
			"governing law", "confidential", "breach", "damages",
			"payment", "compensation", "force majeure", "jurisdiction",
			"dispute", "obligation", "severability", "assignment",
		},
	}
}

// Score computes a score for every sentence and fills in the score rank
// (0 = highest, ties broken by document order). The returned slice stays
// in document order.
func (s *Scorer) Score(sentences []model.Sentence) []model.ScoredSentence {
	if len(sentences) == 0 {
		return nil
	}

	scored := make([]model.ScoredSentence, len(sentences))
	for i, sent := range sentences {
		scored[i] = model.ScoredSentence{
			Sentence: sent,
			Score:    s.scoreSentence(sent, len(sentences)),
		}
	}

	order := make([]int, len(scored))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scored[order[a]].Score > scored[order[b]].Score
	})
	for rank, idx := range order {
		scored[idx].Rank = rank
	}

	return scored
}

func (s *Scorer) scoreSentence(sent model.Sentence, total int) float64 {
	lower := strings.ToLower(sent.Text)

	// score = keyword_count * keywordWeight + position_bonus + length_adjustment, clamped at 0
	count := 0
	for _, kw := range s.keywords {
		count += strings.Count(lower, kw)
	}

	score := keywordWeight * float64(count)
	score += positionBonus(sent.Index, total)
	score += lengthAdjustment(sent.WordCount)
	if score < 0 {
		score = 0
	}
	return score
}

// positionBonus favors the lead and tail of the document; openings and
// closings of legal documents are conventionally salient.
func positionBonus(index, total int) float64 {
	pos := float64(index) / float64(total)
	switch {
	case pos < leadFraction:
		return leadBonus
	case pos >= tailFraction:
		return tailBonus
	default:
		return 0
	}
}

// lengthAdjustment down-weights fragments and run-on sentences without
// discarding either.
func lengthAdjustment(words int) float64 {
	switch {
	case words < minWords:
		return -shortPenalty
	case words > maxWords:
		return -longPenalty
	default:
		return 0
	}
}
