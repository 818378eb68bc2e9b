// Package summarize turns scored sentences into an extractive summary and
// a ranked key point list.
package summarize

import (
	"sort"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// Summarizer selects top-scoring sentences. The summary keeps document
// order for readability; key points are re-ranked purely by score.
type Summarizer struct {
	maxSentences int
	maxKeyPoints int
	maxPointLen  int // characters per key point before truncation
}

// NewSummarizer creates a summarizer from the analyzer configuration.
// Non-positive values fall back to the defaults.
func NewSummarizer(cfg model.AnalyzerConfig) *Summarizer {
	def := model.DefaultConfig().Analyzer
	s := &Summarizer{
		maxSentences: cfg.MaxSummarySentences,
		maxKeyPoints: cfg.MaxKeyPoints,
		maxPointLen:  cfg.KeyPointMaxChars,
	}
	if s.maxSentences <= 0 {
		s.maxSentences = def.MaxSummarySentences
	}
	if s.maxKeyPoints <= 0 {
		s.maxKeyPoints = def.MaxKeyPoints
	}
	if s.maxPointLen <= 0 {
		s.maxPointLen = def.KeyPointMaxChars
	}
	return s
}

// Summarize picks min(maxSentences, 20% of the document, at least 1)
// sentences by score. An empty document yields an empty summary and no
// key points.
func (s *Summarizer) Summarize(scored []model.ScoredSentence) (summary string, keyPoints []string) {
	if len(scored) == 0 {
		return "", nil
	}

	n := len(scored) / 5
	if n < 1 {
		n = 1
	}
	if n > s.maxSentences {
		n = s.maxSentences
	}

	selected := make([]model.ScoredSentence, len(scored))
	copy(selected, scored)
	sort.SliceStable(selected, func(a, b int) bool { return selected[a].Rank < selected[b].Rank })
	selected = selected[:n]

	// Key points first: the selection is already in score order.
	for i := 0; i < len(selected) && i < s.maxKeyPoints; i++ {
		keyPoints = append(keyPoints, truncate(strings.TrimSpace(selected[i].Sentence.Text), s.maxPointLen))
	}

	// Summary restores document order so it reads naturally.
	sort.SliceStable(selected, func(a, b int) bool {
		return selected[a].Sentence.Index < selected[b].Sentence.Index
	})
	parts := make([]string, len(selected))
	for i, sc := range selected {
		parts[i] = strings.TrimSpace(sc.Sentence.Text)
	}

	return strings.Join(parts, " "), keyPoints
}

// truncate shortens s to max characters at a rune boundary, appending an
// ellipsis marker when anything was cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max]), " ") + "..."
}
