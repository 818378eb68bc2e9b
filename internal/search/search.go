// Package search implements literal, case-insensitive keyword search with
// context windows around every match.
package search

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// Searcher finds keyword occurrences and extracts surrounding context.
type Searcher struct {
	window        int // bytes of context before and after a match
	maxPerKeyword int // 0 = unlimited
}

// NewSearcher creates a searcher from the analyzer configuration.
func NewSearcher(cfg model.AnalyzerConfig) *Searcher {
	window := cfg.ContextWindow
	if window <= 0 {
		window = model.DefaultConfig().Analyzer.ContextWindow
	}
	return &Searcher{window: window, maxPerKeyword: cfg.MaxMatchesPerKeyword}
}

// Search scans text for every keyword. Matching is case-insensitive, and
// overlapping occurrences of the same keyword each produce their own
// context entry. Snippets are returned in document order with the match
// highlighted.
func (s *Searcher) Search(text string, keywords []string) *model.SearchResult {
	result := &model.SearchResult{
		Keywords: keywords,
		Matches:  make(map[string][]string),
	}

	for _, keyword := range keywords {
		kw := strings.TrimSpace(keyword)
		if kw == "" {
			continue
		}
		if _, done := result.Matches[keyword]; done {
			continue // duplicate keyword in the query
		}

		// Match against the original text, not a lowered copy: lowering
		// can change byte lengths (İ -> i) and would skew every offset
		// after the first width-changing rune.
		re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw))

		var snippets []string
		for pos := 0; pos < len(text); {
			loc := re.FindStringIndex(text[pos:])
			if loc == nil {
				break
			}
			from, to := pos+loc[0], pos+loc[1]
			snippets = append(snippets, s.snippet(text, from, to))
			pos = from + 1 // advance one byte so overlapping matches are found
		}

		if s.maxPerKeyword > 0 && len(snippets) > s.maxPerKeyword {
			snippets = snippets[:s.maxPerKeyword]
		}
		if len(snippets) > 0 {
			result.Matches[keyword] = snippets
			result.TotalMatches += len(snippets)
		}
	}

	return result
}

// snippet extracts the context window around the match at [from, to),
// clipped to the document and rounded to rune boundaries so no code point
// is split. The match itself is wrapped in ** markers.
func (s *Searcher) snippet(text string, from, to int) string {
	start := from - s.window
	if start < 0 {
		start = 0
	}
	end := to + s.window
	if end > len(text) {
		end = len(text)
	}
	for start < from && !utf8.RuneStart(text[start]) {
		start++
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return strings.TrimSpace(text[start:from] + "**" + text[from:to] + "**" + text[to:end])
}
