// Package analyzer wires the splitter, detectors, scorer, and summarizer
// into the two engine entry points: Analyze and Search. Both are pure
// functions of their inputs; all components are read-only after
// construction, so one Analyzer may serve concurrent analyses.
package analyzer

import (
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/extract"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/score"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/search"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/split"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/summarize"
)

// Analyzer is the text analysis engine.
type Analyzer struct {
	clauses     *extract.ClauseDetector
	definitions *extract.DefinitionExtractor
	obligations *extract.ObligationDetector
	scorer      *score.Scorer
	summarizer  *summarize.Summarizer
	searcher    *search.Searcher
	cfg         model.AnalyzerConfig
}

// New creates an analyzer. A zero-value config selects the defaults.
func New(cfg model.AnalyzerConfig) *Analyzer {
	return &Analyzer{
		clauses:     extract.NewClauseDetector(),
		definitions: extract.NewDefinitionExtractor(),
		obligations: extract.NewObligationDetector(),
		scorer:      score.NewScorer(),
		summarizer:  summarize.NewSummarizer(cfg),
		searcher:    search.NewSearcher(cfg),
		cfg:         cfg,
	}
}

// Analyze produces the complete structural analysis of one document.
// Empty or unparseable text is not an error: every list comes back empty
// and the summary is "".
func (a *Analyzer) Analyze(text string) *model.AnalysisResult {
	// 1. Normalize into sentences and line segments
	sentences := split.Sentences(text)
	segments := split.Segments(text)

	// 2. Run the independent detectors
	clauses := a.clauses.Detect(segments)
	definitions := a.definitions.Extract(sentences)
	obligations := a.obligations.Detect(sentences)

	// 3. Score and summarize
	scored := a.scorer.Score(sentences)
	summary, keyPoints := a.summarizer.Summarize(scored)

	// 4. Apply display caps and assemble the immutable result
	if max := a.cfg.MaxDefinitions; max > 0 && len(definitions) > max {
		definitions = definitions[:max]
	}
	if max := a.cfg.MaxObligations; max > 0 && len(obligations) > max {
		obligations = obligations[:max]
	}

	return &model.AnalysisResult{
		WordCount:   split.WordCount(text),
		TextLength:  len(text),
		Clauses:     emptyNotNil(clauses),
		Definitions: emptyNotNil(definitions),
		Obligations: emptyNotNil(obligations),
		Summary:     summary,
		KeyPoints:   emptyNotNil(keyPoints),
	}
}

// Search finds every keyword occurrence with surrounding context.
func (a *Analyzer) Search(text string, keywords []string) *model.SearchResult {
	return a.searcher.Search(text, keywords)
}

// emptyNotNil keeps JSON renderings stable: absent results serialize as []
// rather than null.
func emptyNotNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
