package model

// Clause is a labeled section of the document ("1.", "Article 2", "Section 3.1").
// Clauses never overlap and are ordered by the position of their marker.
type Clause struct {
	ID       string `json:"id"`              // Detected label, e.g. "1", "2.3"
	Title    string `json:"title,omitempty"` // Text after the marker up to the first sentence end
	Body     string `json:"body,omitempty"`  // Everything until the next marker
	Position int    `json:"position"`        // Ordinal position (0-based)
	Start    int    `json:"start"`           // Byte offset of the marker in source
}

// Definition maps an explicitly declared term to its defining text.
type Definition struct {
	Term       string `json:"term"`       // Case-preserving, trimmed
	Definition string `json:"definition"` // Explanatory text up to the sentence boundary
	Sentence   int    `json:"sentence"`   // Index of the source sentence
}

// ObligationStrength classifies the modal language of an obligation.
type ObligationStrength string

const (
	StrengthMandatory     ObligationStrength = "mandatory"     // shall, must, is required to...
	StrengthDiscretionary ObligationStrength = "discretionary" // may, is entitled to...
)

// Obligation is a sentence expressing a duty via modal language.
// Sentences without any modal keyword are never emitted.
type Obligation struct {
	Sentence int                `json:"sentence"` // Index of the source sentence
	Text     string             `json:"text"`
	Keyword  string             `json:"keyword"`  // The modal keyword that matched
	Strength ObligationStrength `json:"strength"` // Strong keywords always win ties
}

// ScoredSentence pairs a sentence with its importance score.
type ScoredSentence struct {
	Sentence Sentence `json:"sentence"`
	Score    float64  `json:"score"` // Non-negative, deterministic
	Rank     int      `json:"rank"`  // 0 = highest score
}

// AnalysisResult is the complete structural analysis of one document.
// It is built once per analysis and never mutated afterwards.
type AnalysisResult struct {
	WordCount   int          `json:"word_count"`
	TextLength  int          `json:"text_length"` // Bytes of source text
	Clauses     []Clause     `json:"clauses"`
	Definitions []Definition `json:"definitions"`
	Obligations []Obligation `json:"obligations"`
	Summary     string       `json:"summary"`
	KeyPoints   []string     `json:"key_points"`
}

// SearchResult holds keyword search hits with their context windows.
// Matches contains only keywords that occurred at least once; the queried
// keyword list is carried alongside so callers can tell "no match" apart
// from "not queried".
type SearchResult struct {
	Keywords     []string            `json:"keywords"`
	Matches      map[string][]string `json:"matches"` // keyword -> context snippets in document order
	TotalMatches int                 `json:"total_matches"`
}
