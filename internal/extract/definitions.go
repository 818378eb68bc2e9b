package extract

import (
	"regexp"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// DefinitionExtractor finds explicitly declared term definitions.
// Two patterns are recognized:
//
//  1. a quoted term followed by defining language:
//     "Confidential Information" means any non-public data ...
//  2. a capitalized term followed by a parenthetical defining clause:
//     Effective Date (meaning the date of last signature)
//
// Terms match case-sensitively, defining keywords case-insensitively.
type DefinitionExtractor struct {
	quoted *regexp.Regexp
	paren  *regexp.Regexp
}

// NewDefinitionExtractor creates an extractor with the fixed patterns.
func NewDefinitionExtractor() *DefinitionExtractor {
	return &DefinitionExtractor{
		quoted: regexp.MustCompile(`["“]([^"”]+)["”]\s+(?i:means|shall\s+mean|refers\s+to|is\s+defined\s+as)\s+`),
		// A bare parenthetical after a capitalized phrase matches far too
		// much ("Acme Corp (Delaware)"), so the parenthetical must open
		// with defining language.
		paren: regexp.MustCompile(`([A-Z][A-Za-z]*(?:\s+[A-Z][A-Za-z]*)*)\s+\(\s*(?i:meaning|i\.e\.|that\s+is|as\s+defined)[\s,]+([^)]+)\)`),
	}
}

// Extract scans sentences in order and emits one Definition per term.
// When the same term is matched twice the first occurrence wins: legal
// documents define a term once, and later matches are almost always the
// term being used near defining language rather than redefined.
func (e *DefinitionExtractor) Extract(sentences []model.Sentence) []model.Definition {
	var definitions []model.Definition
	seen := make(map[string]bool)

	add := func(term, def string, sentence int) {
		term = strings.TrimSpace(term)
		if term == "" || seen[term] {
			return
		}
		seen[term] = true
		definitions = append(definitions, model.Definition{
			Term:       term,
			Definition: strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(def), ".")),
			Sentence:   sentence,
		})
	}

	for _, s := range sentences {
		matches := e.quoted.FindAllStringSubmatchIndex(s.Text, -1)
		for i, m := range matches {
			// Definition text runs from the defining keyword to the next
			// quoted-term match or the sentence boundary.
			end := len(s.Text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			add(s.Text[m[2]:m[3]], s.Text[m[1]:end], s.Index)
		}

		for _, m := range e.paren.FindAllStringSubmatchIndex(s.Text, -1) {
			add(s.Text[m[2]:m[3]], s.Text[m[4]:m[5]], s.Index)
		}
	}

	return definitions
}
