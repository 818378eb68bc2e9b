package extract

import (
	"regexp"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// ObligationDetector flags sentences containing modal obligation language
// and classifies their strength. The vocabularies are fixed; a sentence
// containing any strong keyword is mandatory even when weak keywords are
// also present, and a sentence containing neither is not an obligation.
type ObligationDetector struct {
	strong *regexp.Regexp
	weak   *regexp.Regexp
}

// NewObligationDetector creates a detector with the fixed modal vocabulary.
func NewObligationDetector() *ObligationDetector {
	return &ObligationDetector{
		strong: regexp.MustCompile(`(?i)\b(shall|must|is\s+obligated\s+to|is\s+required\s+to|agrees\s+to)\b`),
		weak:   regexp.MustCompile(`(?i)\b(may|is\s+entitled\s+to|at\s+(?:its|their)\s+(?:sole\s+)?discretion)\b`),
	}
}

// Detect returns the obligations found in the sentence sequence, in
// document order.
func (d *ObligationDetector) Detect(sentences []model.Sentence) []model.Obligation {
	var obligations []model.Obligation

	for _, s := range sentences {
		if kw := d.strong.FindString(s.Text); kw != "" {
			obligations = append(obligations, newObligation(s, kw, model.StrengthMandatory))
			continue
		}
		if kw := d.weak.FindString(s.Text); kw != "" {
			obligations = append(obligations, newObligation(s, kw, model.StrengthDiscretionary))
		}
	}

	return obligations
}

func newObligation(s model.Sentence, keyword string, strength model.ObligationStrength) model.Obligation {
	return model.Obligation{
		Sentence: s.Index,
		Text:     s.Text,
		Keyword:  strings.Join(strings.Fields(strings.ToLower(keyword)), " "),
		Strength: strength,
	}
}
