package extract

import (
	"testing"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/split"
)

func TestObligationDetector_Mandatory(t *testing.T) {
	text := "The Supplier shall deliver the goods by the first of each month."
	detector := NewObligationDetector()

	obligations := detector.Detect(split.Sentences(text))
	if len(obligations) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obligations))
	}
	if obligations[0].Strength != model.StrengthMandatory {
		t.Errorf("expected mandatory, got %s", obligations[0].Strength)
	}
	if obligations[0].Keyword != "shall" {
		t.Errorf("expected keyword shall, got %q", obligations[0].Keyword)
	}
	if obligations[0].Sentence != 0 {
		t.Errorf("expected sentence index 0, got %d", obligations[0].Sentence)
	}
}

func TestObligationDetector_Discretionary(t *testing.T) {
	text := "The Client may request up to two rounds of revisions."
	detector := NewObligationDetector()

	obligations := detector.Detect(split.Sentences(text))
	if len(obligations) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obligations))
	}
	if obligations[0].Strength != model.StrengthDiscretionary {
		t.Errorf("expected discretionary, got %s", obligations[0].Strength)
	}
	if obligations[0].Keyword != "may" {
		t.Errorf("expected keyword may, got %q", obligations[0].Keyword)
	}
}

func TestObligationDetector_StrongBeatsWeak(t *testing.T) {
	text := "The Contractor shall comply with all laws and may subcontract parts of the work."
	detector := NewObligationDetector()

	obligations := detector.Detect(split.Sentences(text))
	if len(obligations) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obligations))
	}
	if obligations[0].Strength != model.StrengthMandatory {
		t.Errorf("expected mandatory when both keyword classes appear, got %s", obligations[0].Strength)
	}
}

func TestObligationDetector_MultiWordKeywordNormalized(t *testing.T) {
	text := "The Buyer IS REQUIRED TO pay within thirty days."
	detector := NewObligationDetector()

	obligations := detector.Detect(split.Sentences(text))
	if len(obligations) != 1 {
		t.Fatalf("expected 1 obligation, got %d", len(obligations))
	}
	if obligations[0].Keyword != "is required to" {
		t.Errorf("expected lowercased keyword %q, got %q", "is required to", obligations[0].Keyword)
	}
}

func TestObligationDetector_NoModalLanguage(t *testing.T) {
	text := "This Agreement is effective as of the date above. The schedule lists all deliverables."
	detector := NewObligationDetector()

	if obligations := detector.Detect(split.Sentences(text)); len(obligations) != 0 {
		t.Errorf("expected no obligations, got %d", len(obligations))
	}
}

func TestObligationDetector_DocumentOrder(t *testing.T) {
	text := "The Vendor must maintain insurance. Pricing is listed in Exhibit B. Either party may terminate on notice."
	detector := NewObligationDetector()

	obligations := detector.Detect(split.Sentences(text))
	if len(obligations) != 2 {
		t.Fatalf("expected 2 obligations, got %d", len(obligations))
	}
	if obligations[0].Sentence != 0 || obligations[0].Strength != model.StrengthMandatory {
		t.Errorf("unexpected first obligation: sentence %d, strength %s", obligations[0].Sentence, obligations[0].Strength)
	}
	if obligations[1].Sentence != 2 || obligations[1].Strength != model.StrengthDiscretionary {
		t.Errorf("unexpected second obligation: sentence %d, strength %s", obligations[1].Sentence, obligations[1].Strength)
	}
}
