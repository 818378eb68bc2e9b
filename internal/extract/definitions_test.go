package extract

import (
	"testing"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/split"
)

func TestDefinitionExtractor_QuotedTerm(t *testing.T) {
	text := `The term "Confidential Information" means any non-public data disclosed by either party.`
	extractor := NewDefinitionExtractor()

	definitions := extractor.Extract(split.Sentences(text))
	if len(definitions) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(definitions))
	}
	if definitions[0].Term != "Confidential Information" {
		t.Errorf("expected term %q, got %q", "Confidential Information", definitions[0].Term)
	}
	want := "any non-public data disclosed by either party"
	if definitions[0].Definition != want {
		t.Errorf("expected definition %q, got %q", want, definitions[0].Definition)
	}
	if definitions[0].Sentence != 0 {
		t.Errorf("expected sentence index 0, got %d", definitions[0].Sentence)
	}
}

func TestDefinitionExtractor_DefiningKeywordsCaseInsensitive(t *testing.T) {
	text := `"Services" SHALL MEAN the consulting work described in Exhibit A. "Term" refers to the period of this agreement.`
	extractor := NewDefinitionExtractor()

	definitions := extractor.Extract(split.Sentences(text))
	if len(definitions) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(definitions))
	}
	if definitions[0].Term != "Services" {
		t.Errorf("expected term Services, got %q", definitions[0].Term)
	}
	if definitions[0].Definition != "the consulting work described in Exhibit A" {
		t.Errorf("unexpected definition: %q", definitions[0].Definition)
	}
	if definitions[1].Term != "Term" || definitions[1].Sentence != 1 {
		t.Errorf("expected Term in sentence 1, got %q in sentence %d", definitions[1].Term, definitions[1].Sentence)
	}
}

func TestDefinitionExtractor_FirstOccurrenceWins(t *testing.T) {
	text := `"Fees" means the amounts in Schedule 1. "Fees" means whatever the parties later agree.`
	extractor := NewDefinitionExtractor()

	definitions := extractor.Extract(split.Sentences(text))
	if len(definitions) != 1 {
		t.Fatalf("expected 1 definition after dedup, got %d", len(definitions))
	}
	if definitions[0].Definition != "the amounts in Schedule 1" {
		t.Errorf("expected the first definition to win, got %q", definitions[0].Definition)
	}
}

func TestDefinitionExtractor_TwoTermsInOneSentence(t *testing.T) {
	text := `"Buyer" means Acme Corp and "Seller" means Widget LLC.`
	extractor := NewDefinitionExtractor()

	definitions := extractor.Extract(split.Sentences(text))
	if len(definitions) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(definitions))
	}
	if definitions[0].Definition != "Acme Corp and" {
		t.Errorf("expected first definition to stop at the next term, got %q", definitions[0].Definition)
	}
	if definitions[1].Term != "Seller" || definitions[1].Definition != "Widget LLC" {
		t.Errorf("unexpected second definition: %q = %q", definitions[1].Term, definitions[1].Definition)
	}
}

func TestDefinitionExtractor_Parenthetical(t *testing.T) {
	text := "Payment hinges on the Effective Date (meaning the date of last signature). Fees exclude VAT (i.e., value added tax)."
	extractor := NewDefinitionExtractor()

	definitions := extractor.Extract(split.Sentences(text))
	if len(definitions) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(definitions))
	}
	if definitions[0].Term != "Effective Date" {
		t.Errorf("expected term %q, got %q", "Effective Date", definitions[0].Term)
	}
	if definitions[0].Definition != "the date of last signature" {
		t.Errorf("unexpected definition: %q", definitions[0].Definition)
	}
	if definitions[1].Term != "VAT" || definitions[1].Definition != "value added tax" {
		t.Errorf("unexpected second definition: %q = %q", definitions[1].Term, definitions[1].Definition)
	}
}

func TestDefinitionExtractor_PlainParentheticalIgnored(t *testing.T) {
	text := "Acme Corp (Delaware) sells widgets to Beta Inc (California)."
	extractor := NewDefinitionExtractor()

	if definitions := extractor.Extract(split.Sentences(text)); len(definitions) != 0 {
		t.Errorf("expected no definitions for plain parentheticals, got %d", len(definitions))
	}
}

func TestDefinitionExtractor_NoDefiningLanguage(t *testing.T) {
	text := "The parties will cooperate in good faith throughout the term."
	extractor := NewDefinitionExtractor()

	if definitions := extractor.Extract(split.Sentences(text)); len(definitions) != 0 {
		t.Errorf("expected no definitions, got %d", len(definitions))
	}
}
