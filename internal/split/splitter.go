// Package split normalizes raw document text into sentences and line
// segments, preserving byte offsets into the original text.
package split

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// Sentences splits text on sentence-terminal punctuation (., !, ?) followed
// by whitespace or end of input. Abbreviations ("Inc.", "U.S.") are not
// disambiguated; the split is best-effort by contract. Empty input yields
// an empty slice.
func Sentences(text string) []model.Sentence {
	var sentences []model.Sentence
	start := -1 // byte offset where the current sentence begins, -1 = between sentences

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if start == -1 && !unicode.IsSpace(r) {
			start = i
		}

		if start != -1 && (r == '.' || r == '!' || r == '?') {
			end := i + size
			if end >= len(text) || spaceAt(text, end) {
				sentences = appendSentence(sentences, text, start, end)
				start = -1
			}
		}

		i += size
	}

	// Trailing text without a terminator still counts as a sentence.
	if start != -1 {
		raw := strings.TrimRightFunc(text[start:], unicode.IsSpace)
		if raw != "" {
			sentences = appendSentence(sentences, text, start, start+len(raw))
		}
	}

	return sentences
}

func appendSentence(sentences []model.Sentence, text string, start, end int) []model.Sentence {
	s := text[start:end]
	if strings.TrimSpace(s) == "" {
		return sentences
	}
	return append(sentences, model.Sentence{
		Index:     len(sentences),
		Text:      s,
		Start:     start,
		End:       end,
		WordCount: len(strings.Fields(s)),
	})
}

// Segments splits text on newlines, discarding blank lines. Offsets point
// at the trimmed line content.
func Segments(text string) []model.Segment {
	var segments []model.Segment
	lineStart := 0

	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}

		line := text[lineStart:i]
		left := strings.TrimLeftFunc(line, unicode.IsSpace)
		start := lineStart + (len(line) - len(left))
		trimmed := strings.TrimRightFunc(left, unicode.IsSpace)
		if trimmed != "" {
			segments = append(segments, model.Segment{
				Text:  trimmed,
				Start: start,
				End:   start + len(trimmed),
			})
		}

		lineStart = i + 1
	}

	return segments
}

// WordCount counts whitespace-delimited words in the whole document.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func spaceAt(text string, i int) bool {
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r)
}
