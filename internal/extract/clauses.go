// Package extract implements the pattern-driven detectors: clauses,
// definitions, and obligations. All vocabularies and patterns are fixed at
// construction time and read-only afterwards, so detectors are safe to share
// across concurrent analyses.
package extract

import (
	"regexp"
	"strings"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
)

// ClauseDetector scans segments for clause markers and groups the text
// between markers into clause bodies.
type ClauseDetector struct {
	marker *regexp.Regexp
}

// NewClauseDetector creates a detector for the common legal marker shapes:
// "Article 2", "Section 3.1", "Clause 4a", and bare numbered headings like
// "1. Termination".
func NewClauseDetector() *ClauseDetector {
	return &ClauseDetector{
		// Alternative 1: labeled keyword + number/letter.
		// Alternative 2: bare numeral + period + capitalized word.
		marker: regexp.MustCompile(`(?:(?i:Article|Section|Clause|Paragraph)\s+(\d+(?:\.\d+)*[A-Za-z]?))|(?:(\d+(?:\.\d+)*)\.\s+[A-Z])`),
	}
}

// markerHit is a validated clause marker occurrence.
type markerHit struct {
	segIdx       int
	headStart    int // byte offset of the marker within the segment
	contentStart int // byte offset where the clause content begins
	id           string
}

// Detect returns the flat, ordered clause list. Sub-numbering ("3.1" under
// "3") is a new top-level clause. A document without markers yields an
// empty list.
func (d *ClauseDetector) Detect(segments []model.Segment) []model.Clause {
	var hits []markerHit

	for si, seg := range segments {
		for _, m := range d.marker.FindAllStringSubmatchIndex(seg.Text, -1) {
			if !markerPosition(seg.Text, m[0]) {
				continue
			}
			hit := markerHit{segIdx: si, headStart: m[0]}
			if m[2] >= 0 { // labeled keyword
				hit.id = seg.Text[m[2]:m[3]]
				hit.contentStart = skipSeparators(seg.Text, m[3])
			} else { // bare numeral; the trailing capital belongs to the title
				hit.id = seg.Text[m[4]:m[5]]
				hit.contentStart = m[1] - 1
			}
			hits = append(hits, hit)
		}
	}

	if len(hits) == 0 {
		return nil
	}

	clauses := make([]model.Clause, 0, len(hits))
	for i, h := range hits {
		var next *markerHit
		if i+1 < len(hits) {
			next = &hits[i+1]
		}
		title, body := splitClauseContent(collectContent(segments, h, next))
		clauses = append(clauses, model.Clause{
			ID:       h.id,
			Title:    title,
			Body:     body,
			Position: i,
			Start:    segments[h.segIdx].Start + h.headStart,
		})
	}

	return clauses
}

// markerPosition reports whether a marker at byte offset pos may open a
// clause: at the segment start, or directly after a sentence terminator.
// Markers appearing mid-sentence never open a clause.
func markerPosition(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	j := pos
	for j > 0 && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	if j == 0 || j == pos {
		// Only whitespace before the marker, or marker glued to other text.
		return j == 0
	}
	switch s[j-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

// collectContent gathers the raw text pieces between one marker and the next
// (or the end of the document). The first piece is the remainder of the
// marker's own segment.
func collectContent(segments []model.Segment, h markerHit, next *markerHit) []string {
	endSeg := len(segments) - 1
	endOff := len(segments[endSeg].Text)
	if next != nil {
		endSeg = next.segIdx
		endOff = next.headStart
	}

	var pieces []string
	if h.segIdx == endSeg {
		pieces = append(pieces, strings.TrimSpace(segments[h.segIdx].Text[h.contentStart:endOff]))
		return pieces
	}

	pieces = append(pieces, strings.TrimSpace(segments[h.segIdx].Text[h.contentStart:]))
	for si := h.segIdx + 1; si < endSeg; si++ {
		pieces = append(pieces, segments[si].Text)
	}
	pieces = append(pieces, strings.TrimSpace(segments[endSeg].Text[:endOff]))
	return pieces
}

// splitClauseContent derives the optional title and the body from the
// content pieces. The title is the text after the marker up to the first
// sentence end; a heading-only marker line takes the following line as
// title when that line is itself heading-like (no sentence terminator).
func splitClauseContent(pieces []string) (title, body string) {
	var rest []string

	switch {
	case len(pieces) > 0 && pieces[0] != "":
		head := pieces[0]
		if cut := sentenceEnd(head); cut >= 0 {
			title = head[:cut]
			if tail := strings.TrimSpace(head[cut+1:]); tail != "" {
				rest = append(rest, tail)
			}
		} else {
			title = head
		}
		rest = append(rest, pieces[1:]...)
	case len(pieces) > 1 && sentenceEnd(pieces[1]) < 0:
		title = pieces[1]
		rest = pieces[2:]
	default:
		if len(pieces) > 1 {
			rest = pieces[1:]
		}
	}

	title = strings.TrimRight(strings.TrimSpace(title), ":.")
	var nonEmpty []string
	for _, p := range rest {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	body = strings.TrimSpace(strings.Join(nonEmpty, " "))
	return title, body
}

// sentenceEnd returns the byte offset of the first sentence terminator that
// is followed by whitespace or ends the string, or -1.
func sentenceEnd(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', '!', '?':
			if i+1 >= len(s) || s[i+1] == ' ' || s[i+1] == '\t' {
				return i
			}
		}
	}
	return -1
}

// skipSeparators advances past the punctuation that conventionally follows
// a clause label (":", ".", whitespace).
func skipSeparators(s string, i int) int {
	for i < len(s) && (s[i] == ':' || s[i] == '.' || s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}
