package model

// Sentence is a single sentence produced by the splitter.
// Offsets are byte positions into the original text so downstream
// components can reconstruct surrounding context.
type Sentence struct {
	Index     int    `json:"index"`      // 0-based position in the document
	Text      string `json:"text"`       // Trimmed sentence text
	Start     int    `json:"start"`      // Byte offset of first character in source
	End       int    `json:"end"`        // Byte offset one past the last character
	WordCount int    `json:"word_count"` // Whitespace-delimited word count
}

// Segment is a non-blank line of the document with its offset range.
// Segments are the scanning unit for clause and definition detection.
type Segment struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}
