package model

import (
	"strings"
	"unicode/utf8"
)

// Paragraph is a non-empty body paragraph.
type Paragraph struct {
	// Index is the position in the document's paragraph sequence, counting
	// empty paragraphs. Nil when the extraction omits indexes.
	Index  *int   `json:"index,omitempty"`
	Text   string `json:"text"`
	Length int    `json:"length"`
}

// NewParagraph creates a paragraph record for text at the given position.
// The text is stored untrimmed and Length counts its characters (runes).
func NewParagraph(index int, text string) Paragraph {
	return Paragraph{
		Index:  &index,
		Text:   text,
		Length: utf8.RuneCountInString(text),
	}
}

// WithoutIndex returns a copy of p that carries no index.
func (p Paragraph) WithoutIndex() Paragraph {
	p.Index = nil
	return p
}

// Position returns the paragraph index, or -1 when it has none.
func (p Paragraph) Position() int {
	if p.Index == nil {
		return -1
	}
	return *p.Index
}

// IsBlank reports whether text is empty once leading and trailing
// whitespace is removed.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
