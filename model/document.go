package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Result is the structured record extracted from one document.
type Result struct {
	// Stats is nil for the plain extraction, which emits no stats block.
	Stats      *Stats      `json:"stats,omitempty"`
	Paragraphs []Paragraph `json:"paragraphs"`
	Tables     []Table     `json:"tables"`
}

// Stats holds document-wide counts taken before any truncation.
type Stats struct {
	TotalParagraphs    int `json:"total_paragraphs"`
	TotalTables        int `json:"total_tables"`
	NonEmptyParagraphs int `json:"non_empty_paragraphs"`
}

// NewResult creates an empty result with non-nil collections.
func NewResult() *Result {
	return &Result{
		Paragraphs: make([]Paragraph, 0),
		Tables:     make([]Table, 0),
	}
}

// Validate checks the invariants every extracted result satisfies.
func (r *Result) Validate() error {
	if r.Stats != nil {
		if r.Stats.NonEmptyParagraphs > r.Stats.TotalParagraphs {
			return fmt.Errorf("non_empty_paragraphs %d exceeds total_paragraphs %d",
				r.Stats.NonEmptyParagraphs, r.Stats.TotalParagraphs)
		}
		if len(r.Paragraphs) > r.Stats.NonEmptyParagraphs {
			return fmt.Errorf("%d paragraphs exceed non_empty_paragraphs %d",
				len(r.Paragraphs), r.Stats.NonEmptyParagraphs)
		}
		if len(r.Tables) > r.Stats.TotalTables {
			return fmt.Errorf("%d tables exceed total_tables %d", len(r.Tables), r.Stats.TotalTables)
		}
	}

	for i, p := range r.Paragraphs {
		if strings.TrimSpace(p.Text) == "" {
			return fmt.Errorf("paragraph %d: blank text", i)
		}
		if n := utf8.RuneCountInString(p.Text); p.Length != n {
			return fmt.Errorf("paragraph %d: length %d, text has %d characters", i, p.Length, n)
		}
	}

	for i, t := range r.Tables {
		if t.Rows != len(t.Data) {
			return fmt.Errorf("table %d: rows %d, data has %d rows", i, t.Rows, len(t.Data))
		}
		if t.Rows == 0 && t.Columns != 0 {
			return fmt.Errorf("table %d: %d columns without rows", i, t.Columns)
		}
	}

	return nil
}
