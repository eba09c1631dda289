package docxtract

import (
	"fmt"
	"strings"
)

// Warning describes a condition that did not stop extraction but makes
// part of the result less faithful to the document.
type Warning struct {
	// Table is the index of the table concerned, or -1.
	Table   int
	Message string
}

func (w Warning) String() string {
	if w.Table >= 0 {
		return fmt.Sprintf("table %d: %s", w.Table, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
