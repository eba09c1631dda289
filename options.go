package docxtract

// Limits used by the summary extraction.
const (
	DefaultMaxParagraphs = 100
	DefaultMaxTables     = 20
)

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Emit the stats block.
	includeStats bool

	// Emit each paragraph's position in the document.
	paragraphIndex bool

	// Truncation; 0 keeps everything.
	maxParagraphs int
	maxTables     int
}

// defaultOptions returns the default extraction options: the plain
// extraction with no stats, no paragraph indexes and no truncation.
func defaultOptions() ExtractOptions {
	return ExtractOptions{}
}

// PlainOptions returns the options of the plain extraction: full
// paragraph and table sequences, no stats, no paragraph indexes.
func PlainOptions() ExtractOptions {
	return defaultOptions()
}

// SummaryOptions returns the options of the summary extraction: stats,
// paragraph indexes, at most 100 paragraphs and 20 tables.
func SummaryOptions() ExtractOptions {
	return ExtractOptions{
		includeStats:   true,
		paragraphIndex: true,
		maxParagraphs:  DefaultMaxParagraphs,
		maxTables:      DefaultMaxTables,
	}
}

// IncludeStats reports whether the stats block is emitted.
func (o ExtractOptions) IncludeStats() bool { return o.includeStats }

// ParagraphIndex reports whether paragraph indexes are emitted.
func (o ExtractOptions) ParagraphIndex() bool { return o.paragraphIndex }

// Limits returns the paragraph and table limits; 0 means unlimited.
func (o ExtractOptions) Limits() (paragraphs, tables int) {
	return o.maxParagraphs, o.maxTables
}

// WithStats returns a copy of o with the stats block switched on or off.
func (o ExtractOptions) WithStats(on bool) ExtractOptions {
	o.includeStats = on
	return o
}

// WithParagraphIndex returns a copy of o with paragraph indexes switched
// on or off.
func (o ExtractOptions) WithParagraphIndex(on bool) ExtractOptions {
	o.paragraphIndex = on
	return o
}

// WithLimits returns a copy of o with the given truncation limits.
// Negative values are treated as 0 (unlimited).
func (o ExtractOptions) WithLimits(paragraphs, tables int) ExtractOptions {
	o.maxParagraphs = max(paragraphs, 0)
	o.maxTables = max(tables, 0)
	return o
}
