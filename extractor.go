package docxtract

import (
	"fmt"

	"github.com/tsawler/docxtract/docx"
	"github.com/tsawler/docxtract/model"
)

// Extractor provides a fluent interface for extracting paragraphs and
// tables from a DOCX file.
// Each configuration method returns a new Extractor instance, so a
// configured Extractor can be reused as a template.
type Extractor struct {
	// Source
	filename string

	reader *docx.Reader

	// Lifecycle
	ownsReader   bool // true if we opened the reader and should close it
	readerOpened bool // true if reader has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor.
// ExtractOptions has no reference fields, so a value copy is enough.
func (e *Extractor) clone() *Extractor {
	newExt := *e
	return &newExt
}

// ensureReader opens the reader if not already open.
func (e *Extractor) ensureReader() error {
	if e.readerOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	r, err := Load(e.filename)
	if err != nil {
		return err
	}
	e.reader = r
	e.ownsReader = true
	e.readerOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times. Readers passed to FromReader
// are left open.
func (e *Extractor) Close() error {
	if e.ownsReader && e.reader != nil {
		err := e.reader.Close()
		e.reader = nil
		e.ownsReader = false
		e.readerOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// WithOptions replaces all options at once, typically with
// SummaryOptions() or PlainOptions().
//
// Example:
//
//	res, _, err := docxtract.Open("report.docx").WithOptions(docxtract.SummaryOptions()).Extract()
func (e *Extractor) WithOptions(opts ExtractOptions) *Extractor {
	newExt := e.clone()
	newExt.options = opts
	return newExt
}

// WithStats adds the stats block (paragraph and table counts) to the
// result.
func (e *Extractor) WithStats() *Extractor {
	newExt := e.clone()
	newExt.options = newExt.options.WithStats(true)
	return newExt
}

// WithParagraphIndex records each paragraph's position in the document.
func (e *Extractor) WithParagraphIndex() *Extractor {
	newExt := e.clone()
	newExt.options = newExt.options.WithParagraphIndex(true)
	return newExt
}

// Limit keeps at most the first paragraphs paragraphs and tables tables.
// Zero means unlimited. Stats always count the whole document.
//
// Example:
//
//	res, _, err := docxtract.Open("doc.docx").Limit(100, 20).Extract()
func (e *Extractor) Limit(paragraphs, tables int) *Extractor {
	newExt := e.clone()
	if paragraphs < 0 || tables < 0 {
		newExt.err = fmt.Errorf("invalid limits %d/%d: must not be negative", paragraphs, tables)
		return newExt
	}
	newExt.options = newExt.options.WithLimits(paragraphs, tables)
	return newExt
}

// Options returns the configured options.
func (e *Extractor) Options() ExtractOptions {
	return e.options
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Extract walks the document's paragraphs and tables and builds the
// result. Readers opened by the Extractor are closed before it returns.
// Warnings flag tables whose rows do not all match the first row's cell
// count.
func (e *Extractor) Extract() (*model.Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	if err := e.ensureReader(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return extract(e.reader, e.options)
}

// extract builds a result from an open reader.
func extract(r *docx.Reader, opts ExtractOptions) (*model.Result, []Warning, error) {
	paragraphs := r.Paragraphs()
	tables := r.Tables()

	res := model.NewResult()
	var warnings []Warning

	nonEmpty := 0
	for i, p := range paragraphs {
		if model.IsBlank(p.Text) {
			continue
		}
		nonEmpty++
		para := model.NewParagraph(i, p.Text)
		if !opts.paragraphIndex {
			para = para.WithoutIndex()
		}
		res.Paragraphs = append(res.Paragraphs, para)
	}

	for i, t := range tables {
		data := make([][]string, 0, len(t.Rows))
		for _, row := range t.Rows {
			data = append(data, row.Texts())
		}
		table := model.NewTable(i, data)
		if table.IsRagged() {
			warnings = append(warnings, Warning{
				Table:   i,
				Message: fmt.Sprintf("rows have differing cell counts, columns reports the first row (%d)", table.Columns),
			})
		}
		res.Tables = append(res.Tables, table)
	}

	if opts.includeStats {
		res.Stats = &model.Stats{
			TotalParagraphs:    len(paragraphs),
			TotalTables:        len(tables),
			NonEmptyParagraphs: nonEmpty,
		}
	}

	if opts.maxParagraphs > 0 && len(res.Paragraphs) > opts.maxParagraphs {
		res.Paragraphs = res.Paragraphs[:opts.maxParagraphs]
	}
	if opts.maxTables > 0 && len(res.Tables) > opts.maxTables {
		res.Tables = res.Tables[:opts.maxTables]
	}

	if err := res.Validate(); err != nil {
		return nil, warnings, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return res, warnings, nil
}
