// Package docxtract extracts the paragraphs and tables of a DOCX document
// into a JSON-ready record.
//
// Basic usage:
//
//	res, warnings, err := docxtract.Open("report.docx").Extract()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docxtract.FormatWarnings(warnings))
//	}
//	err = docxtract.WriteJSON("report.json", res)
//
// With options:
//
//	res, _, err := docxtract.Open("report.docx").
//	    WithStats().
//	    WithParagraphIndex().
//	    Limit(100, 20).
//	    Extract()
//
// The whole load, extract, summarize and write sequence is available as
// a single call through [Run] with a [Job].
package docxtract

import (
	"github.com/tsawler/docxtract/docx"
)

// Open returns an Extractor for the DOCX file at filename.
// The file is opened lazily by the terminal operation, which also closes
// it.
//
// Example:
//
//	res, _, err := docxtract.Open("document.docx").Extract()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor from an already-opened docx.Reader.
// The caller is responsible for closing the reader.
//
// Example:
//
//	r, err := docxtract.Load("document.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	res, _, err := docxtract.FromReader(r).Extract()
func FromReader(r *docx.Reader) *Extractor {
	return &Extractor{
		reader:       r,
		ownsReader:   false,
		readerOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustExtract is a helper that wraps a call to Extract() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	res := docxtract.MustExtract(docxtract.Open("document.docx").Extract())
func MustExtract[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
