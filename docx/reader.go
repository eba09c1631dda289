// Package docx provides DOCX (Office Open XML) document parsing.
//
// The reader exposes the two body-level collections a word processor
// shows: the paragraph sequence and the table sequence. Text is plain,
// with no formatting.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

// Package part names, relationship types and content types.
const (
	contentTypesPart = "[Content_Types].xml"
	packageRelsPart  = "_rels/.rels"
	defaultMainPart  = "word/document.xml"

	relTypeOfficeDocument       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeStrictOfficeDocument = "http://purl.oclc.org/ooxml/officeDocument/relationships/officeDocument"

	contentTypeDocumentMain = "application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"
)

// Reader provides access to DOCX document content.
type Reader struct {
	zipReader  *zip.ReadCloser
	mainPart   string
	document   *documentXML
	paragraphs []ParsedParagraph
	tables     []ParsedTable
}

// ParsedParagraph holds the text of a body-level paragraph.
type ParsedParagraph struct {
	Text string
}

// Open opens a DOCX file for reading.
// The main document part is located through the package relationships,
// falling back to word/document.xml, and must carry the Word document
// content type. Macro-enabled documents and templates are rejected.
// The whole part is parsed before Open returns, so any malformed
// paragraph or table fails the call.
func Open(filename string) (*Reader, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	r := &Reader{
		zipReader: zr,
	}

	if err := r.validate(); err != nil {
		zr.Close()
		return nil, err
	}

	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	return r, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// MainPart returns the name of the part the body was read from.
func (r *Reader) MainPart() string {
	return r.mainPart
}

// validate checks that the package has content types and a Word main
// document part, and records where that part lives.
func (r *Reader) validate() error {
	if r.findFile(contentTypesPart) == nil {
		return fmt.Errorf("missing required file: %s", contentTypesPart)
	}

	main, err := r.resolveMainPart()
	if err != nil {
		return err
	}
	if r.findFile(main) == nil {
		return fmt.Errorf("missing required file: %s", main)
	}

	data, err := r.getFileContent(contentTypesPart)
	if err != nil {
		return err
	}
	var types contentTypesXML
	if err := xml.Unmarshal(data, &types); err != nil {
		return fmt.Errorf("unmarshaling %s: %w", contentTypesPart, err)
	}
	if ct := types.lookup(main); ct != contentTypeDocumentMain {
		if ct == "" {
			return fmt.Errorf("%s has no content type", main)
		}
		return fmt.Errorf("not a Word document, content type of %s is %q", main, ct)
	}

	r.mainPart = main
	return nil
}

// resolveMainPart follows the officeDocument relationship of the package.
// Packages without _rels/.rels, or without that relationship, use
// word/document.xml.
func (r *Reader) resolveMainPart() (string, error) {
	if r.findFile(packageRelsPart) == nil {
		return defaultMainPart, nil
	}

	data, err := r.getFileContent(packageRelsPart)
	if err != nil {
		return "", err
	}
	var rels relationshipsXML
	if err := xml.Unmarshal(data, &rels); err != nil {
		return "", fmt.Errorf("unmarshaling %s: %w", packageRelsPart, err)
	}

	for _, rel := range rels.Relationships {
		if rel.Type != relTypeOfficeDocument && rel.Type != relTypeStrictOfficeDocument {
			continue
		}
		if strings.EqualFold(rel.TargetMode, "External") {
			continue
		}
		return partName(rel.Target), nil
	}
	return defaultMainPart, nil
}

// partName turns a relationship target of the package root into a ZIP
// entry name.
func partName(target string) string {
	return strings.TrimPrefix(path.Clean("/"+target), "/")
}

// findFile returns the ZIP entry with the given name. Part names are
// case-insensitive.
func (r *Reader) findFile(name string) *zip.File {
	for _, f := range r.zipReader.File {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	f := r.findFile(name)
	if f == nil {
		return nil, fmt.Errorf("file not found: %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Paragraphs returns the body-level paragraphs in document order,
// including empty ones.
func (r *Reader) Paragraphs() []ParsedParagraph {
	return r.paragraphs
}

// Tables returns the body-level tables in document order.
func (r *Reader) Tables() []ParsedTable {
	return r.tables
}

// parseDocument parses the main document content.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent(r.mainPart)
	if err != nil {
		return err
	}

	r.document = &documentXML{}
	if err := xml.Unmarshal(data, r.document); err != nil {
		return fmt.Errorf("unmarshaling %s: %w", r.mainPart, err)
	}

	r.processParagraphs()
	return r.processTables()
}

// processParagraphs processes all paragraphs in the document.
func (r *Reader) processParagraphs() {
	if r.document.Body == nil {
		r.paragraphs = []ParsedParagraph{}
		return
	}

	r.paragraphs = make([]ParsedParagraph, 0, len(r.document.Body.Paragraphs))
	for _, p := range r.document.Body.Paragraphs {
		r.paragraphs = append(r.paragraphs, ParsedParagraph{Text: p.Text()})
	}
}

// processTables lays out all tables in the document.
func (r *Reader) processTables() error {
	if r.document.Body == nil {
		r.tables = []ParsedTable{}
		return nil
	}

	tp := NewTableParser()
	r.tables = make([]ParsedTable, 0, len(r.document.Body.Tables))
	for i, tbl := range r.document.Body.Tables {
		parsed, err := tp.ParseTable(tbl)
		if err != nil {
			return fmt.Errorf("table %d: %w", i, err)
		}
		r.tables = append(r.tables, parsed)
	}
	return nil
}
