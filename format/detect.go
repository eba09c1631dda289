// Package format identifies the container format of an input file so that
// non-DOCX input can be rejected with a precise message before parsing.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a document container format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// DOC indicates a legacy Word 97-2003 (.doc) compound file.
	DOC
	// PDF indicates a PDF document.
	PDF
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// ZIP indicates a ZIP archive that is none of the above.
	ZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case PDF:
		return "PDF"
	case ODT:
		return "ODT"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case PDF:
		return ".pdf"
	case ODT:
		return ".odt"
	case XLSX:
		return ".xlsx"
	case PPTX:
		return ".pptx"
	case ZIP:
		return ".zip"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".doc":
		return DOC
	case ".pdf":
		return PDF
	case ".odt":
		return ODT
	case ".xlsx":
		return XLSX
	case ".pptx":
		return PPTX
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

var (
	pdfMagic = []byte("%PDF")
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFromMagic checks file magic bytes to determine format.
// ZIP archives report Unknown because their format depends on the parts
// they contain; use DetectFromReader for those.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		return PDF
	case bytes.HasPrefix(data, cfbMagic):
		return DOC
	default:
		return Unknown
	}
}

// DetectFromReader inspects the content to determine format.
// This is more reliable than extension-based detection and can
// distinguish between the ZIP-based formats.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 8)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat inspects a ZIP archive to determine if it's DOCX, XLSX, PPTX, ODT, etc.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	// OpenDocument archives name their type in a mimetype part.
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		data := make([]byte, 256)
		n, _ := io.ReadFull(rc, data)
		rc.Close()
		if strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.text") {
			return ODT, nil
		}
	}

	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX, nil
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX, nil
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX, nil
		}
	}

	return ZIP, nil
}
