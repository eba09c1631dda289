package docxtract

import "errors"

// Errors returned by Load, Extract and WriteJSON. They are wrapped with
// the path and cause, so test for them with errors.Is.
var (
	// ErrFileNotFound means the input path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrParse means the input exists but is not a readable DOCX document.
	ErrParse = errors.New("cannot parse document")

	// ErrIO means the output could not be written.
	ErrIO = errors.New("cannot write output")
)
