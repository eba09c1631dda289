package docxtract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/tsawler/docxtract/docx"
	"github.com/tsawler/docxtract/format"
)

// Load opens the DOCX document at path.
//
// A missing path yields ErrFileNotFound. Directories, unreadable files,
// other container formats and corrupt packages yield ErrParse. The
// caller must Close the returned reader.
func Load(path string) (*docx.Reader, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", ErrParse, path)
	}

	f, err := detectFormat(path, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	if f != format.DOCX {
		return nil, fmt.Errorf("%w: %s: %s", ErrParse, path, describeFormat(f, format.Detect(path)))
	}

	r, err := docx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}
	return r, nil
}

// detectFormat sniffs the container format of the file at path.
func detectFormat(path string, size int64) (format.Format, error) {
	file, err := os.Open(path)
	if err != nil {
		return format.Unknown, err
	}
	defer file.Close()

	return format.DetectFromReader(file, size)
}

// describeFormat explains why a detected format is not accepted. named
// is the format the file name suggests.
func describeFormat(f, named format.Format) string {
	switch f {
	case format.DOC:
		return "legacy Word 97-2003 document, convert it to .docx first"
	case format.ZIP:
		return "ZIP archive without a word/ part, not a DOCX document"
	case format.Unknown:
		if named == format.DOCX {
			return "not a DOCX document, the content is not a ZIP package"
		}
		return "not a DOCX document"
	default:
		return fmt.Sprintf("input is a %s (%s) file, not a DOCX document", f, f.Extension())
	}
}
