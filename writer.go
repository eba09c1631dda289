package docxtract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// EncodeJSON writes v as JSON indented by two spaces. Non-ASCII text,
// including U+2028 and U+2029, and the characters <, > and & are written
// as-is rather than escaped. No newline follows the closing brace.
func EncodeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	// Encode always terminates the value with a newline.
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	data = unescapeLineSeparators(data)
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into the raw characters. Escaped
// backslashes are copied as pairs so a literal "\\u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 >= len(data) {
			out = append(out, data[i])
			continue
		}
		if i+5 < len(data) && data[i+1] == 'u' && string(data[i+2:i+5]) == "202" &&
			(data[i+5] == '8' || data[i+5] == '9') {
			out = utf8.AppendRune(out, rune(0x2020+int(data[i+5]-'0')))
			i += 5
			continue
		}
		out = append(out, data[i], data[i+1])
		i++
	}
	return out
}

// WriteJSON encodes v into the file at path, creating or truncating it.
// A failure part way through can leave a partial file behind.
func WriteJSON(path string, v any) error {
	// Encode first so an unencodable value never truncates an existing file.
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, v); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("%w: writing %s: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", ErrIO, path, err)
	}
	return nil
}

// DefaultOutputPath returns input with its extension replaced by ".json".
// Leading dots of the file name do not start an extension, so ".docx"
// becomes ".docx.json".
func DefaultOutputPath(input string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(input)
	if ext == "" || strings.TrimLeft(base, ".") == strings.TrimLeft(ext, ".") {
		return input + ".json"
	}
	return strings.TrimSuffix(input, ext) + ".json"
}
