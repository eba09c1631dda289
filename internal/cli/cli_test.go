package cli

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Quarterly report</w:t></w:r></w:p>
    <w:p/>
    <w:tbl>
      <w:tr><w:tc><w:p><w:r><w:t>Name</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>Total</w:t></w:r></w:p></w:tc></w:tr>
      <w:tr><w:tc><w:p><w:r><w:t>May</w:t></w:r></w:p></w:tc><w:tc><w:p><w:r><w:t>42</w:t></w:r></w:p></w:tc></w:tr>
    </w:tbl>
  </w:body>
</w:document>`

// writeTestDOCX writes a small two-part DOCX into dir.
func writeTestDOCX(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "report.docx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, content := range map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"word/document.xml":   testDocument,
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		w.Write([]byte(content))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return path
}

// execute runs the command tree with args and returns stdout, stderr and
// the error.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestExtract_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := writeTestDOCX(t, dir)

	stdout, stderr, err := execute(t, "extract", in)
	if err != nil {
		t.Fatalf("extract error = %v, stderr = %s", err, stderr)
	}

	out := filepath.Join(dir, "report.json")
	want := "Data saved to " + out + "\nData extraction completed successfully.\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	for _, s := range []string{`"text": "Quarterly report"`, `"columns": 2`, `"May"`} {
		if !strings.Contains(string(data), s) {
			t.Errorf("output missing %s:\n%s", s, data)
		}
	}
	if strings.Contains(string(data), `"stats"`) {
		t.Errorf("extract should not write stats by default:\n%s", data)
	}
}

func TestExtract_ExplicitOutputWithStats(t *testing.T) {
	dir := t.TempDir()
	in := writeTestDOCX(t, dir)
	out := filepath.Join(dir, "custom.json")

	if _, stderr, err := execute(t, "extract", "--stats", "--index", in, out); err != nil {
		t.Fatalf("extract error = %v, stderr = %s", err, stderr)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), `"total_paragraphs": 2`) {
		t.Errorf("stats missing:\n%s", data)
	}
	if !strings.Contains(string(data), "\"index\": 0,\n      \"text\": \"Quarterly report\"") {
		t.Errorf("paragraph index missing:\n%s", data)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.docx")

	stdout, stderr, err := execute(t, "extract", in)
	if !errors.Is(err, errReported) {
		t.Fatalf("extract error = %v, want errReported", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}

	want := "Error: File '" + in + "' not found.\nFailed to extract data from the document.\n"
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "missing.json")); !os.IsNotExist(err) {
		t.Error("no output file should be created")
	}
}

func TestExtract_NotADocument(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "notes.docx")
	if err := os.WriteFile(in, []byte("plain text"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, stderr, err := execute(t, "extract", in)
	if !errors.Is(err, errReported) {
		t.Fatalf("extract error = %v, want errReported", err)
	}
	if !strings.Contains(stderr, "Error extracting data from DOCX:") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestExtract_Args(t *testing.T) {
	if _, _, err := execute(t, "extract"); err == nil {
		t.Error("extract with no arguments should fail")
	}
	if _, _, err := execute(t, "extract", "a.docx", "b.json", "c"); err == nil {
		t.Error("extract with three arguments should fail")
	}
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	in := writeTestDOCX(t, dir)
	out := filepath.Join(dir, "summary.json")

	stdout, stderr, err := execute(t, "summarize", "-i", in, "-o", out)
	if err != nil {
		t.Fatalf("summarize error = %v, stderr = %s", err, stderr)
	}

	for _, want := range []string{
		"Opening document: " + in,
		"=== DOCUMENT SUMMARY ===",
		"Non-empty paragraphs: 1",
		"Paragraph 1: Quarterly report",
		"Table 1: 2 rows x 2 columns",
		`  Row 2: ['May', '42']`,
		"Data saved to " + out,
		"\nData extraction completed successfully.\nFull data saved to " + out + "\nYou can now use this data for further processing.\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), `"non_empty_paragraphs": 1`) {
		t.Errorf("summary output should carry stats:\n%s", data)
	}
}

func TestSummarize_ErrorKeepsExitStatus(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "may.docx")
	out := filepath.Join(dir, "may_data.json")

	_, stderr, err := execute(t, "summarize", "--input", in, "--output", out)
	if err != nil {
		t.Fatalf("summarize error = %v, want nil", err)
	}
	if !strings.HasPrefix(stderr, "Error: ") || !strings.Contains(stderr, "file not found") {
		t.Errorf("stderr = %q", stderr)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output file should be created")
	}
}

func TestRun_JobFile(t *testing.T) {
	dir := t.TempDir()
	in := writeTestDOCX(t, dir)
	out := filepath.Join(dir, "job.json")

	job := filepath.Join(dir, "job.yaml")
	yaml := "preset: plain\ninput: " + in + "\noutput: " + out + "\ninclude_stats: true\n"
	if err := os.WriteFile(job, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := execute(t, "run", "-c", job)
	if err != nil {
		t.Fatalf("run error = %v, stderr = %s", err, stderr)
	}
	if !strings.HasSuffix(stdout, "Data extraction completed successfully.\n") {
		t.Errorf("stdout = %q", stdout)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(data), `"total_tables": 1`) {
		t.Errorf("stats missing:\n%s", data)
	}
}

func TestRun_BadJobFile(t *testing.T) {
	dir := t.TempDir()
	job := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(job, []byte("preset: everything\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := execute(t, "run", "-c", job)
	if err == nil || !strings.Contains(err.Error(), "unknown preset") {
		t.Errorf("run error = %v, want unknown preset", err)
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "summarize")
	if err == nil || !strings.Contains(err.Error(), "invalid --log-level") {
		t.Errorf("error = %v, want invalid log level", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "debug")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Debug("hello", "k", "v")
	if !strings.Contains(buf.String(), "level=DEBUG") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("log output = %q", buf.String())
	}
}
