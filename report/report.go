// Package report prints a human-readable summary of an extraction result.
//
// The summary is for people only. It has no effect on the JSON output and
// its layout is not meant to be parsed.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/docxtract/model"
)

// Sampling limits of the summary.
const (
	SampleParagraphs = 5
	SampleTables     = 3
	SampleRows       = 3
	SampleCells      = 3
	MaxTextRunes     = 100
)

const ellipsis = "..."

// styles groups the lipgloss styles bound to one output.
type styles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	dim     lipgloss.Style
}

// newStyles binds styles to w. Writers that are not terminals get plain
// text.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("81")),
		dim: r.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Print writes the summary of res to w: the counts, up to five sample
// paragraphs and up to three sample tables with three rows each.
// The counts block is skipped when res carries no stats.
func Print(w io.Writer, res *model.Result) {
	s := newStyles(w)

	if res.Stats != nil {
		fmt.Fprintf(w, "\n%s\n", s.heading.Render("=== DOCUMENT SUMMARY ==="))
		fmt.Fprintf(w, "%s %d\n", s.label.Render("Total paragraphs:"), res.Stats.TotalParagraphs)
		fmt.Fprintf(w, "%s %d\n", s.label.Render("Non-empty paragraphs:"), res.Stats.NonEmptyParagraphs)
		fmt.Fprintf(w, "%s %d\n", s.label.Render("Total tables:"), res.Stats.TotalTables)
	}

	fmt.Fprintf(w, "\n%s\n", s.heading.Render("=== SAMPLE PARAGRAPHS ==="))
	for i, para := range head(res.Paragraphs, SampleParagraphs) {
		num := para.Position() + 1
		if para.Index == nil {
			num = i + 1
		}
		fmt.Fprintf(w, "%s %s\n", s.label.Render(fmt.Sprintf("Paragraph %d:", num)), Truncate(para.Text, MaxTextRunes))
	}

	fmt.Fprintf(w, "\n%s\n", s.heading.Render("=== SAMPLE TABLES ==="))
	for _, table := range head(res.Tables, SampleTables) {
		fmt.Fprintf(w, "%s %d rows x %d columns\n",
			s.label.Render(fmt.Sprintf("Table %d:", table.Index+1)), table.Rows, table.Columns)

		if table.Rows == 0 {
			continue
		}
		fmt.Fprintf(w, "  %s\n", s.dim.Render("Sample data:"))
		for j, row := range head(table.Data, SampleRows) {
			fmt.Fprintf(w, "  Row %d: %s\n", j+1, FormatRow(row, SampleCells))
		}
	}
}

// Truncate cuts text to at most n characters (runes) and appends "..."
// when anything was cut.
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + ellipsis
}

// FormatRow renders the first n cells of row as a list of quoted strings,
// ['a', 'b'], followed by "..." when the row has more cells.
func FormatRow(row []string, n int) string {
	cells := head(row, n)
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = quote(c)
	}

	out := "[" + strings.Join(quoted, ", ") + "]"
	if len(row) > n {
		out += ellipsis
	}
	return out
}

// quote renders s in single quotes, or in double quotes when s holds a
// single quote and no double quote. Backslashes, the chosen quote,
// control and non-printable characters are escaped.
func quote(s string) string {
	q := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var sb strings.Builder
	sb.WriteRune(q)
	for _, r := range s {
		switch {
		case r == q || r == '\\':
			sb.WriteRune('\\')
			sb.WriteRune(r)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case !unicode.IsPrint(r) && r != ' ':
			switch {
			case r <= 0xff:
				fmt.Fprintf(&sb, `\x%02x`, r)
			case r <= 0xffff:
				fmt.Fprintf(&sb, `\u%04x`, r)
			default:
				fmt.Fprintf(&sb, `\U%08x`, r)
			}
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteRune(q)
	return sb.String()
}

// head returns at most the first n elements of s.
func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
