package docx

import (
	"fmt"
	"strconv"
)

// ParsedTable represents a parsed table with one entry per layout-grid
// cell in every row.
type ParsedTable struct {
	Rows []ParsedTableRow
}

// ParsedTableRow represents a parsed table row.
type ParsedTableRow struct {
	Cells []ParsedTableCell
}

// ParsedTableCell represents one layout-grid cell of a row.
// A horizontally merged cell appears once per spanned grid column and a
// vertically merged cell repeats the content of the cell that started the
// merge.
type ParsedTableCell struct {
	Text string
}

// Texts returns the cell texts of the row in order.
func (r ParsedTableRow) Texts() []string {
	texts := make([]string, len(r.Cells))
	for i, cell := range r.Cells {
		texts[i] = cell.Text
	}
	return texts
}

// TableParser handles parsing of DOCX tables.
type TableParser struct{}

// NewTableParser creates a new table parser.
func NewTableParser() *TableParser {
	return &TableParser{}
}

// gridCell is a <w:tc> positioned on the layout grid.
type gridCell struct {
	tc     *tableCellXML
	offset int
	span   int
}

// ParseTable parses a table XML element into a ParsedTable.
func (tp *TableParser) ParseTable(tbl tableXML) (ParsedTable, error) {
	parsed := ParsedTable{
		Rows: make([]ParsedTableRow, 0, len(tbl.Rows)),
	}

	grid := make([][]gridCell, len(tbl.Rows))
	for i := range tbl.Rows {
		cells, err := tp.layoutRow(&tbl.Rows[i])
		if err != nil {
			return ParsedTable{}, fmt.Errorf("row %d: %w", i, err)
		}
		grid[i] = cells
	}

	for rowIdx, cells := range grid {
		row := ParsedTableRow{Cells: []ParsedTableCell{}}
		for _, gc := range cells {
			origin, err := tp.mergeOrigin(grid, rowIdx, gc)
			if err != nil {
				return ParsedTable{}, fmt.Errorf("row %d: %w", rowIdx, err)
			}
			text := origin.tc.Text()
			for n := 0; n < origin.span; n++ {
				row.Cells = append(row.Cells, ParsedTableCell{Text: text})
			}
		}
		parsed.Rows = append(parsed.Rows, row)
	}

	return parsed, nil
}

// layoutRow assigns grid offsets to the cells of a row.
func (tp *TableParser) layoutRow(row *tableRowXML) ([]gridCell, error) {
	offset, err := parseGridCount(row.Properties.GridBefore.Val, 0)
	if err != nil {
		return nil, fmt.Errorf("gridBefore: %w", err)
	}

	cells := make([]gridCell, 0, len(row.Cells))
	for i := range row.Cells {
		tc := &row.Cells[i]
		span, err := parseGridCount(tc.Properties.GridSpan.Val, 1)
		if err != nil {
			return nil, fmt.Errorf("cell %d gridSpan: %w", i, err)
		}
		cells = append(cells, gridCell{tc: tc, offset: offset, span: span})
		offset += span
	}
	return cells, nil
}

// mergeOrigin follows vertical merge continuations upward until it reaches
// the cell holding the content.
func (tp *TableParser) mergeOrigin(grid [][]gridCell, rowIdx int, gc gridCell) (gridCell, error) {
	for gc.tc.Properties.continues() {
		if rowIdx == 0 {
			return gridCell{}, fmt.Errorf("vertical merge continuation in first row")
		}
		rowIdx--
		above, ok := cellAtOffset(grid[rowIdx], gc.offset)
		if !ok {
			return gridCell{}, fmt.Errorf("no cell above grid offset %d", gc.offset)
		}
		gc = above
	}
	return gc, nil
}

// cellAtOffset finds the cell starting at the given grid offset.
func cellAtOffset(cells []gridCell, offset int) (gridCell, bool) {
	for _, c := range cells {
		if c.offset == offset {
			return c, true
		}
		if c.offset > offset {
			break
		}
	}
	return gridCell{}, false
}

// parseGridCount parses a non-negative grid count attribute.
func parseGridCount(val string, def int) (int, error) {
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", val)
	}
	if n < 0 {
		return 0, nil
	}
	return n, nil
}
