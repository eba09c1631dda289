package model

// Table is a table record with the text of every cell.
type Table struct {
	Index   int        `json:"index"`
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Data    [][]string `json:"data"`
}

// NewTable creates a table record from row-major cell texts.
// Rows is len(data) and Columns is the length of the first row, or 0 when
// there are no rows. Nil rows are replaced with empty ones so the JSON
// output never holds null.
func NewTable(index int, data [][]string) Table {
	if data == nil {
		data = make([][]string, 0)
	}
	for i, row := range data {
		if row == nil {
			data[i] = make([]string, 0)
		}
	}

	cols := 0
	if len(data) > 0 {
		cols = len(data[0])
	}

	return Table{
		Index:   index,
		Rows:    len(data),
		Columns: cols,
		Data:    data,
	}
}

// IsRagged reports whether any row has a cell count different from Columns.
func (t Table) IsRagged() bool {
	for _, row := range t.Data {
		if len(row) != t.Columns {
			return true
		}
	}
	return false
}
