package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the value stored in a Cell.
type Kind uint8

const (
	// KindMissing marks an absent value (empty cell in the source file).
	KindMissing Kind = iota
	// KindNumber marks a numeric value.
	KindNumber
	// KindText marks a free-form text value.
	KindText
)

// Cell is a single value of an uploaded table: a number, a text, or missing.
type Cell struct {
	kind Kind
	num  float64
	str  string
}

// NumberCell creates a numeric cell.
func NumberCell(v float64) Cell {
	return Cell{kind: KindNumber, num: v}
}

// TextCell creates a text cell.
func TextCell(s string) Cell {
	return Cell{kind: KindText, str: s}
}

// MissingCell creates a missing cell.
func MissingCell() Cell {
	return Cell{kind: KindMissing}
}

// Kind returns the cell's value kind.
func (c Cell) Kind() Kind { return c.kind }

// IsMissing reports whether the cell holds no value.
func (c Cell) IsMissing() bool { return c.kind == KindMissing }

// Float returns the cell's numeric value. Text cells are parsed leniently
// (trimmed first); missing and unparseable cells report ok=false.
func (c Cell) Float() (float64, bool) {
	switch c.kind {
	case KindNumber:
		return c.num, true
	case KindText:
		v, err := strconv.ParseFloat(strings.TrimSpace(c.str), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// String returns the cell's text form. Numbers use the shortest exact
// representation, missing cells render as the empty string.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case KindText:
		return c.str
	default:
		return ""
	}
}

// JSONValue converts the cell to a JSON-safe scalar: missing becomes nil,
// numbers stay numbers, everything else becomes a string.
func (c Cell) JSONValue() any {
	switch c.kind {
	case KindNumber:
		return c.num
	case KindText:
		return c.str
	default:
		return nil
	}
}

// Table is an immutable, in-memory tabular dataset: ordered named columns and
// ordered rows. Column names are lower-cased, trimmed and unique; every row
// has a cell (possibly missing) for every declared column.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Cell
}

// New builds a Table from column names and rows. Names are normalized to
// lower-case trimmed form; duplicate or empty names are rejected. Rows
// shorter than the column list are padded with missing cells, longer rows
// are truncated.
func New(columns []string, rows [][]Cell) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table must have at least one column")
	}

	normalized := make([]string, len(columns))
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			return nil, fmt.Errorf("column %d has an empty name", i+1)
		}
		if _, dup := index[n]; dup {
			return nil, fmt.Errorf("duplicate column name %q", n)
		}
		normalized[i] = n
		index[n] = i
	}

	width := len(normalized)
	fitted := make([][]Cell, len(rows))
	for i, row := range rows {
		r := make([]Cell, width)
		for j := 0; j < width; j++ {
			if j < len(row) {
				r[j] = row[j]
			} else {
				r[j] = MissingCell()
			}
		}
		fitted[i] = r
	}

	return &Table{columns: normalized, index: index, rows: fitted}, nil
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Cell returns the cell at the given row for the named column. Unknown
// columns and out-of-range rows yield a missing cell.
func (t *Table) Cell(row int, column string) Cell {
	idx, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return MissingCell()
	}
	return t.rows[row][idx]
}

// Column returns all cells of the named column in row order.
func (t *Table) Column(name string) ([]Cell, bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Cell, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, true
}

// Row returns a copy of the cells of one row in column order.
func (t *Table) Row(i int) []Cell {
	out := make([]Cell, len(t.columns))
	copy(out, t.rows[i])
	return out
}

// RowMap converts one row to a JSON-safe map keyed by column name.
func (t *Table) RowMap(i int) map[string]any {
	out := make(map[string]any, len(t.columns))
	for j, name := range t.columns {
		out[name] = t.rows[i][j].JSONValue()
	}
	return out
}

// MissingColumns returns the subset of required that is absent from the
// table, in the order given.
func (t *Table) MissingColumns(required []string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
