// Table is the central entity of the domain.
package core

import "fmt"

// Kind identifies the representation of a column's cells.
// Freshly loaded columns are KindText; the casting filter upgrades them.
type Kind int

const (
	// KindText holds opaque literal text, including "" for missing data.
	KindText Kind = iota
	// KindBool marks columns whose cells were recognized as true/false
	// tokens at load time. No other coercion happens on load.
	KindBool
	// KindCategory holds a closed set of labels, kept as strings.
	KindCategory
	// KindDate holds calendar dates (time.Time, midnight UTC).
	KindDate
	// KindMinutes holds durations as a rounded integer count of minutes.
	KindMinutes
	// KindInt holds plain integers.
	KindInt
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindCategory:
		return "category"
	case KindDate:
		return "date"
	case KindMinutes:
		return "minutes"
	case KindInt:
		return "int"
	}
	return "unknown"
}

// Column is one named cell sequence of a Table.
// Cells hold string, bool, time.Time or int depending on Kind.
type Column struct {
	Name  string
	Kind  Kind
	Cells []any
}

// Table is an ordered collection of named columns. All columns have the
// same row count, column names are unique, and row order is stable.
type Table struct {
	cols  []*Column
	index map[string]*Column
	rows  int
}

// NewTable creates an empty table with the given column names, all KindText.
func NewTable(names []string) (*Table, error) {
	t := &Table{index: make(map[string]*Column, len(names))}
	for _, name := range names {
		if _, ok := t.index[name]; ok {
			return nil, fmt.Errorf("duplicate column name %q", name)
		}
		col := &Column{Name: name, Kind: KindText}
		t.cols = append(t.cols, col)
		t.index[name] = col
	}
	return t, nil
}

// AppendRow appends one row of text cells, in column order.
func (t *Table) AppendRow(cells []string) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.cols))
	}
	for i, col := range t.cols {
		col.Cells = append(col.Cells, cells[i])
	}
	t.rows++
	return nil
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.rows }

// Width returns the column count.
func (t *Table) Width() int { return len(t.cols) }

// Columns returns the columns in order.
func (t *Table) Columns() []*Column { return t.cols }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	col, ok := t.index[name]
	return col, ok
}

// Has reports whether a column with the given name exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Rename changes a column's name, keeping its position.
func (t *Table) Rename(from, to string) error {
	col, ok := t.index[from]
	if !ok {
		return fmt.Errorf("no column named %q", from)
	}
	if _, ok := t.index[to]; ok {
		return fmt.Errorf("column %q already exists", to)
	}
	delete(t.index, from)
	col.Name = to
	t.index[to] = col
	return nil
}

// Add appends a new column with every cell set to fill.
func (t *Table) Add(name string, kind Kind, fill any) error {
	if _, ok := t.index[name]; ok {
		return fmt.Errorf("column %q already exists", name)
	}
	col := &Column{Name: name, Kind: kind, Cells: make([]any, t.rows)}
	for i := range col.Cells {
		col.Cells[i] = fill
	}
	t.cols = append(t.cols, col)
	t.index[name] = col
	return nil
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.cols))
	for j, col := range t.cols {
		row[j] = col.Cells[i]
	}
	return row
}
