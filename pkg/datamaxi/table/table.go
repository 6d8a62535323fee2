package table

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

type column struct {
	name    string
	numeric bool

	// raw keeps the original text of every cell, values is only filled for numeric columns
	raw    []string
	values []float64
}

// Table is an indexed, column oriented view over a dataset payload.
// Numeric columns store NaN for missing values.
type Table struct {
	indexNames []string
	keys       [][]string
	columns    []*column
	byName     map[string]*column
	rows       map[string]int
}

func newTable(indexNames []string, columnNames []string) *Table {
	t := &Table{
		indexNames: indexNames,
		byName:     make(map[string]*column, len(columnNames)),
		rows:       make(map[string]int),
	}

	for _, name := range columnNames {
		t.addColumn(name)
	}

	return t
}

func (t *Table) addColumn(name string) *column {
	if c, ok := t.byName[name]; ok {
		return c
	}

	c := &column{name: name, raw: make([]string, len(t.keys))}
	t.columns = append(t.columns, c)
	t.byName[name] = c
	return c
}

// appendRow appends the index key and the raw cells, cells not given stay empty.
func (t *Table) appendRow(key []string, cells map[string]string) {
	if len(key) > 0 {
		t.rows[rowKey(key)] = len(t.keys)
	}
	t.keys = append(t.keys, key)
	for _, c := range t.columns {
		c.raw = append(c.raw, cells[c.name])
	}
}

func rowKey(key []string) string {
	return strings.Join(key, "\x00")
}

func (t *Table) Len() int {
	return len(t.keys)
}

func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// NumericColumns returns the columns that were coerced to float64.
func (t *Table) NumericColumns() []string {
	var names []string
	for _, c := range t.columns {
		if c.numeric {
			names = append(names, c.name)
		}
	}
	return names
}

func (t *Table) IndexNames() []string {
	return t.indexNames
}

// Key returns the index values of the given row.
func (t *Table) Key(row int) []string {
	return t.keys[row]
}

// Row looks up the row position by its index values.
func (t *Table) Row(key ...string) (int, bool) {
	row, ok := t.rows[rowKey(key)]
	return row, ok
}

// Column returns the values of a numeric column.
func (t *Table) Column(name string) ([]float64, bool) {
	c, ok := t.byName[name]
	if !ok || !c.numeric {
		return nil, false
	}

	return c.values, true
}

// Float returns false when the column is missing, not numeric, or the cell is a missing value.
func (t *Table) Float(row int, col string) (float64, bool) {
	c, ok := t.byName[col]
	if !ok || !c.numeric || row < 0 || row >= len(c.values) {
		return 0, false
	}

	v := c.values[row]
	if math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// String returns the original text of the cell.
func (t *Table) String(row int, col string) string {
	c, ok := t.byName[col]
	if !ok || row < 0 || row >= len(c.raw) {
		return ""
	}

	return c.raw[row]
}

// Header returns the index names followed by the column names.
func (t *Table) Header() []string {
	header := make([]string, 0, len(t.indexNames)+len(t.columns))
	header = append(header, t.indexNames...)
	return append(header, t.Columns()...)
}

// Records returns every row as strings in the Header order.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, t.Len())
	for i, key := range t.keys {
		record := make([]string, 0, len(key)+len(t.columns))
		record = append(record, key...)
		for _, c := range t.columns {
			record = append(record, c.raw[i])
		}
		records = append(records, record)
	}
	return records
}

// Matrix returns the numeric columns as a dense matrix, one row per table row.
// Missing values stay NaN. It returns nil when the table has no numeric column.
func (t *Table) Matrix() *mat.Dense {
	var numeric []*column
	for _, c := range t.columns {
		if c.numeric {
			numeric = append(numeric, c)
		}
	}

	if len(numeric) == 0 || t.Len() == 0 {
		return nil
	}

	m := mat.NewDense(t.Len(), len(numeric), nil)
	for j, c := range numeric {
		for i, v := range c.values {
			m.Set(i, j, v)
		}
	}
	return m
}
