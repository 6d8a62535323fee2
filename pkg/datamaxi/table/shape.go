package table

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

var ErrEmptyData = errors.New("empty data")

// Shape describes how a dataset payload is laid out and how it becomes a Table.
type Shape interface {
	Normalize(data []byte) (*Table, error)
}

// HeaderRows is for payloads like [["Date","aave"],["2024-03-30","11349748481.86"]].
// The first indexCount header names form the index, a negative count keeps the last -indexCount
// columns out of the index. Every other cell must be numeric.
func HeaderRows(indexCount int) Shape {
	return headerRows{indexCount: indexCount}
}

type coercion int

const (
	coerceNone coercion = iota
	coerceAll
	coerceListed
)

// Records is for arrays of objects indexed by the index field. The listed columns, or every
// column when none is listed, are converted to float64 and unparsable cells become missing values.
func Records(index string, numeric ...string) Shape {
	s := records{index: index, coercion: coerceAll}
	if len(numeric) > 0 {
		s.coercion = coerceListed
		s.numeric = numeric
	}
	return s
}

// RecordsAsIs keeps the cells as they are, only columns holding JSON numbers are numeric.
// An empty index keeps the payload order without an index.
func RecordsAsIs(index string) Shape {
	return records{index: index, coercion: coerceNone}
}

// SingleRecord turns one JSON object into a one row table.
func SingleRecord() Shape {
	return singleRecord{}
}

type headerRows struct {
	indexCount int
}

func (s headerRows) Normalize(data []byte) (*Table, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse payload")
	}

	rows, err := unwrapArray(v)
	if err != nil {
		return nil, err
	}

	header, err := rows[0].Array()
	if err != nil {
		return nil, errors.Wrap(err, "header row is not an array")
	}

	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		names[i] = cellText(h)
		if seen[names[i]] {
			return nil, errors.Errorf("duplicate column %q in header row", names[i])
		}
		seen[names[i]] = true
	}

	n := s.indexCount
	if n < 0 {
		n = len(names) + n
	}
	if n < 0 {
		n = 0
	} else if n > len(names) {
		n = len(names)
	}

	t := newTable(names[:n], names[n:])
	for i, row := range rows[1:] {
		cells, err := row.Array()
		if err != nil {
			return nil, errors.Wrapf(err, "row %d is not an array", i+1)
		}

		if len(cells) != len(names) {
			return nil, errors.Errorf("row %d has %d cells, expecting %d", i+1, len(cells), len(names))
		}

		key := make([]string, n)
		for j := 0; j < n; j++ {
			key[j] = cellText(cells[j])
		}

		values := make(map[string]string, len(names)-n)
		for j := n; j < len(names); j++ {
			values[names[j]] = cellText(cells[j])
		}

		t.appendRow(key, values)
	}

	for _, c := range t.columns {
		c.numeric = true
		c.values = make([]float64, len(c.raw))
		for i, raw := range c.raw {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, errors.Errorf("column %q row %d: %q is not numeric", c.name, i+1, raw)
			}
			c.values[i] = f
		}
	}

	return t, nil
}

type records struct {
	index    string
	coercion coercion
	numeric  []string
}

func (s records) Normalize(data []byte) (*Table, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse payload")
	}

	objects, err := unwrapArray(v)
	if err != nil {
		return nil, err
	}

	t, numbersOnly, err := fromObjects(objects, s.index)
	if err != nil {
		return nil, err
	}

	switch s.coercion {
	case coerceNone:
		markNumeric(t, numbersOnly)

	case coerceAll:
		for _, c := range t.columns {
			coerceLenient(c)
		}

	case coerceListed:
		for _, name := range s.numeric {
			if c, ok := t.byName[name]; ok {
				coerceLenient(c)
			}
		}
	}

	return t, nil
}

type singleRecord struct{}

func (singleRecord) Normalize(data []byte) (*Table, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse payload")
	}

	if v.Type() != fastjson.TypeObject {
		return nil, errors.Errorf("expecting an object, got %s", v.Type())
	}

	t, numbersOnly, err := fromObjects([]*fastjson.Value{v}, "")
	if err != nil {
		return nil, err
	}

	markNumeric(t, numbersOnly)
	return t, nil
}

// unwrapArray accepts either a bare array or an object carrying the array in "data".
func unwrapArray(v *fastjson.Value) ([]*fastjson.Value, error) {
	if v.Type() == fastjson.TypeObject && v.Exists("data") {
		v = v.Get("data")
	}

	switch v.Type() {
	case fastjson.TypeNull:
		return nil, ErrEmptyData

	case fastjson.TypeArray:
		values, _ := v.Array()
		if len(values) == 0 {
			return nil, ErrEmptyData
		}
		return values, nil

	}

	return nil, errors.Errorf("expecting an array, got %s", v.Type())
}

// fromObjects builds the table from the object keys in first seen order. numbersOnly reports, per
// column, whether every non-null cell was a JSON number.
func fromObjects(objects []*fastjson.Value, index string) (*Table, map[string]bool, error) {
	var indexNames []string
	if len(index) > 0 {
		indexNames = []string{index}
	}

	t := newTable(indexNames, nil)
	numbersOnly := map[string]bool{}

	for i, v := range objects {
		o, err := v.Object()
		if err != nil {
			return nil, nil, errors.Wrapf(err, "record %d is not an object", i)
		}

		var key []string
		values := map[string]string{}
		o.Visit(func(k []byte, cell *fastjson.Value) {
			name := string(k)
			if name == index {
				key = []string{cellText(cell)}
				return
			}

			t.addColumn(name)
			values[name] = cellText(cell)

			switch cell.Type() {
			case fastjson.TypeNull:
			case fastjson.TypeNumber:
				if _, seen := numbersOnly[name]; !seen {
					numbersOnly[name] = true
				}
			default:
				numbersOnly[name] = false
			}
		})

		if len(index) > 0 && key == nil {
			return nil, nil, errors.Errorf("record %d has no %q field", i, index)
		}

		t.appendRow(key, values)
	}

	return t, numbersOnly, nil
}

func markNumeric(t *Table, numbersOnly map[string]bool) {
	for _, c := range t.columns {
		if numbersOnly[c.name] {
			coerceLenient(c)
		}
	}
}

// coerceLenient converts the column to float64, "NaN", null and unparsable cells become NaN.
func coerceLenient(c *column) {
	c.numeric = true
	c.values = make([]float64, len(c.raw))
	for i, raw := range c.raw {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			f = math.NaN()
		}
		c.values[i] = f
	}
}

func cellText(v *fastjson.Value) string {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())

	case fastjson.TypeNull:
		return ""

	}

	return v.String()
}
