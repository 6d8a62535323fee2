package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/datamaxiplus/datamaxi-go/pkg/data/tsv"
	"github.com/datamaxiplus/datamaxi-go/pkg/datamaxi/table"
	"github.com/datamaxiplus/datamaxi-go/pkg/style"
)

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
	outputTSV   outputFormat = "tsv"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(s)); f {
	case outputTable, outputJSON, outputYAML, outputTSV:
		return f, nil
	}

	return "", fmt.Errorf("unsupported output format %q, use table, json, yaml or tsv", s)
}

// rows is the printable form of a table, pages of the same dataset are concatenated into one.
type rows struct {
	header  []string
	records [][]string
	numeric []int
}

func newRows(tbl *table.Table) *rows {
	r := &rows{header: tbl.Header(), records: tbl.Records()}

	numeric := map[string]bool{}
	for _, name := range tbl.NumericColumns() {
		numeric[name] = true
	}

	offset := len(tbl.IndexNames())
	for i, name := range tbl.Columns() {
		if numeric[name] {
			r.numeric = append(r.numeric, offset+i)
		}
	}

	return r
}

func (r *rows) append(o *rows) error {
	if strings.Join(r.header, "\t") != strings.Join(o.header, "\t") {
		return fmt.Errorf("columns changed between pages: %v != %v", r.header, o.header)
	}

	r.records = append(r.records, o.records...)
	return nil
}

// objects converts the rows to records keeping the column order, numeric cells become numbers
// and missing values null.
func (r *rows) objects() []*record {
	numeric := map[int]bool{}
	for _, i := range r.numeric {
		numeric[i] = true
	}

	objects := make([]*record, 0, len(r.records))
	for _, cells := range r.records {
		obj := &record{keys: r.header, values: make([]interface{}, len(r.header))}
		for i, cell := range cells {
			if !numeric[i] {
				obj.values[i] = cell
				continue
			}

			v, err := strconv.ParseFloat(cell, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			obj.values[i] = v
		}
		objects = append(objects, obj)
	}

	return objects
}

// record is one row printed as an object, the keys follow the table columns, index first.
type record struct {
	keys   []string
	values []interface{}
}

func (r *record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *record) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, key := range r.keys {
		var k, v yaml.Node
		if err := k.Encode(key); err != nil {
			return nil, err
		}

		if err := v.Encode(r.values[i]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &k, &v)
	}
	return node, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

type printer struct {
	format  outputFormat
	raw     bool
	colored bool

	out    io.WriteCloser
	errOut io.Writer
}

func newPrinter(cmd *cobra.Command) (*printer, error) {
	format, err := parseOutputFormat(viper.GetString("output"))
	if err != nil {
		return nil, err
	}

	p := &printer{
		format:  format,
		raw:     viper.GetBool("raw"),
		colored: !color.NoColor,
		out:     nopCloser{cmd.OutOrStdout()},
		errOut:  cmd.ErrOrStderr(),
	}

	if filename := viper.GetString("output-file"); len(filename) > 0 {
		f, err := os.Create(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "can not create output file %s", filename)
		}

		p.out = f
		p.colored = false
	}

	return p, nil
}

func (p *printer) Close() error {
	return p.out.Close()
}

func (p *printer) printRows(r *rows) error {
	switch p.format {
	case outputJSON:
		return p.printJSON(r.objects())

	case outputYAML:
		return p.printYAML(r.objects())

	case outputTSV:
		w := tsv.NewWriter(nopCloser{p.out})
		if err := w.WriteTable(r.header, r.records); err != nil {
			return err
		}
		return w.Close()
	}

	s := style.NewPlainTableStyle()
	if p.colored {
		s = style.NewDefaultTableStyle()
	}

	style.RenderTable(p.out, s, r.header, r.records, r.numeric...)
	return nil
}

func (p *printer) printStrings(name string, values []string) error {
	switch p.format {
	case outputJSON:
		return p.printJSON(values)

	case outputYAML:
		return p.printYAML(values)
	}

	records := make([][]string, 0, len(values))
	for _, v := range values {
		records = append(records, []string{v})
	}

	return p.printRows(&rows{header: []string{name}, records: records})
}

// printRaw prints a reply without a table layout.
func (p *printer) printRaw(data json.RawMessage) error {
	if p.format == outputYAML {
		var v interface{}
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		return p.printYAML(v)
	}

	if p.raw {
		_, err := fmt.Fprintln(p.out, string(data))
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}

	buf.WriteByte('\n')
	_, err := buf.WriteTo(p.out)
	return err
}

func (p *printer) printJSON(v interface{}) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (p *printer) printYAML(v interface{}) error {
	encoder := yaml.NewEncoder(p.out)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

// printUsage reports the rate limit usage and the header on stderr so that stdout stays parsable.
func (p *printer) printUsage(limitUsage map[string]string, header http.Header) {
	write := func(w io.Writer, format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}

	if p.colored {
		write = color.New(color.FgHiYellow).FprintfFunc()
	}

	if len(limitUsage) > 0 {
		keys := make([]string, 0, len(limitUsage))
		for k := range limitUsage {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			write(p.errOut, "%s: %s\n", k, limitUsage[k])
		}
	}

	if len(header) > 0 {
		keys := make([]string, 0, len(header))
		for k := range header {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			write(p.errOut, "%s: %s\n", k, strings.Join(header[k], ", "))
		}
	}
}
