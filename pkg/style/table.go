package style

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewPlainTableStyle is the rounded box without colors, used when the output is not a terminal.
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Color = table.ColorOptionsDefault
	return &style
}

// RenderTable writes the header and the records as a pretty table.
// Cells listed in rightAligned are numeric columns and are aligned to the right.
func RenderTable(w io.Writer, s *table.Style, header []string, records [][]string, rightAligned ...int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if s != nil {
		t.SetStyle(*s)
	}

	headerRow := make(table.Row, 0, len(header))
	for _, h := range header {
		headerRow = append(headerRow, h)
	}
	t.AppendHeader(headerRow)

	var configs []table.ColumnConfig
	for _, n := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: n + 1, Align: text.AlignRight})
	}
	t.SetColumnConfigs(configs)

	for _, record := range records {
		row := make(table.Row, 0, len(record))
		for _, cell := range record {
			row = append(row, cell)
		}
		t.AppendRow(row)
	}

	t.Render()
}
