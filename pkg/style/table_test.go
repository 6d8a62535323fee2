package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, NewPlainTableStyle(), []string{"d", "c"}, [][]string{
		{"2024-01-01", "1.5"},
		{"2024-01-02", "NaN"},
	}, 1)

	out := buf.String()
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "NaN")
	assert.Contains(t, out, "╭")
}

func TestNewDefaultTableStyle(t *testing.T) {
	s := NewDefaultTableStyle()
	assert.Equal(t, "StyleRounded", s.Name)
}
