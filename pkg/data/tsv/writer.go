package tsv

import (
	"encoding/csv"
	"io"
	"os"
)

type Writer struct {
	file io.WriteCloser

	*csv.Writer
}

func NewWriterFile(filename string) (*Writer, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}

	return NewWriter(f), nil
}

func NewWriter(file io.WriteCloser) *Writer {
	tsv := csv.NewWriter(file)
	tsv.Comma = '\t'
	return &Writer{
		Writer: tsv,
		file:   file,
	}
}

// WriteTable writes the header line followed by the records.
func (w *Writer) WriteTable(header []string, records [][]string) error {
	if err := w.Write(header); err != nil {
		return err
	}

	return w.WriteAll(records)
}

func (w *Writer) Close() error {
	w.Writer.Flush()
	if err := w.Writer.Error(); err != nil {
		_ = w.file.Close()
		return err
	}

	return w.file.Close()
}
