package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Dataset is a header row plus records keyed by header.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
}

// Record returns row i ordered by Headers. Missing cells are empty.
func (d Dataset) Record(i int) []string {
	out := make([]string, len(d.Headers))
	for j, header := range d.Headers {
		out[j] = d.Rows[i][header]
	}
	return out
}

// CSVExporter renders a Dataset as RFC 4180 CSV.
type CSVExporter struct {
	// BOM prefixes output with a UTF-8 byte order mark for spreadsheet tools.
	BOM bool
}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render encodes the dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("csv requires at least one header")
	}
	buf := &bytes.Buffer{}
	if e.BOM {
		buf.WriteString("\ufeff")
	}
	writer := csv.NewWriter(buf)
	if err := writer.Write(data.Headers); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for i := range data.Rows {
		if err := writer.Write(data.Record(i)); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
