package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// CSVWriter writes report rows to a delimited file. Column order is fixed by
// the csv tags on stress.Row: Tower_ID, Neighborhood, Status, Latency,
// Users, Bandwidth_Pct, Stress_Score.
type CSVWriter struct {
	Path string
}

// NewCSVWriter creates a CSVWriter targeting path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{Path: path}
}

// WriteReport renders the sorted rows as CSV, creating parent directories.
func (w *CSVWriter) WriteReport(r *Report) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create report csv: %w", err)
	}
	if err := gocsv.MarshalFile(&r.Rows, f); err != nil {
		f.Close()
		return fmt.Errorf("write report csv: %w", err)
	}
	return f.Close()
}
