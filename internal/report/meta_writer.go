package report

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// MetaWriter writes the report summary envelope as JSON.
type MetaWriter struct {
	Path string
}

// NewMetaWriter creates a MetaWriter targeting path.
func NewMetaWriter(path string) *MetaWriter {
	return &MetaWriter{Path: path}
}

// WriteReport writes the summary sidecar.
func (w *MetaWriter) WriteReport(r *Report) error {
	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(r.Summary, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(w.Path, append(data, '\n'), 0o644)
}

// MetaPath derives the sidecar path from the CSV path:
// reports/out.csv -> reports/out.meta.json.
func MetaPath(csvPath string) string {
	ext := filepath.Ext(csvPath)
	return csvPath[:len(csvPath)-len(ext)] + ".meta.json"
}
