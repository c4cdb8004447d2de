package synth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"towerstress/internal/tower"
)

// SaveRecords writes nested records to path as an indented JSON array,
// creating parent directories as needed.
func SaveRecords(path string, recs []tower.NestedRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(recs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// LoadRecords reads a JSON array of nested records from path.
func LoadRecords(path string) ([]tower.NestedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records json: %w", err)
	}
	var recs []tower.NestedRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse records json %s: %w", path, err)
	}
	return recs, nil
}
