// Tower identity CSV loading
package source

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"towerstress/internal/tower"
)

// LoadTowers reads tower identity rows from a CSV file with a
// tower_id,neighborhood header. Rows with an empty required column fail the
// load; the report must never silently lose a tower.
func LoadTowers(path string) ([]tower.Identity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open towers csv: %w", err)
	}
	defer f.Close()

	var towers []tower.Identity
	if err := gocsv.UnmarshalFile(f, &towers); err != nil {
		return nil, fmt.Errorf("parse towers csv %s: %w", path, err)
	}
	if len(towers) == 0 {
		return nil, fmt.Errorf("towers csv %s contains no rows", path)
	}

	seen := make(map[string]struct{}, len(towers))
	for i, tw := range towers {
		// +2: header line plus 1-based data rows.
		line := i + 2
		if tw.TowerID == "" {
			return nil, fmt.Errorf("towers csv %s line %d: empty tower_id", path, line)
		}
		if tw.Neighborhood == "" {
			return nil, fmt.Errorf("towers csv %s line %d: empty neighborhood", path, line)
		}
		if _, dup := seen[tw.TowerID]; dup {
			return nil, fmt.Errorf("towers csv %s line %d: duplicate tower_id %s", path, line, tw.TowerID)
		}
		seen[tw.TowerID] = struct{}{}
	}
	return towers, nil
}
