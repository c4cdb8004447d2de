// Report assembly: sorting, high-risk flagging, summary statistics
package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"

	"towerstress/internal/stress"
)

// Summary is the metadata envelope written alongside the tabular report.
type Summary struct {
	RunID          string    `json:"run_id"`
	GeneratedAt    time.Time `json:"generated_at"`
	TowerCount     int       `json:"tower_count"`
	Threshold      float64   `json:"high_risk_threshold"`
	HighRiskCount  int       `json:"high_risk_count"`
	HighRiskTowers []string  `json:"high_risk_towers"`
	MeanScore      float64   `json:"mean_score"`
	MaxScore       float64   `json:"max_score"`
	P95Score       float64   `json:"p95_score"`
}

// Report holds flattened rows sorted for presentation plus their summary.
type Report struct {
	Rows    []stress.Row
	Summary Summary
}

// Writer renders a finished report to some sink.
type Writer interface {
	WriteReport(r *Report) error
}

// Build sorts rows by stress score descending (tower ID ascending on ties,
// so re-runs cannot reorder) and computes the summary. A row is high-risk
// only when its score strictly exceeds threshold. The input slice is not
// modified.
func Build(rows []stress.Row, threshold float64) (*Report, error) {
	sorted := make([]stress.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StressScore != sorted[j].StressScore {
			return sorted[i].StressScore > sorted[j].StressScore
		}
		return sorted[i].TowerID < sorted[j].TowerID
	})

	summary := Summary{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		TowerCount:  len(sorted),
		Threshold:   threshold,
	}
	for _, row := range sorted {
		if row.StressScore > threshold {
			summary.HighRiskCount++
			summary.HighRiskTowers = append(summary.HighRiskTowers, row.TowerID)
		}
	}

	if len(sorted) > 0 {
		scores := make(stats.Float64Data, len(sorted))
		for i, row := range sorted {
			scores[i] = row.StressScore
		}
		var err error
		if summary.MeanScore, err = stats.Mean(scores); err != nil {
			return nil, err
		}
		if summary.MaxScore, err = stats.Max(scores); err != nil {
			return nil, err
		}
		if summary.P95Score, err = stats.Percentile(scores, 95); err != nil {
			return nil, err
		}
	}

	return &Report{Rows: sorted, Summary: summary}, nil
}
