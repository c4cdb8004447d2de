// Flatten-and-score transformation for nested tower records
package stress

import (
	"fmt"
	"math"

	"towerstress/internal/tower"
)

// Row is one flattened tower record. The csv tags fix the report column
// order: Tower_ID, Neighborhood, Status, Latency, Users, Bandwidth_Pct,
// Stress_Score.
type Row struct {
	TowerID      string  `csv:"Tower_ID" json:"tower_id"`
	Neighborhood string  `csv:"Neighborhood" json:"neighborhood"`
	Status       string  `csv:"Status" json:"status"`
	Latency      int     `csv:"Latency" json:"latency"`
	Users        int     `csv:"Users" json:"users"`
	BandwidthPct float64 `csv:"Bandwidth_Pct" json:"bandwidth_pct"`
	StressScore  float64 `csv:"Stress_Score" json:"stress_score"`
}

// Transform flattens one nested record into a Row and computes its stress
// score as round(active_users * latency_ms / 1000, 2), rounding halves away
// from zero. It returns *MissingFieldError when a required field is absent
// and *InvalidValueError when a present field is out of range. Pure: no
// side effects, identical output for identical input.
func Transform(rec tower.NestedRecord) (Row, error) {
	if rec.TowerID == "" {
		return Row{}, &MissingFieldError{Field: "tower_id"}
	}
	if rec.Location == "" {
		return Row{}, &MissingFieldError{TowerID: rec.TowerID, Field: "location"}
	}
	if rec.Status == "" {
		return Row{}, &MissingFieldError{TowerID: rec.TowerID, Field: "status"}
	}
	if !tower.KnownStatus(rec.Status) {
		return Row{}, &InvalidValueError{
			TowerID: rec.TowerID,
			Field:   "status",
			Reason:  fmt.Sprintf("unknown status %q", rec.Status),
		}
	}
	m := rec.Metrics
	if m == nil {
		return Row{}, &MissingFieldError{TowerID: rec.TowerID, Field: "metrics"}
	}
	if m.LatencyMS == nil {
		return Row{}, &MissingFieldError{TowerID: rec.TowerID, Field: "metrics.latency_ms"}
	}
	if m.ActiveUsers == nil {
		return Row{}, &MissingFieldError{TowerID: rec.TowerID, Field: "metrics.active_users"}
	}
	if m.BandwidthUsage == nil {
		return Row{}, &MissingFieldError{TowerID: rec.TowerID, Field: "metrics.bandwidth_usage"}
	}
	latency, users, bandwidth := *m.LatencyMS, *m.ActiveUsers, *m.BandwidthUsage
	if latency < 0 {
		return Row{}, &InvalidValueError{
			TowerID: rec.TowerID,
			Field:   "metrics.latency_ms",
			Reason:  fmt.Sprintf("negative latency %d", latency),
		}
	}
	if users < 0 {
		return Row{}, &InvalidValueError{
			TowerID: rec.TowerID,
			Field:   "metrics.active_users",
			Reason:  fmt.Sprintf("negative user count %d", users),
		}
	}
	if math.IsNaN(bandwidth) || math.IsInf(bandwidth, 0) {
		return Row{}, &InvalidValueError{
			TowerID: rec.TowerID,
			Field:   "metrics.bandwidth_usage",
			Reason:  "bandwidth is not finite",
		}
	}
	if bandwidth < 0 || bandwidth > 100 {
		return Row{}, &InvalidValueError{
			TowerID: rec.TowerID,
			Field:   "metrics.bandwidth_usage",
			Reason:  fmt.Sprintf("bandwidth %.2f outside [0,100]", bandwidth),
		}
	}

	return Row{
		TowerID:      rec.TowerID,
		Neighborhood: rec.Location,
		Status:       rec.Status,
		Latency:      latency,
		Users:        users,
		BandwidthPct: bandwidth,
		StressScore:  score(users, latency),
	}, nil
}

// TransformBatch applies Transform to each record in input order. It fails
// atomically: the first invalid record aborts the batch with a *BatchError
// and no rows are returned.
func TransformBatch(recs []tower.NestedRecord) ([]Row, error) {
	rows := make([]Row, 0, len(recs))
	for i, rec := range recs {
		row, err := Transform(rec)
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// score computes round(users*latency/1000, 2) with halves rounded away from
// zero. The product is an integer, so the unrounded score has at most three
// decimals; dividing the product by 10 first keeps every halfway case exact
// in float64 and makes the rounding stable across runs.
func score(users, latency int) float64 {
	return math.Round(float64(users*latency)/10) / 100
}
