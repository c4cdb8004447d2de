package stress

import (
	"errors"
	"math"
	"testing"

	"towerstress/internal/tower"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func metrics(lat, users int, bw float64) *tower.Metrics {
	return &tower.Metrics{LatencyMS: intp(lat), ActiveUsers: intp(users), BandwidthUsage: floatp(bw)}
}

func validRecord() tower.NestedRecord {
	return tower.NestedRecord{
		TowerID:  "NRB-1",
		Location: "Kilimani",
		Metrics:  metrics(100, 2000, 75.0),
		Status:   tower.StatusOnline,
	}
}

func TestTransform(t *testing.T) {
	row, err := Transform(validRecord())
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	want := Row{
		TowerID:      "NRB-1",
		Neighborhood: "Kilimani",
		Status:       "online",
		Latency:      100,
		Users:        2000,
		BandwidthPct: 75.0,
		StressScore:  200.0,
	}
	if row != want {
		t.Errorf("Transform = %+v, want %+v", row, want)
	}
}

func TestTransformScoreAtMaxRanges(t *testing.T) {
	rec := validRecord()
	rec.Metrics = metrics(150, 15000, 99.0)
	row, err := Transform(rec)
	if err != nil {
		t.Fatalf("Transform returned error: %v", err)
	}
	if row.StressScore != 2250.0 {
		t.Errorf("StressScore = %v, want 2250.0", row.StressScore)
	}
}

func TestTransformRoundsHalfUp(t *testing.T) {
	// 25 users * 101 ms = 2525 -> 2.525 -> 2.53 with half-up rounding.
	cases := []struct {
		users, latency int
		want           float64
	}{
		{25, 101, 2.53},
		{15, 101, 1.52}, // 1.515 rounds up
		{3333, 7, 23.33},
		{1, 1, 0.0}, // 0.001 rounds down
		{5, 1, 0.01},
		{0, 150, 0.0},
	}
	for _, tc := range cases {
		rec := validRecord()
		rec.Metrics = metrics(tc.latency, tc.users, 75.0)
		row, err := Transform(rec)
		if err != nil {
			t.Fatalf("Transform(%d users, %d ms): %v", tc.users, tc.latency, err)
		}
		if row.StressScore != tc.want {
			t.Errorf("score(%d, %d) = %v, want %v", tc.users, tc.latency, row.StressScore, tc.want)
		}
	}
}

func TestTransformIdempotent(t *testing.T) {
	rec := validRecord()
	first, err := Transform(rec)
	if err != nil {
		t.Fatalf("first Transform: %v", err)
	}
	second, err := Transform(rec)
	if err != nil {
		t.Fatalf("second Transform: %v", err)
	}
	if first != second {
		t.Errorf("Transform not idempotent: %+v vs %+v", first, second)
	}
}

func TestTransformMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*tower.NestedRecord)
		field  string
	}{
		{"tower_id", func(r *tower.NestedRecord) { r.TowerID = "" }, "tower_id"},
		{"location", func(r *tower.NestedRecord) { r.Location = "" }, "location"},
		{"status", func(r *tower.NestedRecord) { r.Status = "" }, "status"},
		{"metrics", func(r *tower.NestedRecord) { r.Metrics = nil }, "metrics"},
		{"latency", func(r *tower.NestedRecord) { r.Metrics.LatencyMS = nil }, "metrics.latency_ms"},
		{"users", func(r *tower.NestedRecord) { r.Metrics.ActiveUsers = nil }, "metrics.active_users"},
		{"bandwidth", func(r *tower.NestedRecord) { r.Metrics.BandwidthUsage = nil }, "metrics.bandwidth_usage"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			_, err := Transform(rec)
			var missing *MissingFieldError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingFieldError, got %v", err)
			}
			if missing.Field != tc.field {
				t.Errorf("Field = %q, want %q", missing.Field, tc.field)
			}
		})
	}
}

func TestTransformInvalidValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*tower.NestedRecord)
		field  string
	}{
		{"negative latency", func(r *tower.NestedRecord) { r.Metrics.LatencyMS = intp(-5) }, "metrics.latency_ms"},
		{"negative users", func(r *tower.NestedRecord) { r.Metrics.ActiveUsers = intp(-1) }, "metrics.active_users"},
		{"bandwidth over 100", func(r *tower.NestedRecord) { r.Metrics.BandwidthUsage = floatp(100.5) }, "metrics.bandwidth_usage"},
		{"bandwidth negative", func(r *tower.NestedRecord) { r.Metrics.BandwidthUsage = floatp(-0.1) }, "metrics.bandwidth_usage"},
		{"bandwidth NaN", func(r *tower.NestedRecord) { r.Metrics.BandwidthUsage = floatp(math.NaN()) }, "metrics.bandwidth_usage"},
		{"bandwidth Inf", func(r *tower.NestedRecord) { r.Metrics.BandwidthUsage = floatp(math.Inf(1)) }, "metrics.bandwidth_usage"},
		{"unknown status", func(r *tower.NestedRecord) { r.Status = "offline" }, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			_, err := Transform(rec)
			var invalid *InvalidValueError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidValueError, got %v", err)
			}
			if invalid.Field != tc.field {
				t.Errorf("Field = %q, want %q", invalid.Field, tc.field)
			}
			if invalid.TowerID != "NRB-1" {
				t.Errorf("TowerID = %q, want NRB-1", invalid.TowerID)
			}
		})
	}
}

func TestTransformBatchPreservesOrder(t *testing.T) {
	recs := []tower.NestedRecord{
		{TowerID: "NRB-1", Location: "Kilimani", Metrics: metrics(100, 2000, 75.0), Status: tower.StatusOnline},
		{TowerID: "NRB-2", Location: "Westlands", Metrics: metrics(30, 12000, 88.5), Status: tower.StatusMaintenance},
		{TowerID: "NRB-3", Location: "Kasarani", Metrics: metrics(150, 500, 50.0), Status: tower.StatusOnline},
	}
	rows, err := TransformBatch(recs)
	if err != nil {
		t.Fatalf("TransformBatch: %v", err)
	}
	if len(rows) != len(recs) {
		t.Fatalf("got %d rows, want %d", len(rows), len(recs))
	}
	for i, rec := range recs {
		if rows[i].TowerID != rec.TowerID {
			t.Errorf("row %d: TowerID = %q, want %q", i, rows[i].TowerID, rec.TowerID)
		}
	}
}

func TestTransformBatchAtomic(t *testing.T) {
	bad := validRecord()
	bad.TowerID = "NRB-2"
	bad.Metrics.LatencyMS = intp(-5)
	recs := []tower.NestedRecord{validRecord(), bad, validRecord()}

	rows, err := TransformBatch(recs)
	if rows != nil {
		t.Errorf("expected no partial results, got %d rows", len(rows))
	}
	var batchErr *BatchError
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected BatchError, got %v", err)
	}
	if batchErr.Index != 1 {
		t.Errorf("Index = %d, want 1", batchErr.Index)
	}
	var invalid *InvalidValueError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected wrapped InvalidValueError, got %v", err)
	}
}

func TestTransformBatchEmpty(t *testing.T) {
	rows, err := TransformBatch(nil)
	if err != nil {
		t.Fatalf("TransformBatch(nil): %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty result, got %d rows", len(rows))
	}
}
