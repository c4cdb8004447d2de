package synth

import (
	"math"
	"math/rand"

	"towerstress/internal/config"
	"towerstress/internal/tower"
)

// Generator attaches randomized telemetry metrics to tower identities.
type Generator struct {
	ranges config.MetricRanges
	rng    *rand.Rand
}

// NewGenerator creates a generator with a private seeded source, so two runs
// with the same seed and tower list produce identical records.
func NewGenerator(ranges config.MetricRanges, seed int64) *Generator {
	return &Generator{ranges: ranges, rng: rand.New(rand.NewSource(seed))}
}

// Synthesize builds the nested record for one tower.
func (g *Generator) Synthesize(id tower.Identity) tower.NestedRecord {
	r := g.ranges
	latency := g.intBetween(r.LatencyMinMS, r.LatencyMaxMS)
	users := g.intBetween(r.UsersMin, r.UsersMax)
	bandwidth := round2(r.BandwidthMin + g.rng.Float64()*(r.BandwidthMax-r.BandwidthMin))

	status := tower.StatusOnline
	if g.rng.Float64() < r.MaintenanceRate {
		status = tower.StatusMaintenance
	}

	return tower.NestedRecord{
		TowerID:  id.TowerID,
		Location: id.Neighborhood,
		Metrics: &tower.Metrics{
			LatencyMS:      &latency,
			ActiveUsers:    &users,
			BandwidthUsage: &bandwidth,
		},
		Status: status,
	}
}

// SynthesizeAll builds one nested record per identity, preserving order.
func (g *Generator) SynthesizeAll(ids []tower.Identity) []tower.NestedRecord {
	recs := make([]tower.NestedRecord, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, g.Synthesize(id))
	}
	return recs
}

func (g *Generator) intBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
