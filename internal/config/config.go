// YAML pipeline config with CUE validation integration
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MetricRanges bounds the synthesized metrics block.
type MetricRanges struct {
	LatencyMinMS    int     `yaml:"latency_min_ms"`
	LatencyMaxMS    int     `yaml:"latency_max_ms"`
	UsersMin        int     `yaml:"users_min"`
	UsersMax        int     `yaml:"users_max"`
	BandwidthMin    float64 `yaml:"bandwidth_min"`
	BandwidthMax    float64 `yaml:"bandwidth_max"`
	MaintenanceRate float64 `yaml:"maintenance_rate"`
}

// Report holds reporter output paths and the high-risk cutoff.
type Report struct {
	OutputCSV         string  `yaml:"output_csv"`
	ChartsDir         string  `yaml:"charts_dir"`
	HighRiskThreshold float64 `yaml:"high_risk_threshold"`
}

// PipelineConfig is the root configuration for the towerstress pipeline.
type PipelineConfig struct {
	Seed        int64        `yaml:"seed"`
	TowersCSV   string       `yaml:"towers_csv"`
	RecordsJSON string       `yaml:"records_json"`
	Metrics     MetricRanges `yaml:"metrics"`
	Report      Report       `yaml:"report"`
}

// Default returns the configuration used when a section is omitted. The
// metric ranges match the source dataset: latency 20-150ms, 500-15000
// users, 50-99% bandwidth.
func Default() *PipelineConfig {
	return &PipelineConfig{
		Seed:        42,
		TowersCSV:   "data/towers.csv",
		RecordsJSON: "data/tower_records.json",
		Metrics: MetricRanges{
			LatencyMinMS:    20,
			LatencyMaxMS:    150,
			UsersMin:        500,
			UsersMax:        15000,
			BandwidthMin:    50.0,
			BandwidthMax:    99.0,
			MaintenanceRate: 0.15,
		},
		Report: Report{
			OutputCSV:         "reports/tower_stress_report.csv",
			ChartsDir:         "reports/charts",
			HighRiskThreshold: 500,
		},
	}
}

// Load reads a YAML config, validates it against the CUE schema, and applies
// defaults for omitted sections.
func Load(configPath, cueSchemaPath string) (*PipelineConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the CUE schema cannot express cleanly:
// inverted ranges, a maintenance rate outside [0,1], a negative threshold.
func (c *PipelineConfig) Validate() error {
	m := c.Metrics
	if m.LatencyMinMS < 0 || m.LatencyMaxMS < m.LatencyMinMS {
		return fmt.Errorf("invalid latency range [%d,%d]", m.LatencyMinMS, m.LatencyMaxMS)
	}
	if m.UsersMin < 0 || m.UsersMax < m.UsersMin {
		return fmt.Errorf("invalid users range [%d,%d]", m.UsersMin, m.UsersMax)
	}
	if m.BandwidthMin < 0 || m.BandwidthMax > 100 || m.BandwidthMax < m.BandwidthMin {
		return fmt.Errorf("invalid bandwidth range [%.1f,%.1f]", m.BandwidthMin, m.BandwidthMax)
	}
	if m.MaintenanceRate < 0 || m.MaintenanceRate > 1 {
		return fmt.Errorf("maintenance rate %.2f outside [0,1]", m.MaintenanceRate)
	}
	if c.Report.HighRiskThreshold < 0 {
		return fmt.Errorf("negative high-risk threshold %.2f", c.Report.HighRiskThreshold)
	}
	if c.TowersCSV == "" {
		return fmt.Errorf("towers_csv must not be empty")
	}
	if c.RecordsJSON == "" {
		return fmt.Errorf("records_json must not be empty")
	}
	return nil
}
