package main

import (
	"github.com/spf13/cobra"

	"towerstress/internal/config"
	"towerstress/internal/logging"
	"towerstress/internal/report"
	"towerstress/internal/stress"
	"towerstress/internal/synth"
)

var (
	repConfigPath string
	repSchemaPath string
	repInput      string
	repOutput     string
	repChartsDir  string
	repThreshold  float64
	repPrint      bool
	repNoCharts   bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Flatten, score, and render the stress report",
	Long:  "report reads nested records JSON, flattens each record into a scored row, and writes the sorted CSV report, summary sidecar, and charts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New()

		cfg, err := config.Load(repConfigPath, repSchemaPath)
		if err != nil {
			return err
		}
		if repInput != "" {
			cfg.RecordsJSON = repInput
		}
		if repOutput != "" {
			cfg.Report.OutputCSV = repOutput
		}
		if repChartsDir != "" {
			cfg.Report.ChartsDir = repChartsDir
		}
		threshold := cfg.Report.HighRiskThreshold
		if cmd.Flags().Changed("threshold") {
			threshold = repThreshold
		}

		recs, err := synth.LoadRecords(cfg.RecordsJSON)
		if err != nil {
			return err
		}
		log.Info("loaded nested records", "path", cfg.RecordsJSON, "records", len(recs))

		// Fail-fast: one bad record aborts the whole report rather than
		// silently dropping a tower.
		rows, err := stress.TransformBatch(recs)
		if err != nil {
			return err
		}

		rep, err := report.Build(rows, threshold)
		if err != nil {
			return err
		}

		writer := newReportWriters(cfg.Report.OutputCSV, cfg.Report.ChartsDir, repPrint, repNoCharts)
		if err := writer.WriteReport(rep); err != nil {
			return err
		}

		log.Info("report written",
			"csv", cfg.Report.OutputCSV,
			"towers", rep.Summary.TowerCount,
			"high_risk", rep.Summary.HighRiskCount,
			"threshold", threshold,
			"max_score", rep.Summary.MaxScore)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&repConfigPath, "config", "config/pipeline.yaml", "Path to pipeline configuration YAML")
	reportCmd.Flags().StringVar(&repSchemaPath, "schema", "schemas/pipeline.cue", "Path to CUE schema file")
	reportCmd.Flags().StringVar(&repInput, "input", "", "Nested records JSON (overrides config)")
	reportCmd.Flags().StringVar(&repOutput, "output", "", "Report CSV path (overrides config)")
	reportCmd.Flags().StringVar(&repChartsDir, "charts-dir", "", "Charts output directory (overrides config)")
	reportCmd.Flags().Float64Var(&repThreshold, "threshold", 500, "High-risk score cutoff (overrides config)")
	reportCmd.Flags().BoolVar(&repPrint, "print", false, "Also print the report to STDOUT")
	reportCmd.Flags().BoolVar(&repNoCharts, "no-charts", false, "Skip chart rendering")
}
