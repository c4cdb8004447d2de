package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"towerstress/internal/config"
	"towerstress/internal/logging"
	"towerstress/internal/source"
	"towerstress/internal/synth"
)

var (
	genConfigPath string
	genSchemaPath string
	genTowersCSV  string
	genOut        string
	genSeed       int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Synthesize nested tower telemetry records",
	Long:  "generate loads the tower identity CSV, attaches randomized metrics to each tower, and writes the nested records as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New()

		cfg, err := config.Load(genConfigPath, genSchemaPath)
		if err != nil {
			return err
		}
		if genTowersCSV != "" {
			cfg.TowersCSV = genTowersCSV
		}
		if genOut != "" {
			cfg.RecordsJSON = genOut
		}

		seed := cfg.Seed
		if cmd.Flags().Changed("seed") {
			seed = genSeed
		}
		if envSeed := os.Getenv("SEED"); envSeed != "" {
			s, err := strconv.ParseInt(envSeed, 10, 64)
			if err != nil {
				return err
			}
			seed = s
		}

		towers, err := source.LoadTowers(cfg.TowersCSV)
		if err != nil {
			return err
		}
		log.Info("loaded tower identities", "path", cfg.TowersCSV, "towers", len(towers))

		recs := synth.NewGenerator(cfg.Metrics, seed).SynthesizeAll(towers)
		if err := synth.SaveRecords(cfg.RecordsJSON, recs); err != nil {
			return err
		}
		log.Info("synthesized nested records", "path", cfg.RecordsJSON, "records", len(recs), "seed", seed)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "config/pipeline.yaml", "Path to pipeline configuration YAML")
	generateCmd.Flags().StringVar(&genSchemaPath, "schema", "schemas/pipeline.cue", "Path to CUE schema file")
	generateCmd.Flags().StringVar(&genTowersCSV, "towers", "", "Tower identity CSV (overrides config)")
	generateCmd.Flags().StringVar(&genOut, "out", "", "Output path for nested records JSON (overrides config)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (overrides config)")
}
