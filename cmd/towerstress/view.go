package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"towerstress/internal/stress"
	"towerstress/internal/tui"
)

var (
	viewInput     string
	viewThreshold float64
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse a rendered report in the terminal",
	Long:  "view opens a rendered stress report CSV in a scrollable table with high-risk towers highlighted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(viewInput)
		if err != nil {
			return fmt.Errorf("open report csv: %w", err)
		}
		defer f.Close()

		var rows []stress.Row
		if err := gocsv.UnmarshalFile(f, &rows); err != nil {
			return fmt.Errorf("parse report csv %s: %w", viewInput, err)
		}
		if len(rows) == 0 {
			return fmt.Errorf("report %s contains no rows", viewInput)
		}
		return tui.Run(rows, viewThreshold)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewInput, "input", "reports/tower_stress_report.csv", "Rendered report CSV to browse")
	viewCmd.Flags().Float64Var(&viewThreshold, "threshold", 500, "High-risk score cutoff for highlighting")
}
