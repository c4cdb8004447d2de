// ColorStdoutWriter prints a human-friendly, colorized report to STDOUT.
package report

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"towerstress/internal/tower"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorGray   = "\x1b[90m"
)

// ColorStdoutWriter prints report rows using ANSI colors. High-risk rows are
// red, towers in maintenance yellow.
type ColorStdoutWriter struct {
	out io.Writer
}

// NewColorStdoutWriter creates a ColorStdoutWriter writing to os.Stdout.
func NewColorStdoutWriter() *ColorStdoutWriter {
	return &ColorStdoutWriter{out: os.Stdout}
}

// WriteReport prints the summary and the sorted rows.
func (w *ColorStdoutWriter) WriteReport(r *Report) error {
	s := r.Summary
	fmt.Fprintf(w.out, "Tower Stress Report %s(run %s)%s\n", colorGray, s.RunID, colorReset)

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Towers:\t%d\n", s.TowerCount)
	fmt.Fprintf(tw, "High-Risk (> %.0f):\t%d\n", s.Threshold, s.HighRiskCount)
	fmt.Fprintf(tw, "Mean Score:\t%.2f\n", s.MeanScore)
	fmt.Fprintf(tw, "Max Score:\t%.2f\n", s.MaxScore)
	fmt.Fprintf(tw, "P95 Score:\t%.2f\n", s.P95Score)
	tw.Flush()

	fmt.Fprintln(w.out)
	tw = tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tower_ID\tNeighborhood\tStatus\tLatency\tUsers\tBandwidth_Pct\tStress_Score\n")
	for _, row := range r.Rows {
		rowColor := colorGreen
		if row.StressScore > s.Threshold {
			rowColor = colorRed
		} else if row.Status == tower.StatusMaintenance {
			rowColor = colorYellow
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%d\t%d\t%.2f\t%s%.2f%s\n",
			rowColor, row.TowerID, colorReset,
			row.Neighborhood, row.Status,
			row.Latency, row.Users, row.BandwidthPct,
			rowColor, row.StressScore, colorReset)
	}
	return tw.Flush()
}
