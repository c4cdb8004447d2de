package main

import (
	"towerstress/internal/report"
)

// newReportWriters assembles the report writer fan-out based on flags. The
// CSV and its summary sidecar are always written; charts and the stdout
// table are optional.
func newReportWriters(outputCSV, chartsDir string, print, noCharts bool) report.Writer {
	writers := []report.Writer{
		report.NewCSVWriter(outputCSV),
		report.NewMetaWriter(report.MetaPath(outputCSV)),
	}
	if !noCharts {
		writers = append(writers, report.NewChartWriter(chartsDir))
	}
	if print {
		writers = append(writers, report.NewColorStdoutWriter())
	}
	return report.NewMultiWriter(writers...)
}
