package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"towerstress/internal/tower"
)

// Chart file names rendered under the charts directory.
const (
	ScoreChartFile   = "stress_scores.html"
	ScatterChartFile = "latency_vs_users.html"
)

// ChartWriter renders the two report charts as standalone HTML files: a bar
// chart of stress scores with the high-risk threshold marked, and a
// latency-vs-users scatter split by tower status.
type ChartWriter struct {
	Dir string
}

// NewChartWriter creates a ChartWriter rendering into dir.
func NewChartWriter(dir string) *ChartWriter {
	return &ChartWriter{Dir: dir}
}

type chart interface {
	Render(w io.Writer) error
}

// WriteReport renders both charts.
func (w *ChartWriter) WriteReport(r *Report) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}
	if err := w.renderScoreBar(r); err != nil {
		return fmt.Errorf("render score chart: %w", err)
	}
	if err := w.renderScatter(r); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	return nil
}

func (w *ChartWriter) renderScoreBar(r *Report) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Tower Stress Scores",
			Subtitle: fmt.Sprintf("high-risk threshold: %.0f", r.Summary.Threshold),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "stress score"}),
	)

	ids := make([]string, len(r.Rows))
	data := make([]opts.BarData, len(r.Rows))
	for i, row := range r.Rows {
		ids[i] = row.TowerID
		data[i] = opts.BarData{Value: row.StressScore}
	}
	bar.SetXAxis(ids).AddSeries("stress score", data,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "high-risk threshold",
			YAxis: r.Summary.Threshold,
		}),
	)

	return renderTo(bar, filepath.Join(w.Dir, ScoreChartFile))
}

func (w *ChartWriter) renderScatter(r *Report) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Latency vs Active Users"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "latency (ms)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "active users", Type: "value"}),
	)

	byStatus := map[string][]opts.ScatterData{}
	for _, row := range r.Rows {
		byStatus[row.Status] = append(byStatus[row.Status], opts.ScatterData{
			Value:      []interface{}{row.Latency, row.Users},
			SymbolSize: 10,
		})
	}
	for _, status := range []string{tower.StatusOnline, tower.StatusMaintenance} {
		if data, ok := byStatus[status]; ok {
			scatter.AddSeries(status, data)
		}
	}

	return renderTo(scatter, filepath.Join(w.Dir, ScatterChartFile))
}

func renderTo(c chart, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
