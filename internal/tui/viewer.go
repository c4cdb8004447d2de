// Bubbletea viewer for rendered stress reports
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"towerstress/internal/stress"
)

var (
	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	highRiskStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is a scrollable table over a finished report.
type Model struct {
	table     table.Model
	threshold float64
	rowCount  int
	highRisk  int
}

// NewModel builds the viewer model. Rows are expected pre-sorted by the
// reporter; the viewer does not reorder them.
func NewModel(rows []stress.Row, threshold float64) Model {
	columns := []table.Column{
		{Title: "Tower_ID", Width: 10},
		{Title: "Neighborhood", Width: 14},
		{Title: "Status", Width: 12},
		{Title: "Latency", Width: 8},
		{Title: "Users", Width: 8},
		{Title: "Bandwidth_Pct", Width: 14},
		{Title: "Stress_Score", Width: 13},
		{Title: "Risk", Width: 6},
	}

	tableRows := make([]table.Row, 0, len(rows))
	highRisk := 0
	for _, r := range rows {
		risk := ""
		if r.StressScore > threshold {
			risk = highRiskStyle.Render("HIGH")
			highRisk++
		}
		tableRows = append(tableRows, table.Row{
			r.TowerID,
			r.Neighborhood,
			r.Status,
			fmt.Sprintf("%d", r.Latency),
			fmt.Sprintf("%d", r.Users),
			fmt.Sprintf("%.2f", r.BandwidthPct),
			fmt.Sprintf("%.2f", r.StressScore),
			risk,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return Model{table: t, threshold: threshold, rowCount: len(rows), highRisk: highRisk}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := msg.Height - 6
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := fmt.Sprintf("Tower Stress Report: %d towers, %d high-risk (> %.0f)",
		m.rowCount, m.highRisk, m.threshold)
	help := helpStyle.Render("↑/↓: scroll • q: quit")
	return header + "\n" + baseStyle.Render(m.table.View()) + "\n" + help + "\n"
}

// Run opens the viewer in the alternate screen and blocks until quit.
func Run(rows []stress.Row, threshold float64) error {
	p := tea.NewProgram(NewModel(rows, threshold), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
