package chart

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	chartdto "daytrack/internal/modules/chart/dto"
	recorddomain "daytrack/internal/modules/record/domain"
	"daytrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ChartPort interface {
	Render(ctx context.Context, metric string) (chartdto.ChartOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ChartLoadedMsg struct {
	Chart chartdto.ChartOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ChartPort
	body     viewport.Model
	metrics  []recorddomain.Metric
	selected int
	chart    chartdto.ChartOutput
	problem  string
	width    int
	height   int
}

func New(port ChartPort, defaultMetric string) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	m := Model{
		port:    port,
		body:    vp,
		metrics: recorddomain.Metrics(),
	}
	for i, candidate := range m.metrics {
		if string(candidate) == defaultMetric {
			m.selected = i
			break
		}
	}
	return m
}

func (m Model) Init() tea.Cmd { return m.LoadCmd() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = m.width - 2
		m.body.Height = m.height - 3

	case ChartLoadedMsg:
		if msg.Err != nil {
			m.problem = msg.Err.Error()
			return m, nil
		}
		m.problem = ""
		m.chart = msg.Chart
		m.body.SetContent(m.renderChart())

	case tea.KeyMsg:
		if msg.String() == "m" {
			m.selected = (m.selected + 1) % len(m.metrics)
			return m, m.LoadCmd()
		}
	}

	var cmd tea.Cmd
	m.body, cmd = m.body.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	header := theme.Title.Render("Chart") + "  " + theme.Muted.Render(string(m.metric()))
	footer := theme.Muted.Render("m: next metric")
	if m.problem != "" {
		footer = theme.Bad.Render("✗ " + m.problem)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.body.View(), footer)
}

// SelectMetric switches to a named metric and reloads.
func (m *Model) SelectMetric(metric string) tea.Cmd {
	for i, candidate := range m.metrics {
		if string(candidate) == metric {
			m.selected = i
			return m.LoadCmd()
		}
	}
	m.problem = "unknown metric: " + metric
	return nil
}

// LoadCmd refetches the chart for the selected metric.
func (m Model) LoadCmd() tea.Cmd {
	metric := string(m.metric())
	return func() tea.Msg {
		chart, err := m.port.Render(context.Background(), metric)
		return ChartLoadedMsg{Chart: chart, Err: err}
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) metric() recorddomain.Metric {
	return m.metrics[m.selected]
}

const barWidth = 40

// renderChart draws one horizontal bar per point, scaled to the series
// maximum, with the axis plan summarized underneath.
func (m Model) renderChart() string {
	c := m.chart
	if c.NoData {
		return theme.Muted.Render("No data for " + c.Title)
	}

	maxValue := c.Points[0].Value
	for _, p := range c.Points {
		if p.Value > maxValue {
			maxValue = p.Value
		}
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(c.Title) + "\n\n")
	for _, p := range c.Points {
		width := 0
		if maxValue > 0 {
			width = int(p.Value / maxValue * barWidth)
		}
		if width < 1 && p.Value > 0 {
			width = 1
		}
		sb.WriteString(fmt.Sprintf("%s %s %s\n",
			theme.Muted.Render(p.Date.Format(c.LabelFormat)),
			theme.Hot.Render(strings.Repeat("█", width)),
			fmt.Sprintf("%.1f", p.Value)))
	}

	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf(
		"axis: every %d %s(s), %d major ticks, labels rotated %d°",
		c.MajorInterval, c.MajorUnit, len(c.MajorTicks), c.LabelRotation)))
	return sb.String()
}
