package app

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	chartdto "daytrack/internal/modules/chart/dto"
	recorddto "daytrack/internal/modules/record/dto"
	"daytrack/internal/platform/parse"
	"daytrack/internal/ui/components"
	"daytrack/internal/ui/theme"
	chartview "daytrack/internal/ui/views/chart"
	entryview "daytrack/internal/ui/views/entry"
	historyview "daytrack/internal/ui/views/history"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type recordPort interface {
	Upsert(ctx context.Context, input recorddto.UpsertInput) (recorddto.RecordOutput, error)
	GetByDate(ctx context.Context, date time.Time) (recorddto.RecordOutput, error)
	List(ctx context.Context, input recorddto.ListInput) ([]recorddto.RecordOutput, error)
	ListYearMonth(ctx context.Context, input recorddto.YearMonthInput) ([]recorddto.RecordOutput, error)
	Delete(ctx context.Context, id int64) error
}

type chartPort interface {
	Render(ctx context.Context, metric string) (chartdto.ChartOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabEntry tabID = iota
	tabHistory
	tabChart
	tabCount
)

var tabLabels = [tabCount]string{"Entry", "History", "Chart"}

// ─── async messages ───────────────────────────────────────────────────────────

type recordDeletedMsg struct {
	id  int64
	err error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Save    key.Binding
	Reload  key.Binding
	Order   key.Binding
	Metric  key.Binding
	Delete  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save entry")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload history")),
		Order:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "flip order")),
		Metric:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "next metric")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete record")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Save},
		{k.Reload, k.Order, k.Delete, k.Metric},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global help
// overlay, and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	record recordPort

	entryView   entryview.Model
	historyView historyview.Model
	chartView   chartview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(record recordPort, chart chartPort, defaultMetric string) Model {
	return Model{
		record:      record,
		entryView:   entryview.New(recordPortBridge{p: record}),
		historyView: historyview.New(recordPortBridge{p: record}),
		chartView:   chartview.New(chart, defaultMetric),
		activeTab:   tabEntry,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.entryView.Init(),
		m.historyView.Init(),
		m.chartView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// SavedMsg is produced by the entry view but bubbles up through the top
	// level so we can refresh history and update the status line.
	case entryview.SavedMsg:
		if msg.Err != nil {
			m.status = "save failed: " + msg.Err.Error()
		} else {
			m.status = "saved " + msg.Record.Date.Format(parse.DateLayout)
			cmds = append(cmds, m.historyView.ReloadCmd(), m.chartView.LoadCmd())
		}
		var cmd tea.Cmd
		m.entryView, cmd = m.entryView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case recordDeletedMsg:
		if msg.err != nil {
			m.status = "delete failed: " + msg.err.Error()
		} else {
			m.status = "deleted record " + strconv.FormatInt(msg.id, 10)
			cmds = append(cmds, m.historyView.ReloadCmd())
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// The entry form owns nearly all keys while active; only the tab
		// cycle, help, palette, and quit stay global there.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.activeTab != tabEntry {
				return m, tea.Quit
			}
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "?":
			if m.activeTab != tabEntry {
				m.showHelp = !m.showHelp
				return m, nil
			}
		case ":":
			if m.activeTab != tabEntry {
				return m, m.palette.Open()
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabEntry:
		m.entryView, tabCmd = m.entryView.Update(msg)
	case tabHistory:
		m.historyView, tabCmd = m.historyView.Update(msg)
	case tabChart:
		m.chartView, tabCmd = m.chartView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabEntry:
		return m.entryView.View()
	case tabHistory:
		return m.historyView.View()
	case tabChart:
		return m.chartView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "daytrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch {
	case strings.HasPrefix(parts[0], "chart:"):
		metric := strings.TrimPrefix(parts[0], "chart:")
		m.activeTab = tabChart
		return m, m.chartView.SelectMetric(metric)

	case parts[0] == "history:asc":
		m.activeTab = tabHistory
		return m, m.historyView.SetDescending(false)

	case parts[0] == "history:desc":
		m.activeTab = tabHistory
		return m, m.historyView.SetDescending(true)

	case parts[0] == "history:reload":
		m.activeTab = tabHistory
		return m, m.historyView.ReloadCmd()

	case parts[0] == "history:year":
		if len(parts) < 2 {
			m.status = "usage: history:year <year> [month]"
			return m, nil
		}
		year, err := strconv.Atoi(parts[1])
		if err != nil || year < 1 {
			m.status = "invalid year"
			return m, nil
		}
		month := 0
		if len(parts) >= 3 {
			if month, err = strconv.Atoi(parts[2]); err != nil || month < 1 || month > 12 {
				m.status = "invalid month"
				return m, nil
			}
		}
		m.activeTab = tabHistory
		return m, m.historyView.SetYearMonth(year, month)

	case parts[0] == "history:all":
		m.activeTab = tabHistory
		return m, m.historyView.SetYearMonth(0, 0)

	case parts[0] == "record:delete":
		if len(parts) < 2 {
			m.status = "usage: record:delete <id>"
			return m, nil
		}
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			m.status = "invalid id"
			return m, nil
		}
		return m, m.deleteRecordCmd(id)

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.entryView, _ = m.entryView.Update(sz)
	m.historyView, _ = m.historyView.Update(sz)
	m.chartView, _ = m.chartView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) deleteRecordCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.record.Delete(context.Background(), id)
		return recordDeletedMsg{id: id, err: err}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// The bridge narrows the broad record port to the minimal interfaces needed
// by the entry and history views.

type recordPortBridge struct{ p recordPort }

func (b recordPortBridge) Upsert(ctx context.Context, input recorddto.UpsertInput) (recorddto.RecordOutput, error) {
	return b.p.Upsert(ctx, input)
}

func (b recordPortBridge) GetByDate(ctx context.Context, date time.Time) (recorddto.RecordOutput, error) {
	return b.p.GetByDate(ctx, date)
}

func (b recordPortBridge) List(ctx context.Context, input recorddto.ListInput) ([]recorddto.RecordOutput, error) {
	return b.p.List(ctx, input)
}

func (b recordPortBridge) ListYearMonth(ctx context.Context, input recorddto.YearMonthInput) ([]recorddto.RecordOutput, error) {
	return b.p.ListYearMonth(ctx, input)
}

func (b recordPortBridge) Delete(ctx context.Context, id int64) error {
	return b.p.Delete(ctx, id)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
