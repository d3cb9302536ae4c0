package history

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recorddto "daytrack/internal/modules/record/dto"
	"daytrack/internal/platform/parse"
	"daytrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RecordPort interface {
	List(ctx context.Context, input recorddto.ListInput) ([]recorddto.RecordOutput, error)
	ListYearMonth(ctx context.Context, input recorddto.YearMonthInput) ([]recorddto.RecordOutput, error)
	Delete(ctx context.Context, id int64) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type RecordsLoadedMsg struct {
	Records []recorddto.RecordOutput
	Err     error
}

type DeletedMsg struct {
	ID  int64
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port       RecordPort
	table      table.Model
	records    []recorddto.RecordOutput
	descending bool
	// year/month narrow the listing; zero year means no filter.
	year    int
	month   int
	problem string
	width   int
	height  int
}

func New(port RecordPort) Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Sleep", Width: 10},
		{Title: "Weight", Width: 8},
		{Title: "Rating", Width: 7},
		{Title: "Steps", Width: 8},
		{Title: "Calories", Width: 9},
		{Title: "Note", Width: 30},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Surface1).
		BorderBottom(true).
		Foreground(theme.Sapphire).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(theme.Peach).
		Background(theme.Surface0).
		Bold(true)
	t.SetStyles(styles)

	return Model{port: port, table: t, descending: true}
}

func (m Model) Init() tea.Cmd { return m.ReloadCmd() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(m.width)
		m.table.SetHeight(m.height - 4)

	case RecordsLoadedMsg:
		if msg.Err != nil {
			m.problem = msg.Err.Error()
			return m, nil
		}
		m.problem = ""
		m.records = msg.Records
		m.table.SetRows(m.rows())

	case DeletedMsg:
		if msg.Err != nil {
			m.problem = msg.Err.Error()
			return m, nil
		}
		m.problem = ""
		return m, m.ReloadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.ReloadCmd()
		case "o":
			m.descending = !m.descending
			return m, m.ReloadCmd()
		case "d":
			if id, ok := m.SelectedID(); ok {
				return m, m.deleteCmd(id)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	order := "newest first"
	if !m.descending {
		order = "oldest first"
	}
	if m.year > 0 {
		scope := strconv.Itoa(m.year)
		if m.month > 0 {
			scope = fmt.Sprintf("%d-%02d", m.year, m.month)
		}
		order = scope + ", " + order
	}
	header := theme.Title.Render("History") + "  " + theme.Muted.Render(order)
	footer := theme.Muted.Render("r: reload  o: flip order  d: delete selected")
	if m.problem != "" {
		footer = theme.Bad.Render("✗ " + m.problem)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), footer)
}

// SelectedID returns the id of the highlighted row, if any.
func (m Model) SelectedID() (int64, bool) {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.records) {
		return 0, false
	}
	return m.records[cursor].ID, true
}

// SetDescending overrides the sort order and reloads.
func (m *Model) SetDescending(descending bool) tea.Cmd {
	m.descending = descending
	return m.ReloadCmd()
}

// SetYearMonth narrows the listing to one year, or one month when month is
// non-zero. Zero year clears the filter.
func (m *Model) SetYearMonth(year, month int) tea.Cmd {
	m.year = year
	m.month = month
	return m.ReloadCmd()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.records))
	for _, r := range m.records {
		rows = append(rows, table.Row{
			r.Date.Format(parse.DateLayout),
			textOf(r.SleepTime),
			floatOf(r.Weight),
			intOf(r.Rating),
			intOf(r.Steps),
			intOf(r.CaloriesIntake),
			textOf(r.Note),
		})
	}
	return rows
}

// ReloadCmd refetches the record list with the current sort order and
// year-month filter.
func (m Model) ReloadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var records []recorddto.RecordOutput
		var err error
		if m.year > 0 {
			records, err = m.port.ListYearMonth(ctx, recorddto.YearMonthInput{Year: m.year, Month: m.month})
			if err == nil && m.descending {
				for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
					records[i], records[j] = records[j], records[i]
				}
			}
		} else {
			records, err = m.port.List(ctx, recorddto.ListInput{Descending: m.descending})
		}
		return RecordsLoadedMsg{Records: records, Err: err}
	}
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.port.Delete(context.Background(), id)
		return DeletedMsg{ID: id, Err: err}
	}
}

func textOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOf(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func intOf(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
