package entry

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	recorddomain "daytrack/internal/modules/record/domain"
	recorddto "daytrack/internal/modules/record/dto"
	"daytrack/internal/platform/parse"
	"daytrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type RecordPort interface {
	Upsert(ctx context.Context, input recorddto.UpsertInput) (recorddto.RecordOutput, error)
	GetByDate(ctx context.Context, date time.Time) (recorddto.RecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// SavedMsg bubbles up to the app model so it can refresh history and show a
// status line.
type SavedMsg struct {
	Record recorddto.RecordOutput
	Err    error
}

type loadedMsg struct {
	record recorddto.RecordOutput
	err    error
}

// ─── field index ─────────────────────────────────────────────────────────────

const (
	fieldDate = iota
	fieldSleep
	fieldWeight
	fieldRating
	fieldSteps
	fieldCalories
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"date", "sleep", "weight", "rating", "steps", "calories", "note",
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    RecordPort
	inputs  [fieldCount]textinput.Model
	focus   int
	problem string
	width   int
	height  int
}

func New(port RecordPort) Model {
	m := Model{port: port}
	placeholders := [fieldCount]string{
		"2006-01-02", "23:30", "65.5", "1-10", "8000", "2000", "optional note",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Prompt = ""
		m.inputs[i] = ti
	}
	m.inputs[fieldDate].SetValue(time.Now().Format(parse.DateLayout))
	m.inputs[fieldDate].Focus()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		if msg.err != nil {
			// No stored record for that date; leave the form as typed.
			return m, nil
		}
		m.fillFrom(msg.record)
		return m, nil

	case SavedMsg:
		if msg.Err != nil {
			m.problem = msg.Err.Error()
		} else {
			m.problem = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "shift+tab":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case "enter":
			if m.focus == fieldDate {
				// Leaving the date field pre-loads whatever is already stored
				// for that day.
				m.setFocus(fieldSleep)
				return m, m.loadCmd()
			}
			if m.focus == fieldNote {
				return m, m.saveCmd()
			}
			m.setFocus(m.focus + 1)
			return m, nil
		case "ctrl+s":
			return m, m.saveCmd()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Daily Entry") + "\n\n")
	for i := range m.inputs {
		label := fieldLabels[i]
		style := theme.Muted
		cursor := "  "
		if i == m.focus {
			style = theme.Hot
			cursor = "❯ "
		}
		sb.WriteString(cursor + style.Render(padLabel(label)) + m.inputs[i].View() + "\n")
	}
	sb.WriteString("\n")
	if m.problem != "" {
		sb.WriteString(theme.Bad.Render("✗ "+m.problem) + "\n")
	}
	sb.WriteString(theme.Muted.Render("enter: next field  ctrl+s: save  ↑/↓: move"))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Padding(1, 2).
		Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func padLabel(label string) string {
	return label + strings.Repeat(" ", 10-len(label))
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) fillFrom(r recorddto.RecordOutput) {
	set := func(i int, v string) { m.inputs[i].SetValue(v) }
	set(fieldSleep, deref(r.SleepTime))
	if r.Weight != nil {
		set(fieldWeight, strconv.FormatFloat(*r.Weight, 'f', -1, 64))
	} else {
		set(fieldWeight, "")
	}
	set(fieldRating, intText(r.Rating))
	set(fieldSteps, intText(r.Steps))
	set(fieldCalories, intText(r.CaloriesIntake))
	set(fieldNote, deref(r.Note))
}

// validate parses the form into an upsert input, reporting the first field
// that cannot be read.
func (m Model) validate() (recorddto.UpsertInput, string) {
	date, err := parse.Date(strings.TrimSpace(m.inputs[fieldDate].Value()))
	if err != nil {
		return recorddto.UpsertInput{}, "date must be YYYY-MM-DD"
	}
	sleep, ok := parse.SleepTime(m.inputs[fieldSleep].Value())
	if !ok {
		return recorddto.UpsertInput{}, "sleep must be HH:MM or HH:MM:SS"
	}
	weight, ok := parse.OptionalFloat(m.inputs[fieldWeight].Value())
	if !ok {
		return recorddto.UpsertInput{}, "weight must be a number"
	}
	rating, ok := parse.OptionalInt(m.inputs[fieldRating].Value())
	if !ok {
		return recorddto.UpsertInput{}, "rating must be a number"
	}
	if err := recorddomain.ValidateRating(rating); err != nil {
		return recorddto.UpsertInput{}, "rating must be between 1 and 10"
	}
	steps, ok := parse.OptionalInt(m.inputs[fieldSteps].Value())
	if !ok {
		return recorddto.UpsertInput{}, "steps must be a number"
	}
	calories, ok := parse.OptionalInt(m.inputs[fieldCalories].Value())
	if !ok {
		return recorddto.UpsertInput{}, "calories must be a number"
	}
	return recorddto.UpsertInput{
		Date: date,
		Fields: recorddto.FieldsInput{
			SleepTime:      sleep,
			Weight:         weight,
			Rating:         rating,
			Steps:          steps,
			CaloriesIntake: calories,
			Note:           parse.OptionalText(m.inputs[fieldNote].Value()),
		},
	}, ""
}

func (m Model) saveCmd() tea.Cmd {
	input, problem := m.validate()
	if problem != "" {
		return func() tea.Msg { return SavedMsg{Err: errText(problem)} }
	}
	return func() tea.Msg {
		record, err := m.port.Upsert(context.Background(), input)
		return SavedMsg{Record: record, Err: err}
	}
}

func (m Model) loadCmd() tea.Cmd {
	date, err := parse.Date(strings.TrimSpace(m.inputs[fieldDate].Value()))
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		record, err := m.port.GetByDate(context.Background(), date)
		return loadedMsg{record: record, err: err}
	}
}

type errText string

func (e errText) Error() string { return string(e) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
