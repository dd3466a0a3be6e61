package tui

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lululau/fastcal/internal/calendar"
	"github.com/lululau/fastcal/internal/dates"
	"github.com/lululau/fastcal/internal/render"
)

var (
	noColorMode bool // Global flag to disable all color output
)

// SetNoColor sets the global no-color flag
func SetNoColor(disable bool) {
	noColorMode = disable
}

type inputMode int

const (
	inputNone inputMode = iota
	inputYear
	inputMonth
)

// Options configures the picker.
type Options struct {
	// Years limits the year prompt; empty allows any year.
	Years []string
	// ShowFullHelp lists every key binding instead of the short form.
	ShowFullHelp bool
}

// Run starts the interactive picker on cal and returns the chosen date.
// ok is false when the user quits without choosing.
func Run(cal *calendar.FastCalendar, opts Options) (chosen time.Time, ok bool, err error) {
	if cal == nil {
		cal = calendar.New()
	}
	m := newModel(cal, opts)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return time.Time{}, false, err
	}
	fm := final.(model)
	if !fm.chosen {
		return time.Time{}, false, nil
	}
	sel, _ := fm.cal.SelectedDate()
	return sel, true, nil
}

type model struct {
	cal       *calendar.FastCalendar
	years     []string
	inputMode inputMode
	input     textinput.Model
	help      help.Model
	statusMsg string
	chosen    bool
}

func newModel(cal *calendar.FastCalendar, opts Options) model {
	ti := textinput.New()
	ti.CharLimit = 16
	ti.Prompt = "> "
	h := help.New()
	h.ShowAll = opts.ShowFullHelp
	return model{
		cal:   cal,
		years: opts.Years,
		input: ti,
		help:  h,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if m.inputMode != inputNone {
			return m.handleInputKey(msg)
		}
		m.statusMsg = ""
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Choose):
			if _, ok := m.cal.SelectedDate(); !ok {
				m.statusMsg = "nothing selected"
				return m, nil
			}
			m.chosen = true
			return m, tea.Quit
		case key.Matches(msg, keys.Left):
			m.moveSelection(-1)
		case key.Matches(msg, keys.Right):
			m.moveSelection(1)
		case key.Matches(msg, keys.Up):
			m.moveSelection(-calendar.DaysPerWeek)
		case key.Matches(msg, keys.Down):
			m.moveSelection(calendar.DaysPerWeek)
		case key.Matches(msg, keys.PrevMonth):
			m.cal.PrevMonth()
		case key.Matches(msg, keys.NextMonth):
			m.cal.NextMonth()
		case key.Matches(msg, keys.PrevYear):
			m.cal.PrevYear()
		case key.Matches(msg, keys.NextYear):
			m.cal.NextYear()
		case key.Matches(msg, keys.Today):
			m.cal.Today()
			m.cal.SetSelectedDate(m.cal.Date())
		case key.Matches(msg, keys.Year):
			m.activateInput(inputYear, m.cal.Year())
		case key.Matches(msg, keys.Month):
			m.activateInput(inputMonth, m.cal.MonthShort())
		}
	}
	return m, nil
}

// moveSelection shifts the selection by n days, starting from the first of
// the month in view when the selection is elsewhere, and follows it into
// the adjacent month.
func (m *model) moveSelection(n int) {
	view := m.cal.Date()
	base := dates.StartOfMonth(view)
	if sel, ok := m.cal.SelectedDate(); ok && dates.SameMonth(sel, view) {
		base = dates.AddDays(dates.Midnight(sel), n)
	}
	m.cal.SetSelectedDate(base)
	if !dates.SameMonth(base, view) {
		m.cal.SetMonth(base.Year(), base.Month())
	}
}

func (m model) View() string {
	if m.inputMode != inputNone {
		return m.inputView()
	}

	block := render.BuildMonthBlock(m.cal)
	sb := strings.Builder{}
	sb.WriteString(strings.Join(block.Lines, "\n"))
	sb.WriteString("\n")
	if sel, ok := m.cal.SelectedDate(); ok {
		sb.WriteString("\nselected: " + sel.Format("Mon, 02 Jan 2006"))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(keys))
	if m.statusMsg != "" {
		sb.WriteString("\n")
		if noColorMode {
			sb.WriteString(m.statusMsg)
		} else {
			sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")).Render(m.statusMsg))
		}
	}
	return sb.String()
}

func (m model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.inputMode = inputNone
		m.statusMsg = ""
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.applyInput()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) activateInput(mode inputMode, placeholder string) {
	m.inputMode = mode
	m.input.SetValue("")
	m.input.Placeholder = placeholder
	m.input.CursorEnd()
	m.input.Focus()
	m.statusMsg = ""
}

func (m *model) applyInput() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.statusMsg = "enter a value"
		return
	}
	view := m.cal.Date()
	switch m.inputMode {
	case inputYear:
		fields := strings.Fields(value)
		if len(fields) > 2 {
			m.statusMsg = "expected: year [month]"
			return
		}
		year, err := strconv.Atoi(fields[0])
		if err != nil {
			m.statusMsg = "invalid year"
			return
		}
		if len(m.years) > 0 && !slices.Contains(m.years, dates.YearString(dates.FromComponents(year, 1, 1))) {
			m.statusMsg = "year must be between " + m.years[0] + " and " + m.years[len(m.years)-1]
			return
		}
		month := view.Month()
		if len(fields) == 2 {
			var mm datetime.Month
			if err := mm.Parse(fields[1]); err != nil {
				m.statusMsg = "invalid month"
				return
			}
			month = time.Month(mm)
		}
		m.cal.SetMonth(year, month)
	case inputMonth:
		var mm datetime.Month
		if err := mm.Parse(value); err != nil {
			m.statusMsg = "month must be 1-12 or a month name"
			return
		}
		m.cal.SetMonth(view.Year(), time.Month(mm))
	}
	m.statusMsg = ""
	m.inputMode = inputNone
	m.input.Blur()
}

func (m model) inputView() string {
	var label string
	switch m.inputMode {
	case inputYear:
		label = "Year, optionally followed by a month (enter to confirm, esc to cancel)"
	case inputMonth:
		label = "Month, 1-12 or a name such as \"mar\" (enter to confirm, esc to cancel)"
	default:
		return ""
	}
	if noColorMode {
		return label + "\n\n" + m.input.View()
	}
	return lipgloss.NewStyle().
		Bold(true).
		Render(label) + "\n\n" + m.input.View()
}
