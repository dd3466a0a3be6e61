package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	PrevYear  key.Binding
	NextYear  key.Binding
	Today     key.Binding
	Year      key.Binding
	Month     key.Binding
	Choose    key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
	PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "prev month")),
	NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "next month")),
	PrevYear:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{", "prev year")),
	NextYear:  key.NewBinding(key.WithKeys("}"), key.WithHelp("}", "next year")),
	Today:     key.NewBinding(key.WithKeys("."), key.WithHelp(".", "today")),
	Year:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "go to year")),
	Month:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "go to month")),
	Choose:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
	Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Today, k.Choose, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PrevMonth, k.NextMonth, k.PrevYear, k.NextYear},
		{k.Today, k.Year, k.Month},
		{k.Choose, k.Quit},
	}
}
