package keyboard

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Copy      key.Binding
	Clear     key.Binding
	Activate  key.Binding
	Quit      key.Binding
}

func New() Map {
	return Map{
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "format & copy"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "activate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp satisfies help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Copy, m.Clear, m.NextFocus, m.Quit}
}

// FullHelp satisfies help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Copy, m.Clear},
		{m.NextFocus, m.PrevFocus, m.Activate},
		{m.Quit},
	}
}
