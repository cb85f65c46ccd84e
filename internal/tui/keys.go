package tui

import "github.com/charmbracelet/bubbles/key"

// trackerKeys are the key bindings for the tracker list view.
type trackerKeys struct {
	Add    key.Binding
	Delete key.Binding
	Toggle key.Binding
	Sort   key.Binding
	Quit   key.Binding
}

func newTrackerKeys() trackerKeys {
	return trackerKeys{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle read"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the list's short help line.
func (k trackerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Toggle, k.Sort, k.Quit}
}
