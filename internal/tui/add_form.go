package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jtd-117/bitbooks/internal/library"
)

const (
	fieldTitle = iota
	fieldAuthor
	fieldPages
	fieldRead
	fieldCount
)

// addFormModel collects the fields for a new book. It is embedded in the
// tracker model rather than run as its own program: canceling or submitting
// returns the tracker to the list view.
type addFormModel struct {
	inputs   []textinput.Model // title, author, pages
	focused  int
	hasRead  bool
	err      error
	done     bool
	canceled bool
	result   library.Input
}

func newAddForm() addFormModel {
	m := addFormModel{
		inputs: make([]textinput.Model, 3),
	}

	const fieldWidth = 42

	m.inputs[fieldTitle] = textinput.New()
	m.inputs[fieldTitle].Placeholder = "Book title"
	m.inputs[fieldTitle].Focus()
	m.inputs[fieldTitle].CharLimit = 200
	m.inputs[fieldTitle].Width = fieldWidth
	m.inputs[fieldTitle].Prompt = "│ "

	m.inputs[fieldAuthor] = textinput.New()
	m.inputs[fieldAuthor].Placeholder = "Author name"
	m.inputs[fieldAuthor].CharLimit = 100
	m.inputs[fieldAuthor].Width = fieldWidth
	m.inputs[fieldAuthor].Prompt = "│ "

	m.inputs[fieldPages] = textinput.New()
	m.inputs[fieldPages].Placeholder = "412"
	m.inputs[fieldPages].CharLimit = 6
	m.inputs[fieldPages].Width = 8
	m.inputs[fieldPages].Prompt = "│ "

	return m
}

func (m addFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m addFormModel) Update(msg tea.Msg) (addFormModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, nil

		case "enter":
			in, err := m.collect()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.result = in
			m.done = true
			return m, nil

		case " ":
			if m.focused == fieldRead {
				m.hasRead = !m.hasRead
				return m, nil
			}

		case "tab", "down":
			return m.moveFocus(1)

		case "shift+tab", "up":
			return m.moveFocus(-1)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

// collect parses and validates the form fields into a collection input.
func (m addFormModel) collect() (library.Input, error) {
	pages := 0
	if pagesStr := m.inputs[fieldPages].Value(); pagesStr != "" {
		n, err := strconv.Atoi(pagesStr)
		if err != nil {
			return library.Input{}, fmt.Errorf("pages must be a number")
		}
		pages = n
	}

	in := library.Input{
		Title:   strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Author:  strings.TrimSpace(m.inputs[fieldAuthor].Value()),
		Pages:   pages,
		HasRead: m.hasRead,
	}
	if err := in.Validate(); err != nil {
		return library.Input{}, err
	}
	return in, nil
}

func (m addFormModel) moveFocus(delta int) (addFormModel, tea.Cmd) {
	m.focused += delta
	if m.focused < 0 {
		m.focused = fieldCount - 1
	} else if m.focused >= fieldCount {
		m.focused = 0
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focused {
			cmds[i] = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *addFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m addFormModel) View() string {
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := lipgloss.NewStyle().
		Foreground(ColorYellow).
		Bold(true).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)

	const w = 54
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder

	b.WriteString(StyleHeader.Render("Add Book"))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	labels := []string{"Title", "Author", "Pages"}
	for i, label := range labels {
		if i == m.focused {
			b.WriteString(formLabelActive.Render("› " + label))
		} else {
			b.WriteString(formLabel.Render(label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	// Read toggle row
	check := "[ ]"
	if m.hasRead {
		check = StyleRead.Render("[✓]")
	}
	if m.focused == fieldRead {
		b.WriteString(formLabelActive.Render("› Read"))
	} else {
		b.WriteString(formLabel.Render("Read"))
	}
	b.WriteString(check + StyleHelp.Render("  (space to toggle)"))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render("enter save • tab next field • esc cancel"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
