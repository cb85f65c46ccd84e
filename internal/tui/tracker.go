package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jtd-117/bitbooks/internal/library"
)

type trackerMode int

const (
	modeBrowse trackerMode = iota
	modeAdd
)

// trackerModel drives the interactive session: a book list in browse mode,
// an embedded add form otherwise. The model owns the collection for the
// lifetime of the program.
type trackerModel struct {
	col       *library.Collection
	criterion library.Criterion
	list      list.Model
	keys      trackerKeys
	mode      trackerMode
	form      addFormModel
	activeCmd string
	status    string
	quitting  bool
}

func newTracker(col *library.Collection, criterion library.Criterion) trackerModel {
	keys := newTrackerKeys()

	l := list.New(booksToItems(col.Books()), bookDelegate{}, 0, 0)
	l.Title = listTitle(criterion, col.Len())
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp
	l.AdditionalShortHelpKeys = keys.ShortHelp
	l.AdditionalFullHelpKeys = keys.ShortHelp

	return trackerModel{
		col:       col,
		criterion: criterion,
		list:      l,
		keys:      keys,
	}
}

func (m trackerModel) Init() tea.Cmd {
	return nil
}

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := StyleBorder.GetFrameSize()
		// Leave room for the footer and status lines below the border.
		m.list.SetSize(msg.Width-h, msg.Height-v-2)
		return m, nil

	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil
	}

	if m.mode == modeAdd {
		return m.updateAdd(msg)
	}
	return m.updateBrowse(msg)
}

func (m trackerModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Add):
			m.mode = modeAdd
			m.form = newAddForm()
			return m, m.form.Init()

		case key.Matches(keyMsg, m.keys.Delete):
			if it, ok := m.list.SelectedItem().(bookItem); ok {
				b := it.book
				m.col.Delete(b.Title, b.Author, b.Pages)
				m.refresh()
				m.status = fmt.Sprintf("deleted %q", b.Title)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Toggle):
			if it, ok := m.list.SelectedItem().(bookItem); ok {
				b := it.book
				if updated, found := m.col.ToggleRead(b.Title, b.Author, b.Pages); found {
					m.refresh()
					if updated.HasRead {
						m.status = fmt.Sprintf("%q marked read", updated.Title)
					} else {
						m.status = fmt.Sprintf("%q marked unread", updated.Title)
					}
				}
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Sort):
			m.criterion = m.criterion.Next()
			m.col.SortBy(m.criterion)
			m.refresh()
			m.status = fmt.Sprintf("sorted by %s", m.criterion)
			m.activeCmd = "s"
			return m, HighlightCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m trackerModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if m.form.canceled {
		m.mode = modeBrowse
		m.status = "add canceled"
		return m, nil
	}

	if m.form.done {
		in := m.form.result
		b, added, err := m.col.Add(in)
		m.mode = modeBrowse
		switch {
		case err != nil:
			// The form validates before submitting; this is a safety net.
			m.status = err.Error()
		case !added:
			m.status = fmt.Sprintf("already tracking %q by %s", in.Title, in.Author)
		default:
			m.refresh()
			m.status = fmt.Sprintf("added %q by %s", b.Title, b.Author)
		}
		return m, nil
	}

	return m, cmd
}

// refresh rebuilds the list items from the collection snapshot.
func (m *trackerModel) refresh() {
	m.list.SetItems(booksToItems(m.col.Books()))
	m.list.Title = listTitle(m.criterion, m.col.Len())
}

func (m trackerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.mode == modeAdd {
		return m.form.View()
	}

	shortcuts := []ShortcutEntry{
		{Key: "a", Label: "a add"},
		{Key: "d", Label: "d delete"},
		{Key: "t", Label: "space toggle"},
		{Key: "s", Label: "s sort: " + string(m.criterion)},
		{Key: "q", Label: "q quit"},
	}
	footer := RenderFooterBar(shortcuts, m.activeCmd)

	status := ""
	if m.status != "" {
		status = StyleHelp.Render(m.status)
	}

	return StyleBorder.Render(m.list.View()) + "\n" + footer + "\n" + status
}

func listTitle(criterion library.Criterion, count int) string {
	return fmt.Sprintf("Library — %d book(s), by %s", count, criterion)
}

func booksToItems(books []library.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = bookItem{book: b}
	}
	return items
}

// RunTracker launches the interactive tracker over the given collection.
// The collection reflects every mutation made during the session when the
// program exits.
func RunTracker(col *library.Collection, criterion library.Criterion) error {
	p := tea.NewProgram(newTracker(col, criterion), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
