package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jtd-117/bitbooks/internal/library"
)

// bookItem wraps a library.Book for the bubbles list.
type bookItem struct {
	book library.Book
}

// FilterValue satisfies list.Item. List filtering is disabled in the
// tracker; the interface still requires it.
func (b bookItem) FilterValue() string {
	return b.book.Title + " " + b.book.Author
}

// Column widths for the one-line row layout.
const (
	titleWidth  = 40
	authorWidth = 24
)

// bookDelegate renders one book per row: read mark, title, author, pages.
type bookDelegate struct{}

func (d bookDelegate) Height() int                               { return 1 }
func (d bookDelegate) Spacing() int                              { return 0 }
func (d bookDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(bookItem)
	if !ok {
		return
	}

	mark := "·"
	if it.book.HasRead {
		mark = "✓"
	}

	title := padOrTruncate(it.book.Title, titleWidth)
	author := padOrTruncate(it.book.Author, authorWidth)
	pages := fmt.Sprintf("%5dp", it.book.Pages)

	if index == m.Index() {
		row := fmt.Sprintf("› %s %s %s %s", mark, title, author, pages)
		_, _ = fmt.Fprint(w, StyleHighlight.Render(row))
		return
	}

	markStyled := StyleHelp.Render(mark)
	if it.book.HasRead {
		markStyled = StyleRead.Render(mark)
	}
	_, _ = fmt.Fprintf(w, "  %s %s %s %s",
		markStyled,
		StyleNormal.Render(title),
		StyleMeta.Render(author),
		StyleHelp.Render(pages),
	)
}

// padOrTruncate fixes a string to the given display width, truncating with
// an ellipsis when it overflows.
func padOrTruncate(s string, width int) string {
	truncated := ansi.Truncate(s, width, "…")
	pad := width - ansi.StringWidth(truncated)
	if pad > 0 {
		truncated += fmt.Sprintf("%*s", pad, "")
	}
	return truncated
}
