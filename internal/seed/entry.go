// Package seed reads and writes YAML book lists. A seed file populates the
// collection at session start; the same format backs the script mode's YAML
// output. Seeding is an input mechanism — the collection itself is never
// written back to disk.
package seed

import "github.com/jtd-117/bitbooks/internal/library"

// Entry is one book in a seed file.
type Entry struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Pages  int    `yaml:"pages"`
	Read   bool   `yaml:"read,omitempty"`
}

// Input converts the entry to a collection input.
func (e Entry) Input() library.Input {
	return library.Input{
		Title:   e.Title,
		Author:  e.Author,
		Pages:   e.Pages,
		HasRead: e.Read,
	}
}

// FromBooks converts a book snapshot to entries, preserving order.
func FromBooks(books []library.Book) []Entry {
	out := make([]Entry, len(books))
	for i, b := range books {
		out[i] = Entry{Title: b.Title, Author: b.Author, Pages: b.Pages, Read: b.HasRead}
	}
	return out
}
