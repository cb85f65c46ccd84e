// Package library implements the in-memory book collection: an ordered,
// mutable sequence of books with add, delete, toggle, and sort-by-criterion
// operations. The collection lives for one session and is never persisted.
package library

import (
	"sort"
	"time"
)

// Collection is an ordered in-memory sequence of Books. Insertion order is
// the default order until SortBy reorders it. A Collection is owned by a
// single goroutine (the UI loop) and is not safe for concurrent use.
type Collection struct {
	books []Book
	now   func() time.Time
}

// New returns an empty collection.
func New() *Collection {
	return &Collection{now: time.Now}
}

// Add validates the input and appends a new Book with AddedAt set to the
// current time. If a book with the same (title, author, pages) triple
// already exists, nothing changes and added is false — a duplicate is an
// expected outcome, not an error. A validation failure is returned as a
// *ValidationError before any mutation.
func (c *Collection) Add(in Input) (Book, bool, error) {
	if err := in.Validate(); err != nil {
		return Book{}, false, err
	}
	for _, b := range c.books {
		if b.matches(in.Title, in.Author, in.Pages) {
			return Book{}, false, nil
		}
	}
	b := Book{
		Title:   in.Title,
		Author:  in.Author,
		Pages:   in.Pages,
		HasRead: in.HasRead,
		AddedAt: c.now(),
	}
	c.books = append(c.books, b)
	return b, true, nil
}

// Delete removes every book matching the (title, author, pages) triple and
// returns how many were removed. Deleting a missing triple is a no-op.
func (c *Collection) Delete(title, author string, pages int) int {
	kept := c.books[:0]
	removed := 0
	for _, b := range c.books {
		if b.matches(title, author, pages) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	c.books = kept
	return removed
}

// ToggleRead flips the read status of the book matching the triple. Returns
// the updated book and whether a match was found.
func (c *Collection) ToggleRead(title, author string, pages int) (Book, bool) {
	for i := range c.books {
		if c.books[i].matches(title, author, pages) {
			c.books[i].HasRead = !c.books[i].HasRead
			return c.books[i], true
		}
	}
	return Book{}, false
}

// SortBy reorders the collection in place under the given criterion. The
// sort is stable: books comparing equal keep their relative order.
func (c *Collection) SortBy(criterion Criterion) {
	sort.SliceStable(c.books, func(i, j int) bool {
		return criterion.less(c.books[i], c.books[j])
	})
}

// Books returns a snapshot of the current order. Mutating the returned slice
// does not affect the collection.
func (c *Collection) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// Len returns the number of books in the collection.
func (c *Collection) Len() int {
	return len(c.books)
}
