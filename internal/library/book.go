package library

import (
	"fmt"
	"strings"
	"time"
)

// Book is one tracked title in the collection. Its identity within a
// collection is the (Title, Author, Pages) triple; AddedAt is set once at
// creation and never changes.
type Book struct {
	Title   string
	Author  string
	Pages   int
	HasRead bool
	AddedAt time.Time
}

// Input holds the caller-supplied fields for a new Book. It is the validated
// boundary: a Book is only ever constructed from an Input that passed
// Validate.
type Input struct {
	Title   string
	Author  string
	Pages   int
	HasRead bool
}

// ValidationError reports the first field of an Input that failed its
// constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the Input constraints: title and author must be non-empty,
// pages must be non-negative. Returns a *ValidationError for the first
// violation, nil if the input is well-formed.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Author) == "" {
		return &ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if in.Pages < 0 {
		return &ValidationError{Field: "pages", Reason: "must not be negative"}
	}
	return nil
}

// matches reports whether the book carries the given identity triple.
func (b Book) matches(title, author string, pages int) bool {
	return b.Title == title && b.Author == author && b.Pages == pages
}
