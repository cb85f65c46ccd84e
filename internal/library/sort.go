package library

import (
	"fmt"
	"strings"
)

// Criterion selects the sort key for SortBy. The set is closed: every
// criterion maps to one fixed stable comparator.
type Criterion string

const (
	ByAdded  Criterion = "added"
	ByTitle  Criterion = "title"
	ByAuthor Criterion = "author"
	ByPages  Criterion = "pages"
)

// Criteria lists every criterion in cycle order (the order the TUI sort key
// steps through).
var Criteria = []Criterion{ByAdded, ByTitle, ByAuthor, ByPages}

// ParseCriterion maps user input (flag, config, or script command) to a
// Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch Criterion(strings.ToLower(strings.TrimSpace(s))) {
	case ByAdded:
		return ByAdded, nil
	case ByTitle:
		return ByTitle, nil
	case ByAuthor:
		return ByAuthor, nil
	case ByPages:
		return ByPages, nil
	}
	return "", fmt.Errorf("unknown sort criterion %q (expected added, title, author, or pages)", s)
}

// Next returns the criterion after c in cycle order.
func (c Criterion) Next() Criterion {
	for i, crit := range Criteria {
		if crit == c {
			return Criteria[(i+1)%len(Criteria)]
		}
	}
	return ByAdded
}

// less compares two books under the criterion. Strings compare by codepoint
// order, pages numerically, timestamps chronologically. Unknown criteria
// fall back to insertion time.
func (c Criterion) less(a, b Book) bool {
	switch c {
	case ByTitle:
		return a.Title < b.Title
	case ByAuthor:
		return a.Author < b.Author
	case ByPages:
		return a.Pages < b.Pages
	default:
		return a.AddedAt.Before(b.AddedAt)
	}
}
