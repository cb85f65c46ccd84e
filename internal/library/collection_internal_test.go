package library

import (
	"testing"
	"time"
)

// fakeClock hands out strictly increasing timestamps so chronological
// ordering is deterministic regardless of timer resolution.
func fakeClock() func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestSortBy_AddedRestoresInsertionOrder(t *testing.T) {
	c := New()
	c.now = fakeClock()

	for _, title := range []string{"first", "second", "third"} {
		if _, _, err := c.Add(Input{Title: title, Author: "a", Pages: 1}); err != nil {
			t.Fatal(err)
		}
	}

	c.SortBy(ByTitle)
	c.SortBy(ByAdded)

	books := c.Books()
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if books[i].Title != w {
			t.Errorf("books[%d].Title = %q, want %q", i, books[i].Title, w)
		}
	}
}

func TestSortBy_AddedNonDecreasing(t *testing.T) {
	c := New()
	c.now = fakeClock()

	for i, title := range []string{"z", "m", "a", "q"} {
		if _, _, err := c.Add(Input{Title: title, Author: "a", Pages: i}); err != nil {
			t.Fatal(err)
		}
	}
	c.SortBy(ByPages)
	c.SortBy(ByAdded)

	books := c.Books()
	for i := 1; i < len(books); i++ {
		if books[i].AddedAt.Before(books[i-1].AddedAt) {
			t.Fatalf("AddedAt not non-decreasing at index %d", i)
		}
	}
}

func TestAdd_AddedAtFromClock(t *testing.T) {
	c := New()
	c.now = fakeClock()

	b, _, err := c.Add(Input{Title: "x", Author: "y", Pages: 1})
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC)
	if !b.AddedAt.Equal(want) {
		t.Errorf("AddedAt = %v, want %v", b.AddedAt, want)
	}
}
