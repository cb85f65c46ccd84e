package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jtd-117/bitbooks/internal/library"
	"github.com/jtd-117/bitbooks/internal/seed"
)

var sampleYAML = []byte(`
- title: "Dune"
  author: "Frank Herbert"
  pages: 412
  read: true

- title: "Hyperion"
  author: "Dan Simmons"
  pages: 482
`)

func TestParse_ValidYAML(t *testing.T) {
	entries, err := seed.Parse(sampleYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Title != "Dune" || !entries[0].Read {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].Pages != 482 || entries[1].Read {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestParse_Empty(t *testing.T) {
	entries, err := seed.Parse(nil)
	if err != nil {
		t.Fatalf("Parse empty: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestParse_EmptyList(t *testing.T) {
	entries, err := seed.Parse([]byte("[]\n"))
	if err != nil {
		t.Fatalf("Parse []: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	if _, err := seed.Parse([]byte(":: bad yaml [")); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	entries, err := seed.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load missing file: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.yml")
	if err := os.WriteFile(path, sampleYAML, 0600); err != nil {
		t.Fatal(err)
	}
	entries, err := seed.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	entries, _ := seed.Parse(sampleYAML)
	data, err := seed.Marshal(entries)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := seed.Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if len(back) != len(entries) {
		t.Fatalf("round-trip length: got %d, want %d", len(back), len(entries))
	}
	for i := range entries {
		if back[i] != entries[i] {
			t.Errorf("[%d] mismatch: %+v vs %+v", i, back[i], entries[i])
		}
	}
}

func TestEntry_Input(t *testing.T) {
	e := seed.Entry{Title: "Dune", Author: "Herbert", Pages: 412, Read: true}
	in := e.Input()
	if in.Title != "Dune" || in.Author != "Herbert" || in.Pages != 412 || !in.HasRead {
		t.Errorf("Input() = %+v", in)
	}
}

func TestFromBooks_PreservesOrder(t *testing.T) {
	c := library.New()
	for _, title := range []string{"b", "a", "c"} {
		if _, _, err := c.Add(library.Input{Title: title, Author: "x", Pages: 1}); err != nil {
			t.Fatal(err)
		}
	}
	entries := seed.FromBooks(c.Books())
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"b", "a", "c"} {
		if entries[i].Title != want {
			t.Errorf("entries[%d].Title = %q, want %q", i, entries[i].Title, want)
		}
	}
}
