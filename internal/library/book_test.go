package library_test

import (
	"testing"

	"github.com/jtd-117/bitbooks/internal/library"
)

func TestValidate_OK(t *testing.T) {
	in := library.Input{Title: "Dune", Author: "Herbert", Pages: 412}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate_ZeroPagesAllowed(t *testing.T) {
	in := library.Input{Title: "Pamphlet", Author: "Anon", Pages: 0}
	if err := in.Validate(); err != nil {
		t.Errorf("Validate with 0 pages: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name      string
		in        library.Input
		wantField string
	}{
		{"empty title", library.Input{Title: "", Author: "a", Pages: 1}, "title"},
		{"whitespace title", library.Input{Title: "   ", Author: "a", Pages: 1}, "title"},
		{"empty author", library.Input{Title: "t", Author: "", Pages: 1}, "author"},
		{"whitespace author", library.Input{Title: "t", Author: "\t", Pages: 1}, "author"},
		{"negative pages", library.Input{Title: "t", Author: "a", Pages: -1}, "pages"},
	}
	for _, c := range cases {
		err := c.in.Validate()
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		verr, ok := err.(*library.ValidationError)
		if !ok {
			t.Errorf("%s: error type = %T", c.name, err)
			continue
		}
		if verr.Field != c.wantField {
			t.Errorf("%s: Field = %q, want %q", c.name, verr.Field, c.wantField)
		}
		if verr.Error() == "" {
			t.Errorf("%s: empty error message", c.name)
		}
	}
}
