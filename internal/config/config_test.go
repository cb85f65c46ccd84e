package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jtd-117/bitbooks/internal/config"
)

func TestDefaultPath(t *testing.T) {
	p := config.DefaultPath()
	if p == "" {
		t.Fatal("DefaultPath returned empty string")
	}
	if !strings.HasSuffix(p, "config.yml") {
		t.Errorf("DefaultPath = %q, should end with config.yml", p)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("BITBOOKS_CONFIG", filepath.Join(t.TempDir(), "nope.yml"))

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Sort != "added" {
		t.Errorf("Defaults.Sort = %q, want %q", cfg.Defaults.Sort, "added")
	}
	if cfg.Defaults.SeedFile != "" {
		t.Errorf("Defaults.SeedFile = %q, want empty", cfg.Defaults.SeedFile)
	}
	if cfg.UI.NoColor {
		t.Error("UI.NoColor = true, want false")
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "defaults:\n  sort: pages\n  seed_file: books.yml\nui:\n  no_color: true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BITBOOKS_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.Sort != "pages" {
		t.Errorf("Defaults.Sort = %q, want %q", cfg.Defaults.Sort, "pages")
	}
	if cfg.Defaults.SeedFile != "books.yml" {
		t.Errorf("Defaults.SeedFile = %q, want %q", cfg.Defaults.SeedFile, "books.yml")
	}
	if !cfg.UI.NoColor {
		t.Error("UI.NoColor = false, want true")
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/books.yml"); got != filepath.Join(home, "books.yml") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs/books.yml"); got != "/abs/books.yml" {
		t.Errorf("ExpandHome left absolute path alone: got %q", got)
	}
}
