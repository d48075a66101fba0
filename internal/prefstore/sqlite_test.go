package prefstore

import (
	"path/filepath"
	"testing"

	"github.com/Zachkp/folio/internal/theme"
)

func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestGetMissingKey(t *testing.T) {
	s, _ := openTemp(t)
	v, err := s.Get(theme.StorageKey)
	if err != nil || v != "" {
		t.Fatalf("Get() = %q, %v", v, err)
	}
}

func TestSetOverwrites(t *testing.T) {
	s, _ := openTemp(t)
	if err := s.Set("theme", "dark"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("theme", "light"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _ := s.Get("theme"); v != "light" {
		t.Fatalf("Get() = %q, want light", v)
	}
}

func TestPersistsAcrossOpen(t *testing.T) {
	s, path := openTemp(t)
	theme.NewController(s, nil).Toggle()
	_ = s.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer reopened.Close()
	if !theme.NewController(reopened, nil).Dark() {
		t.Fatal("expected dark theme after reopen")
	}
}

func TestClosedStoreFallsBackToLight(t *testing.T) {
	s, _ := openTemp(t)
	_ = s.Set("theme", "dark")
	_ = s.Close()

	c := theme.NewController(s, nil)
	if c.Dark() {
		t.Fatal("closed store should read as light")
	}
	c.Toggle()
	if !c.Dark() {
		t.Fatal("toggle should still work in memory")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestMemory(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer s.Close()
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, _ := s.Get("k"); v != "v" {
		t.Fatalf("Get() = %q", v)
	}
}
