package cmd

import (
	"errors"
	"path/filepath"
	"testing"
)

func setDB(t *testing.T, path string) {
	t.Helper()
	t.Setenv("JMATH_DB", "")
	v.Set("db", path)
	t.Cleanup(func() { v.Set("db", nil) })
}

func TestOpenStoreWithoutDB(t *testing.T) {
	setDB(t, "")

	s, err := openStore()
	if !errors.Is(err, errNoEventLog) {
		t.Fatalf("err = %v, want errNoEventLog", err)
	}
	if s != nil {
		t.Errorf("store = %v, want nil", s)
	}
}

func TestOpenStoreWithDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "jmath.db")
	setDB(t, path)

	got, err := resolveDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != path {
		t.Errorf("path = %q, want %q", got, path)
	}

	s, err := openStore()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()
}
