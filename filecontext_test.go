package bustache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileContextResolvesByExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "header.mustache"), []byte("== {{title}} =="), 0o644); err != nil {
		t.Fatal(err)
	}
	fc := &FileContext{Paths: []string{dir}}

	f, ok := fc.Lookup("header")
	if !ok {
		t.Fatal("Lookup(header) should find header.mustache")
	}
	got, err := ToString(f, map[string]any{"title": "Hi"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "== Hi ==" {
		t.Errorf("got %q", got)
	}
}

func TestFileContextCachesCompiledFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "once")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}
	fc := &FileContext{Paths: []string{dir}}

	f1, ok := fc.Lookup("once")
	if !ok {
		t.Fatal("first Lookup should succeed")
	}
	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	f2, ok := fc.Lookup("once")
	if !ok {
		t.Fatal("second Lookup should succeed")
	}
	if f1 != f2 {
		t.Error("Lookup should return the cached *Format, not recompile")
	}
}

func TestFileContextRejectsDotPrefixedNameUnlessUnsafe(t *testing.T) {
	dir := t.TempDir()
	fc := &FileContext{Paths: []string{dir}}
	if _, ok := fc.Lookup("../outside"); ok {
		t.Error("Lookup(../outside) should be rejected by default")
	}
}

func TestFileContextMissingFileMisses(t *testing.T) {
	fc := &FileContext{Paths: []string{t.TempDir()}}
	if _, ok := fc.Lookup("nope"); ok {
		t.Error("Lookup(nope) should miss when no file exists")
	}
}
