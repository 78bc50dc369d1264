package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.yaml")
	if err := os.WriteFile(path, []byte("name: Ada\nage: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := loadYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := data.(map[interface{}]interface{})
	if !ok {
		t.Fatalf("data is %T, want a map", data)
	}
	if m["name"] != "Ada" {
		t.Errorf("name = %v, want Ada", m["name"])
	}
}

func TestMergeOverrideShallowMerges(t *testing.T) {
	base := map[interface{}]interface{}{"a": 1, "b": 2}
	override := map[interface{}]interface{}{"b": 3, "c": 4}
	got := mergeOverride(base, override)
	m, ok := got.(map[interface{}]interface{})
	if !ok {
		t.Fatalf("got is %T, want a map", got)
	}
	if m["a"] != 1 || m["b"] != 3 || m["c"] != 4 {
		t.Errorf("merged map = %v", m)
	}
}

func TestMergeOverrideNonMapOverrideWins(t *testing.T) {
	got := mergeOverride(map[interface{}]interface{}{"a": 1}, "replacement")
	if got != "replacement" {
		t.Errorf("got %v, want replacement", got)
	}
}
