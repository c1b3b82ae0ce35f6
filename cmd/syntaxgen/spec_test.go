package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSpecRejectsUnknownTypes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.toml")
	src := `
[[node]]
name = "A"
slots = [{ name = "b", type = "Missing" }]
`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := loadSpec(path)
	if err == nil || !strings.Contains(err.Error(), "unknown type Missing") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestLoadSpecRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nodes.toml")
	src := `
[[node]]
name = "A"
colour = "red"
slots = [{ name = "b", type = "Token" }]
`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSpec(path); err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestGeneratedFilesAreCurrent(t *testing.T) {
	spec, err := loadSpec("nodes.toml")
	if err != nil {
		t.Fatal(err)
	}
	checks := []struct {
		path string
		gen  func(*Spec) string
	}{
		{"../../internal/green/layout_gen.go", genLayout},
		{"../../internal/green/factory_gen.go", genGreenFactory},
		{"../../internal/syntax/nodes_gen.go", genNodes},
		{"../../internal/syntax/visitor_gen.go", genVisitor},
		{"../../internal/syntax/modifier_gen.go", genModifier},
	}
	for _, c := range checks {
		want, err := os.ReadFile(c.path)
		if err != nil {
			t.Fatal(err)
		}
		got, err := formatGo(c.gen(spec))
		if err != nil {
			t.Fatalf("%s: %v", c.path, err)
		}
		if string(got) != string(want) {
			t.Errorf("%s is stale; run go generate ./internal/green", c.path)
		}
	}
}

func TestParamAvoidsKeywords(t *testing.T) {
	if got := param("type"); got != "typ" {
		t.Fatalf("param(type) = %q", got)
	}
	if got := param("name"); got != "name" {
		t.Fatalf("param(name) = %q", got)
	}
}
