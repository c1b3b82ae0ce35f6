package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"loom/internal/diagfmt"
)

// runCLI запускает команду с изолированным loom.toml.
func runCLI(t *testing.T, cfg string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "loom.toml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	code = run(context.Background(), append([]string{"--config", cfgPath}, args...), &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSourceRoundTrip(t *testing.T) {
	src := "// header\nint a = 1 ;\n\nfunction f() {\n\treturn;\n}\n"
	path := writeSource(t, t.TempDir(), "a.bal", src)

	out, errOut, code := runCLI(t, "", "parse", "--format", "source", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != src {
		t.Fatalf("round trip:\n%q\nwant\n%q", out, src)
	}
}

func TestParseTreeShowsMissingToken(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.bal", "int a = 1")
	out, errOut, code := runCLI(t, "", "parse", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "Semicolon <missing>") {
		t.Errorf("tree:\n%s", out)
	}
	if !strings.Contains(errOut, "SYN2003") {
		t.Errorf("diagnostics:\n%s", errOut)
	}
}

func TestDiagExitCodeAndJSONFromConfig(t *testing.T) {
	path := writeSource(t, t.TempDir(), "dup.bal", "int a = 1;\nint a = 2;\n")

	out, _, code := runCLI(t, "[diagnostics]\nformat = \"json\"\n", "diag", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	var decoded diagfmt.DiagnosticsOutput
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if decoded.Count != 1 || decoded.Diagnostics[0].Code != "CHK3001" {
		t.Fatalf("unexpected output: %+v", decoded)
	}

	// флаг важнее loom.toml
	out, _, code = runCLI(t, "[diagnostics]\nformat = \"json\"\n", "diag", "--format", "pretty", path)
	if code != 1 || !strings.Contains(out, "ERROR CHK3001") {
		t.Fatalf("exit %d, output:\n%s", code, out)
	}
}

func TestDiagPathMode(t *testing.T) {
	path := writeSource(t, t.TempDir(), "dup.bal", "int a = 1;\nint a = 2;\n")

	out, _, code := runCLI(t, "", "diag", "--path-mode", "basename", path)
	if code != 1 || !strings.HasPrefix(out, "dup.bal:2:5: ERROR CHK3001") {
		t.Fatalf("exit %d, output:\n%s", code, out)
	}
	out, _, _ = runCLI(t, "", "diag", "--path-mode", "basename", "--fullpath", path)
	if !strings.HasPrefix(out, path+":2:5:") {
		t.Fatalf("--fullpath must win:\n%s", out)
	}
	if _, errOut, code := runCLI(t, "", "diag", "--path-mode", "short", path); code == 0 || !strings.Contains(errOut, "unknown path mode") {
		t.Fatalf("exit %d, stderr %q", code, errOut)
	}
}

func TestDiagCleanFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "ok.bal", "import a/b;\nb:T x = 1;\n")
	out, errOut, code := runCLI(t, "", "diag", path)
	if code != 0 || out != "" {
		t.Fatalf("exit %d, stdout %q, stderr %q", code, out, errOut)
	}
}

func TestRename(t *testing.T) {
	src := "int count = 1; // keep\nint next = count + count;\n"
	path := writeSource(t, t.TempDir(), "r.bal", src)

	out, errOut, code := runCLI(t, "", "rename", path, "count", "total")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	want := "int total = 1; // keep\nint next = total + total;\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
	if !strings.Contains(errOut, "renamed 3 occurrence(s) of count") {
		t.Errorf("stderr %q", errOut)
	}

	if _, _, code := runCLI(t, "", "rename", "--write", path, "count", "total"); code != 0 {
		t.Fatalf("--write exit %d", code)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != want {
		t.Fatalf("file %q", data)
	}

	if _, errOut, code := runCLI(t, "", "rename", path, "total", "int"); code != 1 || !strings.Contains(errOut, "is not an identifier") {
		t.Fatalf("keyword target: exit %d, %q", code, errOut)
	}
}

func TestValidIdentifier(t *testing.T) {
	cases := map[string]bool{
		"abc":   true,
		"_x1":   true,
		"int":   false,
		"a b":   false,
		"1a":    false,
		"":      false,
		"a;":    false,
		" name": false,
	}
	for name, want := range cases {
		if got := validIdentifier(name); got != want {
			t.Errorf("validIdentifier(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestVerifyTestdata(t *testing.T) {
	out, errOut, code := runCLI(t, "", "verify", filepath.Join("..", "..", "testdata"))
	if code != 0 {
		t.Fatalf("exit %d\n%s\n%s", code, out, errOut)
	}
	if !strings.Contains(out, "ok   ") || strings.Contains(out, "FAIL") {
		t.Fatalf("output:\n%s", out)
	}
}

func TestTokenizeJSON(t *testing.T) {
	path := writeSource(t, t.TempDir(), "t.bal", "int a;")
	out, _, code := runCLI(t, "", "tokenize", "--format", "json", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var toks []diagfmt.TokenOutput
	if err := json.Unmarshal([]byte(out), &toks); err != nil {
		t.Fatal(err)
	}
	if len(toks) != 4 || toks[0].Kind != "IntKeyword" || toks[3].Kind != "EOF" {
		t.Fatalf("tokens %+v", toks)
	}
}

func TestParseDirWithTreeCache(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.bal", "int a = 1;\n")
	writeSource(t, dir, "b.bal", "string s = \"x\";\n")
	cacheDir := filepath.Join(t.TempDir(), "trees")
	cfg := "[parse]\ncache = true\ncache_dir = \"" + filepath.ToSlash(cacheDir) + "\"\n"

	for i := range 2 {
		out, errOut, code := runCLI(t, cfg, "parse", "--format", "source", "--timings", dir)
		if code != 0 {
			t.Fatalf("run %d: exit %d: %s", i, code, errOut)
		}
		if out != "int a = 1;\nstring s = \"x\";\n" {
			t.Fatalf("run %d: %q", i, out)
		}
		if i == 1 && !strings.Contains(errOut, "cache ") {
			t.Errorf("second run should report cache phases:\n%s", errOut)
		}
	}
	entries, err := filepath.Glob(filepath.Join(cacheDir, "trees", "*", "*.mp"))
	if err != nil || len(entries) != 2 {
		t.Fatalf("cache entries %v (%v)", entries, err)
	}

	out, _, code := runCLI(t, cfg, "cache", "clean")
	if code != 0 || !strings.Contains(out, "cleaned") {
		t.Fatalf("cache clean: %d %q", code, out)
	}
	entries, _ = filepath.Glob(filepath.Join(cacheDir, "trees", "*", "*.mp"))
	if len(entries) != 0 {
		t.Fatalf("entries left: %v", entries)
	}
}

func TestTraceToFile(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.bal", "int a = 1;\n")
	traceFile := filepath.Join(t.TempDir(), "trace.ndjson")
	_, errOut, code := runCLI(t, "", "--trace", traceFile, "--trace-level", "detail", "parse", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	data, err := os.ReadFile(traceFile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	var names []string
	for _, line := range lines {
		var ev struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			t.Fatalf("line %q: %v", line, err)
		}
		names = append(names, ev.Name)
	}
	joined := strings.Join(names, ",")
	for _, want := range []string{"file:a.bal", "parse"} {
		if !strings.Contains(joined, want) {
			t.Errorf("trace lacks %q: %s", want, joined)
		}
	}
}

func TestBadConfigFails(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.bal", "int a = 1;\n")
	_, errOut, code := runCLI(t, "[parse]\nthreads = 4\n", "parse", path)
	if code != 1 || !strings.Contains(errOut, "unknown keys: parse.threads") {
		t.Fatalf("exit %d: %s", code, errOut)
	}
}

func TestVersionJSON(t *testing.T) {
	out, _, code := runCLI(t, "", "version", "--format", "json", "--hash")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "loom" || payload.GitCommit == "" {
		t.Fatalf("payload %+v", payload)
	}
}

func TestProfilingFlags(t *testing.T) {
	path := writeSource(t, t.TempDir(), "a.bal", "int a = 1;\n")
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")
	_, errOut, code := runCLI(t, "", "--cpu-profile", cpu, "--mem-profile", mem, "parse", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, p := range []string{cpu, mem} {
		if info, err := os.Stat(p); err != nil || info.Size() == 0 {
			t.Errorf("%s not written (%v)", p, err)
		}
	}
}

func TestReadUIMode(t *testing.T) {
	for _, ok := range []string{"auto", "on", "off", "ON"} {
		if _, err := readUIMode(ok); err != nil {
			t.Errorf("readUIMode(%q): %v", ok, err)
		}
	}
	if _, err := readUIMode("fancy"); err == nil {
		t.Error("expected error for unknown ui mode")
	}
	var buf bytes.Buffer
	if shouldUseTUI(uiModeAuto, &buf) {
		t.Error("auto mode must not start the UI on a buffer")
	}
}

func TestDiagShortFormat(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.bal", "import x/y;\nint a = 1\n")
	writeSource(t, dir, "b.bal", "int b = 2;\nint b = 3;\n")

	out, _, code := runCLI(t, "[diagnostics]\nformat = \"short\"\n", "diag", "--with-notes", dir)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"warning CHK3004 a.bal:1:1 ", "error SYN2003 a.bal:2:10 ", "note CHK3001 b.bal:1:5 ", "error CHK3001 b.bal:2:5 "}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	for i, prefix := range want {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}
