package driver_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"loom/internal/diag"
	"loom/internal/driver"
	"loom/internal/green"
	"loom/internal/kind"
	"loom/internal/observ"
	"loom/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.bal", "int a = 1; $\n")
	res, err := driver.Tokenize(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	last := res.Tokens[len(res.Tokens)-1]
	if last.Kind != kind.EOF {
		t.Fatalf("last token %v", last.Kind)
	}
	if got := codes(res.Bag); len(got) != 1 || got[0] != diag.LexUnknownChar {
		t.Fatalf("diagnostics %v", got)
	}
}

func TestParseCollectsTreeDiagnostics(t *testing.T) {
	src := "listener X l = init()\nint b = ;\n"
	path := writeFile(t, t.TempDir(), "a.bal", src)
	timer := observ.NewTimer()
	res, err := driver.Parse(context.Background(), path, driver.Options{Timer: timer})
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Tree.ToSourceCode(); got != src {
		t.Fatalf("round trip: %q", got)
	}
	got := codes(res.Bag)
	if len(got) != 2 || got[0] != diag.SynMissingSemicolon || got[1] != diag.SynMissingExpression {
		t.Fatalf("diagnostics %v", got)
	}
	if len(timer.Report().Phases) != 1 {
		t.Fatalf("want one parse phase, got %+v", timer.Report().Phases)
	}
}

func TestDiagnoseRunsCheck(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.bal", "int a = 1;\nint a = 2;\n")
	res, err := driver.Diagnose(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := codes(res.Bag); len(got) != 1 || got[0] != diag.ChkDuplicateName {
		t.Fatalf("diagnostics %v", got)
	}
	if res.Check.Reported != 1 {
		t.Fatalf("reported %d", res.Check.Reported)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := driver.Parse(context.Background(), filepath.Join(t.TempDir(), "none.bal"), driver.Options{})
	if !os.IsNotExist(err) {
		t.Fatalf("want not-exist error, got %v", err)
	}
}

func TestParseDirSharesCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.bal", "int x = 1;\n")
	writeFile(t, dir, "sub/a.bal", "int y = 1;\nint y = 2;\n")
	writeFile(t, dir, "notes.txt", "int z = ;")

	cache := green.NewCache()
	var trace bytes.Buffer
	ctx := traceContext(&trace)
	fs, results, err := driver.DiagnoseDir(ctx, dir, driver.Options{Cache: cache, Jobs: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || fs.Len() != 2 {
		t.Fatalf("want 2 files, got %d", len(results))
	}
	if !strings.HasSuffix(results[0].Path, "b.bal") || !strings.HasSuffix(results[1].Path, filepath.Join("sub", "a.bal")) {
		t.Fatalf("results not sorted: %s, %s", results[0].Path, results[1].Path)
	}
	if cache.Stats().Hits == 0 {
		t.Fatal("files must share the cache")
	}
	merged := driver.MergeBags(results, 0)
	if got := codes(merged); len(got) != 1 || got[0] != diag.ChkDuplicateName {
		t.Fatalf("diagnostics %v", got)
	}
	for _, want := range []string{"diagnose-dir", "file:a.bal", "check"} {
		if !strings.Contains(trace.String(), want) {
			t.Errorf("trace lacks %q:\n%s", want, trace.String())
		}
	}
}

func traceContext(w *bytes.Buffer) context.Context {
	tr := trace.NewStreamTracer(w, trace.LevelDetail, trace.FormatText)
	return trace.WithTracer(context.Background(), tr)
}

func TestTokenizeDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bal", "int a;")
	writeFile(t, dir, "b.bal", "")
	_, results, err := driver.TokenizeDir(context.Background(), dir, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 || len(results[0].Tokens) != 4 || len(results[1].Tokens) != 1 {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestEmptyDir(t *testing.T) {
	_, results, err := driver.ParseDir(context.Background(), t.TempDir(), driver.Options{})
	if err != nil || results != nil {
		t.Fatalf("empty dir: %v %v", results, err)
	}
}

func TestCancelledParseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.bal", "int a = 1;")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := driver.ParseDir(ctx, dir, driver.Options{}); err == nil {
		t.Fatal("cancelled context must stop the run")
	}
}

func TestTimingsOutput(t *testing.T) {
	timer := observ.NewTimer()
	timer.End(timer.Begin("parse a.bal"), "")
	var buf bytes.Buffer
	if err := driver.WriteTimings(&buf, driver.NewTimingPayload("parse", "a.bal", timer), false); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "timings (parse): total") || !strings.Contains(buf.String(), "parse a.bal") {
		t.Fatalf("text:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "= parse") {
		t.Fatalf("single file must not print stage totals:\n%s", buf.String())
	}
	timer.End(timer.Begin("parse b.bal"), "")
	buf.Reset()
	if err := driver.WriteTimings(&buf, driver.NewTimingPayload("parse", "", timer), false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "= parse") || !strings.Contains(buf.String(), "// 2 files") {
		t.Fatalf("stage totals:\n%s", buf.String())
	}
	buf.Reset()
	if err := driver.WriteTimings(&buf, driver.NewTimingPayload("", "", timer), true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"kind": "pipeline"`) {
		t.Fatalf("json:\n%s", buf.String())
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []driver.Event
}

func (s *recordingSink) OnEvent(ev driver.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func TestProgressEvents(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.bal", "int a = 1;\n")
	bad := writeFile(t, dir, "bad.bal", "int a = ;\n")

	sink := &recordingSink{}
	if _, _, err := driver.DiagnoseDir(context.Background(), dir, driver.Options{Progress: sink}); err != nil {
		t.Fatal(err)
	}
	final := map[string]driver.Event{}
	for _, ev := range sink.events {
		final[ev.File] = ev
	}
	if ev := final[good]; ev.Status != driver.StatusDone || ev.Stage != driver.StageCheck {
		t.Errorf("good.bal ended with %+v", ev)
	}
	if ev := final[bad]; ev.Status != driver.StatusError {
		t.Errorf("bad.bal ended with %+v", ev)
	}
}
