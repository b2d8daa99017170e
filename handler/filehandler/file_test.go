package filehandler

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/linelog/core"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestFileHandler_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	h, err := NewFileHandler(FileConfig{
		Path:  filepath.Join(dir, "app.log"),
		Level: core.InfoLevel,
	})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	if err := h.Handle(core.Record{Level: core.InfoLevel, Module: "main", Message: "hello"}); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := readFile(t, filepath.Join(dir, "app.log"))
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\] Info +hello\n$`)
	if !pattern.MatchString(got) {
		t.Errorf("file content %q does not match %s", got, pattern)
	}
}

func TestFileHandler_DefaultLevelHasNoModuleTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	h, err := NewFileHandler(FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	_ = h.Handle(core.Record{Level: core.InfoLevel, Module: "db", Message: "ready"})
	_ = h.Handle(core.Record{Level: core.WarnLevel, Message: "no module"})

	got := readFile(t, path)
	if strings.Contains(got, " [") {
		t.Errorf("unset level should mean Info and omit the module tag: %q", got)
	}
}

func TestFileHandler_TemplateCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 2, 18, 13, 4, 5, 0, time.UTC)
	h, err := NewFileHandler(FileConfig{
		Path:  filepath.Join(dir, "%Y", "%m", "%d.log"),
		Clock: func() time.Time { return now },
	})
	if err != nil {
		t.Fatal(err)
	}

	_ = h.Handle(core.Record{Level: core.WarnLevel, Message: "first"})
	_ = h.Handle(core.Record{Level: core.ErrorLevel, Message: "second"})

	want := "[2026-02-18T13:04:05] Warn  first\n" +
		strings.Repeat(" ", 21) + " Error second\n"
	if got := readFile(t, filepath.Join(dir, "2026", "02", "18.log")); got != want {
		t.Errorf("file content = %q, want %q", got, want)
	}
	if snap := h.Stats(); snap.ProcessedTotal != 2 || snap.FailedTotal != 0 {
		t.Errorf("unexpected stats %+v", snap)
	}
}

func TestFileHandler_PathFollowsClock(t *testing.T) {
	dir := t.TempDir()
	var mu sync.Mutex
	now := time.Date(2026, 2, 18, 23, 59, 59, 0, time.UTC)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}
	h, err := NewFileHandler(FileConfig{Path: filepath.Join(dir, "%Y-%m-%d.log"), Clock: clock})
	if err != nil {
		t.Fatal(err)
	}

	_ = h.Handle(core.Record{Level: core.InfoLevel, Message: "before midnight"})
	mu.Lock()
	now = now.Add(2 * time.Second)
	mu.Unlock()
	_ = h.Handle(core.Record{Level: core.InfoLevel, Message: "after midnight"})

	if got := readFile(t, filepath.Join(dir, "2026-02-18.log")); !strings.Contains(got, "before midnight") {
		t.Errorf("first file = %q", got)
	}
	if got := readFile(t, filepath.Join(dir, "2026-02-19.log")); !strings.HasPrefix(got, "[2026-02-19T00:00:01] Info  after midnight") {
		t.Errorf("second file = %q", got)
	}
}

func TestFileHandler_AppendsToExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	if err := os.WriteFile(path, []byte("existing\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	h, err := NewFileHandler(FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	_ = h.Handle(core.Record{Level: core.InfoLevel, Message: "appended"})

	got := readFile(t, path)
	if !strings.HasPrefix(got, "existing\n") || !strings.HasSuffix(got, " Info  appended\n") {
		t.Errorf("file content = %q", got)
	}
}

func TestFileHandler_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	h, err := NewFileHandler(FileConfig{Path: path, Level: core.TraceLevel})
	if err != nil {
		t.Fatal(err)
	}

	for _, level := range []core.Level{core.TraceLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel} {
		_ = h.Handle(core.Record{Level: level, Module: "app", Message: "line"})
	}
	_ = h.Handle(core.Record{Level: core.InfoLevel, Module: "app", Message: "\rprogress"})

	got := readFile(t, path)
	if strings.ContainsAny(got, "\x1b\r") {
		t.Errorf("file contains control sequences: %q", got)
	}
	if n := strings.Count(got, "\n"); n != 6 {
		t.Errorf("expected 6 lines, got %d: %q", n, got)
	}
	if !strings.Contains(got, "[app] Info  progress\n") {
		t.Errorf("overwrite record should be an ordinary line: %q", got)
	}
}

func TestFileHandler_FailureGoesToFallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	var fallback bytes.Buffer
	h, err := NewFileHandler(FileConfig{
		Path:     filepath.Join(blocker, "app.log"),
		Fallback: &fallback,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Handle(core.Record{Level: core.ErrorLevel, Message: "lost record"}); err != nil {
		t.Fatalf("Handle() must not return write errors, got %v", err)
	}

	out := fallback.String()
	if !regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\] ERROR Writing previous logging message to log file failed with "`).MatchString(out) {
		t.Errorf("unexpected fallback header: %q", out)
	}
	if !strings.Contains(out, "Unlogged message:\n\"\"\"\n") || !strings.Contains(out, " Error lost record\n\"\"\"\n") {
		t.Errorf("fallback does not carry the unlogged line: %q", out)
	}
	if snap := h.Stats(); snap.FailedTotal != 1 || snap.ProcessedTotal != 0 {
		t.Errorf("unexpected stats %+v", snap)
	}
}

func TestNewFileHandler_InvalidConfig(t *testing.T) {
	if _, err := NewFileHandler(FileConfig{}); err != ErrNoPath {
		t.Errorf("NewFileHandler() error = %v, want ErrNoPath", err)
	}
	if _, err := NewFileHandler(FileConfig{Path: "log/%"}); err == nil {
		t.Error("NewFileHandler() expected error for a stray %")
	}
}

func TestFileHandler_Close(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	h, err := NewFileHandler(FileConfig{Path: path})
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	_ = h.Handle(core.Record{Level: core.InfoLevel, Message: "late"})
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("closed handler must not create the file, stat error = %v", err)
	}
}

func TestAppendLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.log")

	if err := AppendLine(path, "one"); err != nil {
		t.Fatalf("AppendLine() error = %v", err)
	}
	if err := AppendLine(path, "two"); err != nil {
		t.Fatalf("AppendLine() error = %v", err)
	}
	if got := readFile(t, path); got != "one\ntwo\n" {
		t.Errorf("file content = %q", got)
	}

	if err := AppendLine(dir, "directory"); err == nil {
		t.Error("AppendLine() on a directory should fail")
	}
}
