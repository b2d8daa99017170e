package logger_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/linelog/handler/consolehandler"
	"github.com/philipp01105/linelog/logger"
)

func TestModuleIsCallerPackage(t *testing.T) {
	var console bytes.Buffer
	d, err := logger.Build(logger.Options{
		Level:    logger.TraceLevel,
		FilePath: filepath.Join(t.TempDir(), "app.log"),
		Console:  &console,
		Color:    consolehandler.ColorNever,
	})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer d.Close()

	d.Logger().Info("method")
	d.Logger().Warnf("formatted %d", 2)

	const tag = " [github.com/philipp01105/linelog/logger_test] "
	lines := strings.Split(strings.TrimSuffix(console.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %q", console.String())
	}
	for _, line := range lines {
		if !strings.Contains(line, tag) {
			t.Errorf("Expected caller module tag in %q", line)
		}
	}
}
