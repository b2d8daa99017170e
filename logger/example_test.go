package logger_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/philipp01105/linelog/handler/consolehandler"
	"github.com/philipp01105/linelog/logger"
)

// Build a pipeline without installing it globally. Lines go to stdout
// and to a daily file below dir.
func ExampleBuild() {
	dir, _ := os.MkdirTemp("", "linelog")
	defer os.RemoveAll(dir)

	d, err := logger.Build(logger.Options{
		Level:    logger.InfoLevel,
		Modules:  map[string]logger.Level{"db": logger.ErrorLevel},
		FilePath: filepath.Join(dir, "%Y-%m-%d.log"),
		Console:  os.Stdout,
		Color:    consolehandler.ColorNever,
		Clock:    func() time.Time { return time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC) },
	})
	if err != nil {
		panic(err)
	}
	defer d.Close()

	log := d.Logger()
	log.Info("ready")
	log.Named("db").Warn("slow query")
	log.Warn("disk\nalmost full")
	// Output:
	// [2026-01-15T12:00:00] Info  ready
	//                       Warn  disk
	//                             almost full
}

// Install the pipeline for zap, slog and this package. Call it once, early
// in main.
func ExampleMustSetup() {
	logger.MustSetup(logger.Options{
		Level:    logger.InfoLevel,
		FilePath: "./log/%Y-%m-%d.log",
	})
	logger.Info("started")
	logger.Overwritef("progress %d%%", 40)
}
