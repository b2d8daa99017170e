package logger

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/linelog/config"
	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/handler"
	"github.com/philipp01105/linelog/handler/consolehandler"
	"github.com/philipp01105/linelog/handler/filehandler"
)

// ErrAlreadyConfigured is returned when Setup is called more than once.
var ErrAlreadyConfigured = errors.New("logger: dispatch already configured")

var configured atomic.Bool

// Options configures the dispatch pipeline
type Options struct {
	// Level is the global minimum level
	Level Level
	// Modules holds per-module level overrides
	Modules map[string]Level
	// FilePath is the strftime template of the log file path
	FilePath string

	// Console receives console lines (default: os.Stderr)
	Console io.Writer
	// Fallback receives file write failures (default: os.Stderr)
	Fallback io.Writer
	// Color selects the console color mode (default: ColorAlways)
	Color consolehandler.ColorMode
	// Clock stamps lines and resolves FilePath (default: core.SystemClock)
	Clock core.Clock
}

// OptionsFromConfig converts a loaded configuration into Options
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		Level:    cfg.Level,
		Modules:  cfg.Modules,
		FilePath: cfg.FilePath,
	}
}

// Dispatch is a built pipeline: both sinks, the router fanning out to
// them and the zap core feeding the router.
type Dispatch struct {
	Console *consolehandler.ConsoleHandler
	File    *filehandler.FileHandler
	Router  *handler.MultiHandler
	Core    zapcore.Core
}

// Logger returns a Logger emitting through the pipeline
func (d *Dispatch) Logger() *Logger {
	return New(zap.New(d.Core, zap.AddCaller()))
}

// Slog returns a slog.Logger emitting through the pipeline
func (d *Dispatch) Slog() *slog.Logger {
	return slog.New(handler.NewSlogHandler(d.Router, ""))
}

// Close closes both sinks
func (d *Dispatch) Close() error {
	return d.Router.Close()
}

// Build wires the console and file pipelines without registering them
// anywhere.
func Build(opts Options) (*Dispatch, error) {
	if opts.Level > ErrorLevel || opts.Level < TraceLevel {
		return nil, errors.Errorf("logger: invalid level %d", opts.Level)
	}

	file, err := filehandler.NewFileHandler(filehandler.FileConfig{
		Path:     opts.FilePath,
		Level:    opts.Level,
		Clock:    opts.Clock,
		Fallback: opts.Fallback,
	})
	if err != nil {
		return nil, errors.Wrap(err, "logger: file pipeline")
	}
	console := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: opts.Console,
		Level:  opts.Level,
		Clock:  opts.Clock,
		Color:  opts.Color,
	})

	filter := handler.NewLevelFilter(opts.Level, opts.Modules)
	router := handler.NewMultiHandler(
		handler.NewFiltered(console, filter),
		handler.NewFiltered(file, filter),
	)

	return &Dispatch{
		Console: console,
		File:    file,
		Router:  router,
		Core:    NewCore(router, filter.MinLevel()),
	}, nil
}

// Setup builds the pipeline and installs it as zap's global logger, the
// default slog logger and this package's default Logger. It succeeds once
// per process; a failed attempt may be retried.
func Setup(opts Options) (*Logger, error) {
	if !configured.CompareAndSwap(false, true) {
		return nil, ErrAlreadyConfigured
	}

	d, err := Build(opts)
	if err != nil {
		configured.Store(false)
		return nil, err
	}

	l := d.Logger()
	zap.ReplaceGlobals(l.Zap())
	slog.SetDefault(d.Slog())
	SetDefault(l)
	return l, nil
}

// MustSetup is like Setup but panics on error
func MustSetup(opts Options) *Logger {
	l, err := Setup(opts)
	if err != nil {
		panic(err)
	}
	return l
}

// SetupFromConfig loads the configuration at path and calls Setup with it
func SetupFromConfig(path string) (*Logger, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return Setup(OptionsFromConfig(cfg))
}
