package consolehandler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler"
)

// ColorMode controls severity colors on the console
type ColorMode uint8

const (
	// ColorAlways colors severity names (default)
	ColorAlways ColorMode = iota
	// ColorAuto colors severity names when the writer is a terminal
	ColorAuto
	// ColorNever writes plain severity names
	ColorNever
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Level is the pipeline's minimum level; it decides whether lines
	// carry the module tag (default: InfoLevel)
	Level core.Level
	// Clock stamps lines (default: core.SystemClock)
	Clock core.Clock
	// Color selects the color mode (default: ColorAlways)
	Color ColorMode
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
}

// ConsoleHandler writes rendered records to a console stream
type ConsoleHandler struct {
	mu        sync.Mutex
	writer    io.Writer
	formatter *formatter.LineFormatter
	stats     *handler.Stats
	closed    chan struct{}
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer: cfg.Writer,
		stats:  handler.NewStats(),
		closed: make(chan struct{}),
	}
	h.formatter = formatter.NewLineFormatter(formatter.Config{
		Sink:    formatter.ConsoleSink,
		Level:   cfg.Level,
		Clock:   cfg.Clock,
		Cursor:  cfg.Writer,
		NoColor: !useColor(cfg.Color, cfg.Writer),
	})
	return h
}

// useColor resolves a ColorMode against the writer.
func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAuto:
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	default:
		return true
	}
}

// Enabled always returns true; filtering happens in front of the sink.
func (h *ConsoleHandler) Enabled(string, core.Level) bool {
	return true
}

// Handle renders the record and writes it followed by a newline.
func (h *ConsoleHandler) Handle(rec core.Record) error {
	select {
	case <-h.closed:
		return nil
	default:
	}

	h.mu.Lock()
	line := h.formatter.Render(rec)
	_, err := io.WriteString(h.writer, line+"\n")
	h.mu.Unlock()

	if err != nil {
		return err
	}
	h.stats.IncrementProcessed()
	if formatter.IsOverwrite(rec.Message) {
		h.stats.IncrementOverwrite()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. The underlying stream is left open.
func (h *ConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.closed:
	default:
		close(h.closed)
	}
	return nil
}
