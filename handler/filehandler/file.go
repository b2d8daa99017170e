package filehandler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/pkg/errors"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
	"github.com/philipp01105/linelog/handler"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// ErrNoPath is returned when FileConfig has no path template
var ErrNoPath = errors.New("filehandler: path template is required")

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Path is the strftime template of the log file path
	Path string
	// Level is the pipeline's minimum level; it decides whether lines
	// carry the module tag (default: InfoLevel)
	Level core.Level
	// Clock stamps lines and resolves Path (default: core.SystemClock)
	Clock core.Clock
	// Fallback receives write failures (default: os.Stderr)
	Fallback io.Writer
}

// FileHandler appends rendered records to a templated file path
type FileHandler struct {
	mu        sync.Mutex
	path      *strftime.Strftime
	formatter *formatter.LineFormatter
	clock     core.Clock
	fallback  io.Writer
	stats     *handler.Stats
	closed    chan struct{}
}

// NewFileHandler creates a new file handler. It fails if the path
// template is empty or not a valid strftime pattern.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Path == "" {
		return nil, ErrNoPath
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	if cfg.Fallback == nil {
		cfg.Fallback = os.Stderr
	}

	pattern, err := strftime.New(cfg.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "filehandler: invalid path template %q", cfg.Path)
	}

	return &FileHandler{
		path: pattern,
		formatter: formatter.NewLineFormatter(formatter.Config{
			Sink:  formatter.FileSink,
			Level: cfg.Level,
			Clock: cfg.Clock,
		}),
		clock:    cfg.Clock,
		fallback: cfg.Fallback,
		stats:    handler.NewStats(),
		closed:   make(chan struct{}),
	}, nil
}

// Path resolves the path template at t
func (h *FileHandler) Path(t time.Time) string {
	return h.path.FormatString(t.UTC())
}

// Enabled always returns true; filtering happens in front of the sink.
func (h *FileHandler) Enabled(string, core.Level) bool {
	return true
}

// Handle renders the record and appends it to the current file. A failed
// write is reported on the fallback writer and never returned.
func (h *FileHandler) Handle(rec core.Record) error {
	select {
	case <-h.closed:
		return nil
	default:
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	line := h.formatter.Render(rec)
	if err := AppendLine(h.Path(h.clock()), line); err != nil {
		h.stats.IncrementFailed()
		h.reportFailure(err, line)
		return nil
	}
	h.stats.IncrementProcessed()
	return nil
}

// reportFailure writes the unlogged line to the fallback writer so that it
// can still be recovered by an operator.
func (h *FileHandler) reportFailure(err error, line string) {
	_, _ = fmt.Fprintf(h.fallback,
		"%s ERROR Writing previous logging message to log file failed with \"%v\". Unlogged message:\n\"\"\"\n%s\n\"\"\"\n",
		h.clock().UTC().Format(formatter.TimestampLayout), err, line)
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close stops the handler. Files are not held open between records.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.closed:
	default:
		close(h.closed)
	}
	return nil
}

// AppendLine appends line and a newline to the file at path, creating the
// file and its parent directories as needed.
func AppendLine(path, line string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return errors.Wrap(err, "create log directory")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return errors.Wrap(err, "open log file")
	}

	if _, err := io.WriteString(file, line+"\n"); err != nil {
		_ = file.Close()
		return errors.Wrap(err, "write log file")
	}
	return errors.Wrap(file.Close(), "close log file")
}
