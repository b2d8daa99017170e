package formatter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/philipp01105/linelog/core"
)

// Config holds LineFormatter configuration
type Config struct {
	// Sink selects the rendering policy (default: ConsoleSink)
	Sink Sink
	// Level is the minimum level of the pipeline. At DebugLevel or below
	// every line carries the record's module tag.
	Level core.Level
	// Clock stamps each line (default: core.SystemClock)
	Clock core.Clock
	// Cursor receives the erase sequence of console overwrites. It must be
	// the stream the rendered lines are written to.
	Cursor io.Writer
	// NoColor disables severity colors on a console sink
	NoColor bool
}

// state is the per-sink history a LineFormatter keeps between records.
type state struct {
	// prevLineLen is the display width of the last console line.
	prevLineLen int
	// prevLineTimestamp is the reference bucket of the current line. It
	// only advances on fresh lines, so a run of overwrites keeps comparing
	// against the bucket of the line they replace.
	prevLineTimestamp string
	// prevUsedTimestamp is the bucket of the last record, printed or not.
	prevUsedTimestamp string
}

// LineFormatter renders records for one sink. It is safe for concurrent
// use; calls are serialized.
type LineFormatter struct {
	mu      sync.Mutex
	sink    Sink
	level   core.Level
	clock   core.Clock
	cursor  io.Writer
	colored bool
	state   state
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock
	}
	return &LineFormatter{
		sink:    cfg.Sink,
		level:   cfg.Level,
		clock:   cfg.Clock,
		cursor:  cfg.Cursor,
		colored: cfg.Sink.colorize() && !cfg.NoColor,
	}
}

// Sink returns the sink the formatter renders for
func (f *LineFormatter) Sink() Sink {
	return f.sink
}

// Render formats rec into a line. For a console overwrite record it first
// writes the erase sequence for the previous line to the cursor writer.
func (f *LineFormatter) Render(rec core.Record) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	msg, overwrite := splitOverwrite(rec.Message)
	if overwrite && f.sink.overwrites() {
		f.erasePrevious()
	} else {
		overwrite = false
	}

	now := f.clock().UTC().Format(TimestampLayout)
	if !overwrite {
		f.state.prevLineTimestamp = f.state.prevUsedTimestamp
	}

	var b strings.Builder
	b.Grow(len(now) + len(rec.Module) + len(msg) + 16)
	if f.state.prevLineTimestamp == now {
		b.WriteString(strings.Repeat(" ", len(now)))
	} else {
		b.WriteString(now)
	}
	if f.level <= core.DebugLevel {
		b.WriteString(" [")
		b.WriteString(rec.Module)
		b.WriteByte(']')
	}
	prefix := b.String()

	indent := "\n" + strings.Repeat(" ", uniseg.StringWidth(prefix)+levelFieldWidth)
	body := strings.ReplaceAll(msg, "\n", indent)
	name := fmt.Sprintf("%-5s", rec.Level)

	plain := prefix + " " + name + " " + body
	line := plain
	if f.colored {
		line = prefix + " " + colorize(rec.Level, name) + " " + body
	}

	if f.sink.overwrites() {
		f.state.prevLineLen = uniseg.StringWidth(plain)
	}
	f.state.prevUsedTimestamp = now

	return line
}

// erasePrevious moves the cursor onto the previous line, blanks it and
// returns to its start.
func (f *LineFormatter) erasePrevious() {
	if f.cursor == nil {
		return
	}
	_, _ = io.WriteString(f.cursor, cursorUp+strings.Repeat(" ", f.state.prevLineLen)+"\r")
}

// splitOverwrite strips a leading OverwriteMarker. The first grapheme
// cluster is compared as a whole, so "\r\n" does not count as a marker and
// multi-byte clusters are never cut.
func splitOverwrite(msg string) (string, bool) {
	if msg == "" {
		return msg, false
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(msg, -1)
	if first != OverwriteMarker {
		return msg, false
	}
	return rest, true
}

// IsOverwrite reports whether msg starts with the OverwriteMarker.
func IsOverwrite(msg string) bool {
	_, ok := splitOverwrite(msg)
	return ok
}

func colorize(level core.Level, s string) string {
	c, ok := levelColors[level]
	if !ok {
		return s
	}
	return c.Sprint(s)
}
