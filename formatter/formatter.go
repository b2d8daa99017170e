package formatter

import (
	"github.com/fatih/color"

	"github.com/philipp01105/linelog/core"
)

// Renderer turns a record into the text of one log line, without the
// trailing newline.
type Renderer interface {
	Render(rec core.Record) string
}

// Sink identifies the output a formatter renders for.
type Sink uint8

const (
	// ConsoleSink renders colored lines and supports overwriting the
	// previous line.
	ConsoleSink Sink = iota
	// FileSink renders plain text and never overwrites.
	FileSink
)

// String returns the sink name
func (s Sink) String() string {
	switch s {
	case ConsoleSink:
		return "console"
	case FileSink:
		return "file"
	default:
		return "unknown"
	}
}

// overwrites reports whether an overwrite record erases the previous line.
func (s Sink) overwrites() bool {
	return s == ConsoleSink
}

// colorize reports whether severity names carry ANSI colors by default.
func (s Sink) colorize() bool {
	return s == ConsoleSink
}

const (
	// TimestampLayout is the time.Format layout of the timestamp region.
	TimestampLayout = "[2006-01-02T15:04:05]"

	// OverwriteMarker flags a message that replaces the previous console
	// line when it is the first grapheme cluster of the message.
	OverwriteMarker = "\r"

	// levelFieldWidth covers " LEVEL " after the timestamp region.
	levelFieldWidth = 7

	// cursorUp moves the cursor one line up.
	cursorUp = "\x1b[A"
)

// levelColors maps severities to their console colors.
var levelColors = map[core.Level]*color.Color{
	core.ErrorLevel: forced(color.New(color.FgHiRed)),
	core.WarnLevel:  forced(color.New(color.FgHiYellow)),
	core.InfoLevel:  forced(color.New(color.FgGreen)),
	core.DebugLevel: forced(color.New(color.FgWhite)),
	core.TraceLevel: forced(color.New(color.FgWhite)),
}

// forced makes c ignore color.NoColor, which is derived from the process
// stdout and would otherwise strip colors whenever stdout is redirected.
func forced(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}
