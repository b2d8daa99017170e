package formatter_test

import (
	"fmt"
	"time"

	"github.com/philipp01105/linelog/core"
	"github.com/philipp01105/linelog/formatter"
)

func ExampleNewLineFormatter() {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	f := formatter.NewLineFormatter(formatter.Config{
		Sink:  formatter.FileSink,
		Level: core.DebugLevel,
		Clock: func() time.Time { return now },
	})

	fmt.Printf("%q\n", f.Render(core.Record{Level: core.InfoLevel, Module: "api", Message: "listening"}))
	fmt.Printf("%q\n", f.Render(core.Record{Level: core.WarnLevel, Module: "api", Message: "slow\nrequest"}))
	// Output:
	// "[2026-01-15T12:00:00] [api] Info  listening"
	// "                      [api] Warn  slow\n                                  request"
}
