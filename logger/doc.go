// Package logger is the public API of linelog. Most programs only need
// to call Setup once and then log through this package, zap or log/slog.
//
// Setup wires the two sinks: a console pipeline on stderr and a file
// pipeline whose path is a strftime template. Both share one global
// minimum level and the same per-module overrides. The merged pipeline is
// installed as a zapcore.Core behind zap.L(), as the default slog handler,
// and as this package's default Logger:
//
//	logger.MustSetup(logger.Options{
//	    Level:    logger.InfoLevel,
//	    Modules:  map[string]logger.Level{"db": logger.WarnLevel},
//	    FilePath: "./log/%Y-%m-%d.log",
//	})
//	logger.Info("ready")
//	zap.L().Named("db").Warn("slow query")
//
// Setup may succeed only once per process; later calls return
// ErrAlreadyConfigured and MustSetup panics. Build performs the same
// wiring without touching any global state.
//
// A Logger is immutable and wraps a *zap.Logger. Named returns a child
// logger whose name becomes the module shown in the lines and matched by
// per-module overrides. Records from unnamed loggers take the package
// path of the calling function as their module.
//
// A message starting with "\r" replaces the previous console line, which
// suits progress output; Overwrite and Overwritef add the marker.
package logger
