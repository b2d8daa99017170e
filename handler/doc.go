// Package handler provides the Handler interface and the plumbing that
// connects sinks to the logging engine.
//
// A Handler is one stage of a sink pipeline. It answers Enabled for a
// module and level, and consumes records in Handle. Handlers are
// synchronous: Handle returns after the record has been written or the
// failure has been reported.
//
// Building blocks:
//
//   - LevelFilter holds a global minimum level plus per-module overrides.
//     The most specific override for a module wins.
//   - Filtered gates a sink handler with a LevelFilter, so the console and
//     file pipelines can filter independently.
//   - MultiHandler fans a record out to every child that is enabled for it.
//   - SlogHandler adapts a Handler to log/slog.Handler.
//
// The concrete sinks live in the consolehandler and filehandler
// subpackages. Both track processed, overwritten and failed records via
// the Stats type, which can be queried at runtime.
package handler
