// Package consolehandler provides the console sink: a synchronous
// handler that renders records with a console LineFormatter and writes
// them to a stream (default: os.Stderr).
//
// The handler's mutex spans rendering and writing. An overwrite record
// first emits the erase sequence for the previous line and then its own
// line, and no other record can slip in between.
//
// Severity colors are on by default. ColorAuto enables them only when
// the writer is a terminal, ColorNever turns them off.
package consolehandler
