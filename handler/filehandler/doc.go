// Package filehandler provides the file sink: a synchronous handler that
// renders records with a file LineFormatter and appends them to a file
// whose path is a strftime template, e.g. "./log/%Y-%m-%d.log".
//
// The template is resolved against the handler's clock (UTC) for every
// record. Missing parent directories are created and the file is opened
// in append mode, written once and closed again. There is no retry.
//
// Write failures never reach the caller. The handler reports them on a
// fallback writer (default: os.Stderr) together with the line that could
// not be written, and Handle returns nil.
package filehandler
