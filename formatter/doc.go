// Package formatter turns log records into the final text of a line.
//
// The only implementation is LineFormatter, a stateful Renderer that
// keeps one small piece of history per sink: the timestamp it last
// used, the timestamp of the last fresh line and the width of the last
// line it rendered. With that history it
//
//   - replaces a timestamp that repeats within the same second by spaces,
//   - turns a message starting with "\r" into an overwrite of the
//     previous console line,
//   - indents continuation lines of multi-line messages under the
//     message column.
//
// A LineFormatter serves exactly one sink. The Sink value decides the
// policy: ConsoleSink colorizes severity names and emits cursor control
// sequences, FileSink produces plain, escape-free text. Render holds the
// formatter's mutex for the whole call, so records rendered by the same
// formatter never interleave.
package formatter
