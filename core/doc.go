// Package core defines the shared types used across linelog.
//
// It provides the Level type for severity filtering, the Record type
// that carries a single log event from the emitting engine to the
// sinks, and the Clock used to stamp lines and resolve file paths.
//
// Level values are ordered so that a larger value means a more
// important record: TraceLevel < DebugLevel < InfoLevel < WarnLevel <
// ErrorLevel. A record passes a threshold when its level is greater
// than or equal to it.
//
// Record is a plain value. Sinks never retain or mutate it, so it can be
// handed to several sinks in turn without copying.
package core
