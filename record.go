package logbridge

import "time"

// Record is one log event as produced by a generic logging facility.
// Handlers must treat it as immutable; Fields and Args may be shared with
// the producer.
type Record struct {
	At      time.Time
	Level   Level
	Message string
	// Args are optional formatting inputs for Message (fmt verbs).
	Args   []any
	Fields []Field
	// Err is the attached cause, forwarded to the host logger as-is.
	Err error
}

// NewRecord builds a Record without formatting inputs.
func NewRecord(at time.Time, level Level, msg string, fields ...Field) Record {
	return Record{At: at, Level: level, Message: msg, Fields: fields}
}
