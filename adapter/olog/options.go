package olog

import (
	"io"

	"github.com/trickstertwo/logbridge"
)

// Format defines the output format for log lines
type Format uint8

const (
	FormatText Format = iota + 1
	FormatJSON
)

// ErrorHandler defines how write errors are handled
type ErrorHandler func(error)

// JSONTimeEncoding controls how the "ts" field is encoded in JSON.
type JSONTimeEncoding uint8

const (
	JSONTimeRFC3339Nano JSONTimeEncoding = iota + 1 // default
	JSONTimeUnixMillis                              // numeric, t.UnixMilli()
	JSONTimeUnixNanos                               // numeric, t.UnixNano()
)

// JSONDurationEncoding controls how time.Duration fields are encoded in JSON.
type JSONDurationEncoding uint8

const (
	JSONDurationString JSONDurationEncoding = iota + 1 // default (e.g., "1ms")
	JSONDurationMillis                                 // numeric milliseconds
	JSONDurationNanos                                  // numeric nanoseconds
)

// Options configures the host behavior
type Options struct {
	Format       Format
	MinLevel     logbridge.Level
	ErrorHandler ErrorHandler
	TimeFormat   string // text only; RFC3339Nano when empty

	JSONTime     JSONTimeEncoding     // default JSONTimeRFC3339Nano
	JSONDuration JSONDurationEncoding // default JSONDurationString

	// BufferSize is the initial capacity of the format buffer; 512 when <= 0.
	BufferSize int
}

// WriterFactory allows custom writers per log level
type WriterFactory interface {
	GetWriter(level logbridge.Level) io.Writer
}

type DefaultWriterFactory struct{ Writer io.Writer }

func (f *DefaultWriterFactory) GetWriter(logbridge.Level) io.Writer { return f.Writer }

// LevelWriterFactory routes exact levels to dedicated writers, e.g. errors
// to stderr and everything else to stdout.
type LevelWriterFactory struct {
	Default     io.Writer
	LevelWriter map[logbridge.Level]io.Writer
}

func (f *LevelWriterFactory) GetWriter(level logbridge.Level) io.Writer {
	if w, ok := f.LevelWriter[level]; ok {
		return w
	}
	return f.Default
}
