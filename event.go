package logbridge

import (
	"sync"
	"time"
)

// Event collects fields and an optional cause for one record. Events are
// pooled and must not be used after Msg or Msgf.
//
// A disabled level yields a nil *Event; every method is a no-op on nil, so
//
//	logger.Debug().Str("schema", name).Msg("parsing")
//
// costs one level comparison when debug is off.
type Event struct {
	l      *Logger
	level  Level
	fields []Field
	cause  error
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

const maxPooledFields = 128

func getEvent(l *Logger, level Level) *Event {
	if !l.Enabled(level) {
		return nil
	}
	ev := eventPool.Get().(*Event)
	ev.l, ev.level = l, level
	return ev
}

func (e *Event) release() {
	if cap(e.fields) > maxPooledFields {
		e.fields = make([]Field, 0, 8)
	} else {
		clear(e.fields)
		e.fields = e.fields[:0]
	}
	*e = Event{fields: e.fields}
	eventPool.Put(e)
}

func (e *Event) add(f Field) *Event {
	if e != nil {
		e.fields = append(e.fields, f)
	}
	return e
}

func (e *Event) Str(k, v string) *Event               { return e.add(Str(k, v)) }
func (e *Event) Int(k string, v int) *Event           { return e.add(Int(k, v)) }
func (e *Event) Int64(k string, v int64) *Event       { return e.add(Int64(k, v)) }
func (e *Event) Uint64(k string, v uint64) *Event     { return e.add(Uint64(k, v)) }
func (e *Event) Float64(k string, v float64) *Event   { return e.add(Float64(k, v)) }
func (e *Event) Bool(k string, v bool) *Event         { return e.add(Bool(k, v)) }
func (e *Event) Dur(k string, v time.Duration) *Event { return e.add(Dur(k, v)) }
func (e *Event) Time(k string, v time.Time) *Event    { return e.add(Time(k, v)) }
func (e *Event) Bytes(k string, v []byte) *Event      { return e.add(Bytes(k, v)) }
func (e *Event) Any(k string, v any) *Event           { return e.add(Any(k, v)) }

// Fields appends prebuilt fields in order.
func (e *Event) Fields(fs ...Field) *Event {
	if e != nil {
		e.fields = append(e.fields, fs...)
	}
	return e
}

// Err sets the record's cause; it is not added as a field. The last non-nil
// err wins.
func (e *Event) Err(err error) *Event {
	if e != nil && err != nil {
		e.cause = err
	}
	return e
}

// Msg emits the record.
func (e *Event) Msg(msg string) { e.send(msg, nil) }

// Msgf emits the record with args kept unexpanded; the handler's formatter
// applies them.
func (e *Event) Msgf(format string, args ...any) { e.send(format, args) }

func (e *Event) send(msg string, args []any) {
	if e == nil {
		return
	}
	e.l.emit(e.level, msg, args, e.fields, e.cause)
	e.release()
}
