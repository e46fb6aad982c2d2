package logbridge

import (
	"fmt"
	"time"

	"github.com/trickstertwo/logbridge/internal/enc"
)

// Formatter renders a Record into the text handed to the host logger.
type Formatter interface {
	Format(r Record) string
}

// FormatterFunc adapter.
type FormatterFunc func(Record) string

func (f FormatterFunc) Format(r Record) string { return f(r) }

// MessageFormatter renders the message, expanded with Args when present,
// followed by fields as " key=value" pairs. It is the Bridge default.
type MessageFormatter struct{}

func (MessageFormatter) Format(r Record) string {
	buf := enc.Get(len(r.Message) + 16*len(r.Fields))
	defer enc.Put(buf)
	buf.AddString(message(r))
	appendTextFields(buf, r.Fields)
	return buf.String()
}

// SimpleFormatter renders "<time> <LEVEL> <message><fields>" on one line.
type SimpleFormatter struct {
	// TimeFormat is a time layout; time.RFC3339 when empty.
	TimeFormat string
}

func (f SimpleFormatter) Format(r Record) string {
	layout := f.TimeFormat
	if layout == "" {
		layout = time.RFC3339
	}
	buf := enc.Get(64 + len(r.Message) + 16*len(r.Fields))
	defer enc.Put(buf)
	enc.AppendTime(buf, r.At, layout)
	buf.AddByte(' ')
	buf.AddString(r.Level.String())
	buf.AddByte(' ')
	buf.AddString(message(r))
	appendTextFields(buf, r.Fields)
	return buf.String()
}

func message(r Record) string {
	if len(r.Args) == 0 {
		return r.Message
	}
	return fmt.Sprintf(r.Message, r.Args...)
}

func appendTextFields(buf *enc.Buffer, fields []Field) {
	for i := range fields {
		buf.AddByte(' ')
		buf.AddString(fields[i].K)
		buf.AddByte('=')
		appendTextValue(buf, &fields[i])
	}
}

func appendTextValue(buf *enc.Buffer, f *Field) {
	switch f.Kind {
	case KindString:
		enc.AppendTextString(buf, f.Str)
	case KindInt64:
		enc.AppendInt64(buf, f.Int64)
	case KindUint64:
		enc.AppendUint64(buf, f.Uint64)
	case KindFloat64:
		enc.AppendFloat64(buf, f.Float64)
	case KindBool:
		if f.Bool {
			buf.AddString("true")
		} else {
			buf.AddString("false")
		}
	case KindDuration:
		enc.AppendDuration(buf, f.Dur)
	case KindTime:
		enc.AppendTime(buf, f.Time, time.RFC3339Nano)
	case KindError:
		if f.Err != nil {
			enc.AppendQuoted(buf, f.Err.Error())
		} else {
			buf.AddString("null")
		}
	case KindBytes:
		buf.AddString("len:")
		enc.AppendInt64(buf, int64(len(f.Bytes)))
	case KindAny:
		if f.Any == nil {
			buf.AddString("null")
			return
		}
		enc.AppendTextString(buf, fmt.Sprint(f.Any))
	default:
		buf.AddString("null")
	}
}
