package olog

import (
	"time"

	"github.com/trickstertwo/logbridge"
	"github.com/trickstertwo/logbridge/internal/enc"
)

// LineFormatter writes one full line with the given, already pre-encoded bound prefix.
type LineFormatter interface {
	FormatLogLine(buf *enc.Buffer, level logbridge.Level, msg string, at time.Time, cause error, boundPrefix []byte, opts Options)
}

type TextFormatter struct{}

var (
	textTsPrefix    = []byte("ts=")
	textLevelPrefix = []byte(" level=")
	textMsgPrefix   = []byte(" msg=")
	textErrPrefix   = []byte(" error=")
	textTrue        = []byte("true")
	textFalse       = []byte("false")
	textNull        = []byte("null")
	textLenPrefix   = []byte("len:")
)

func (f *TextFormatter) FormatLogLine(buf *enc.Buffer, level logbridge.Level, msg string, at time.Time, cause error, boundPrefix []byte, opts Options) {
	buf.AddBytes(textTsPrefix)
	enc.AppendTime(buf, at, opts.TimeFormat)

	buf.AddBytes(textLevelPrefix)
	buf.AddString(level.String())

	buf.AddBytes(textMsgPrefix)
	enc.AppendTextString(buf, msg)

	if cause != nil {
		buf.AddBytes(textErrPrefix)
		enc.AppendQuoted(buf, cause.Error())
	}
	if len(boundPrefix) > 0 {
		buf.AddBytes(boundPrefix)
	}
	buf.AddByte('\n')
}

func appendTextField(buf *enc.Buffer, f *logbridge.Field) {
	buf.AddByte(' ')
	buf.AddString(f.K)
	buf.AddByte('=')
	appendTextValue(buf, f)
}

func appendTextValue(buf *enc.Buffer, f *logbridge.Field) {
	switch f.Kind {
	case logbridge.KindString:
		enc.AppendTextString(buf, f.Str)
	case logbridge.KindInt64:
		enc.AppendInt64(buf, f.Int64)
	case logbridge.KindUint64:
		enc.AppendUint64(buf, f.Uint64)
	case logbridge.KindFloat64:
		enc.AppendFloat64(buf, f.Float64)
	case logbridge.KindBool:
		if f.Bool {
			buf.AddBytes(textTrue)
		} else {
			buf.AddBytes(textFalse)
		}
	case logbridge.KindDuration:
		enc.AppendDuration(buf, f.Dur)
	case logbridge.KindTime:
		enc.AppendTime(buf, f.Time, "")
	case logbridge.KindError:
		if f.Err != nil {
			enc.AppendQuoted(buf, f.Err.Error())
		} else {
			buf.AddBytes(textNull)
		}
	case logbridge.KindBytes:
		buf.AddBytes(textLenPrefix)
		enc.AppendInt64(buf, int64(len(f.Bytes)))
	case logbridge.KindAny:
		appendTextAny(buf, f.Any)
	default:
		buf.AddBytes(textNull)
	}
}

func appendTextAny(buf *enc.Buffer, v any) {
	switch vv := v.(type) {
	case nil:
		buf.AddBytes(textNull)
	case string:
		enc.AppendTextString(buf, vv)
	case []byte:
		buf.AddBytes(textLenPrefix)
		enc.AppendInt64(buf, int64(len(vv)))
	case bool:
		if vv {
			buf.AddBytes(textTrue)
		} else {
			buf.AddBytes(textFalse)
		}
	case int:
		enc.AppendInt64(buf, int64(vv))
	case int32:
		enc.AppendInt64(buf, int64(vv))
	case int64:
		enc.AppendInt64(buf, vv)
	case uint:
		enc.AppendUint64(buf, uint64(vv))
	case uint32:
		enc.AppendUint64(buf, uint64(vv))
	case uint64:
		enc.AppendUint64(buf, vv)
	case float32:
		enc.AppendFloat64(buf, float64(vv))
	case float64:
		enc.AppendFloat64(buf, vv)
	case time.Time:
		enc.AppendTime(buf, vv, "")
	case time.Duration:
		enc.AppendDuration(buf, vv)
	default:
		buf.AddString("unknown")
	}
}
