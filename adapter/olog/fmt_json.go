package olog

import (
	"encoding/json"
	"math"
	"time"

	"github.com/trickstertwo/logbridge"
	"github.com/trickstertwo/logbridge/internal/enc"
)

// RawJSON is embedded verbatim when bound as an Any field in JSON output.
type RawJSON []byte

var (
	jsonTrue  = []byte("true")
	jsonFalse = []byte("false")
	jsonNull  = []byte("null")
)

type JSONFormatter struct{}

func (f *JSONFormatter) FormatLogLine(buf *enc.Buffer, level logbridge.Level, msg string, at time.Time, cause error, boundPrefix []byte, opts Options) {
	buf.AddByte('{')
	buf.AddString(`"ts":`)
	appendJSONTime(buf, at, opts)

	buf.AddString(`,"level":"`)
	buf.AddString(level.String())
	buf.AddByte('"')

	buf.AddString(`,"msg":`)
	enc.AppendQuoted(buf, msg)

	if cause != nil {
		buf.AddString(`,"error":`)
		enc.AppendQuoted(buf, cause.Error())
	}
	if len(boundPrefix) > 0 {
		buf.AddBytes(boundPrefix)
	}
	buf.AddString("}\n")
}

func appendJSONTime(buf *enc.Buffer, t time.Time, opts Options) {
	switch opts.JSONTime {
	case JSONTimeUnixMillis:
		enc.AppendInt64(buf, t.UnixMilli())
	case JSONTimeUnixNanos:
		enc.AppendInt64(buf, t.UnixNano())
	default:
		buf.AddByte('"')
		enc.AppendTime(buf, t, "")
		buf.AddByte('"')
	}
}

func appendJSONDuration(buf *enc.Buffer, d time.Duration, opts Options) {
	switch opts.JSONDuration {
	case JSONDurationMillis:
		enc.AppendInt64(buf, int64(d/time.Millisecond))
	case JSONDurationNanos:
		enc.AppendInt64(buf, d.Nanoseconds())
	default:
		enc.AppendQuoted(buf, d.String())
	}
}

func appendJSONFloat(buf *enc.Buffer, f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		buf.AddBytes(jsonNull)
		return
	}
	enc.AppendFloat64(buf, f)
}

func appendJSONField(buf *enc.Buffer, f *logbridge.Field, opts Options) {
	buf.AddByte(',')
	enc.AppendQuoted(buf, f.K)
	buf.AddByte(':')

	switch f.Kind {
	case logbridge.KindString:
		enc.AppendQuoted(buf, f.Str)
	case logbridge.KindInt64:
		enc.AppendInt64(buf, f.Int64)
	case logbridge.KindUint64:
		enc.AppendUint64(buf, f.Uint64)
	case logbridge.KindFloat64:
		appendJSONFloat(buf, f.Float64)
	case logbridge.KindBool:
		if f.Bool {
			buf.AddBytes(jsonTrue)
		} else {
			buf.AddBytes(jsonFalse)
		}
	case logbridge.KindDuration:
		appendJSONDuration(buf, f.Dur, opts)
	case logbridge.KindTime:
		appendJSONTime(buf, f.Time, opts)
	case logbridge.KindError:
		if f.Err != nil {
			enc.AppendQuoted(buf, f.Err.Error())
		} else {
			buf.AddBytes(jsonNull)
		}
	case logbridge.KindBytes:
		enc.AppendBase64(buf, f.Bytes)
	case logbridge.KindAny:
		appendJSONAny(buf, f.Any, opts)
	default:
		buf.AddBytes(jsonNull)
	}
}

func appendJSONAny(buf *enc.Buffer, v any, opts Options) {
	switch vv := v.(type) {
	case nil:
		buf.AddBytes(jsonNull)
	case RawJSON:
		if len(vv) == 0 {
			buf.AddString(`""`)
		} else {
			buf.AddBytes(vv)
		}
	case json.Marshaler:
		if data, err := vv.MarshalJSON(); err == nil {
			buf.AddBytes(data)
		} else {
			buf.AddBytes(jsonNull)
		}
	case string:
		enc.AppendQuoted(buf, vv)
	case []byte:
		enc.AppendBase64(buf, vv)
	case bool:
		if vv {
			buf.AddBytes(jsonTrue)
		} else {
			buf.AddBytes(jsonFalse)
		}
	case int:
		enc.AppendInt64(buf, int64(vv))
	case int64:
		enc.AppendInt64(buf, vv)
	case uint64:
		enc.AppendUint64(buf, vv)
	case float64:
		appendJSONFloat(buf, vv)
	case time.Time:
		appendJSONTime(buf, vv, opts)
	case time.Duration:
		appendJSONDuration(buf, vv, opts)
	default:
		if data, err := json.Marshal(vv); err == nil {
			buf.AddBytes(data)
		} else {
			buf.AddBytes(jsonNull)
		}
	}
}
