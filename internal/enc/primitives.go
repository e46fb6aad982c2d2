package enc

import (
	"encoding/base64"
	"math"
	"strconv"
	"time"
)

func AppendInt64(buf *Buffer, v int64)   { buf.B = strconv.AppendInt(buf.B, v, 10) }
func AppendUint64(buf *Buffer, v uint64) { buf.B = strconv.AppendUint(buf.B, v, 10) }

// AppendFloat64 writes f in shortest form; NaN and infinities are spelled out.
func AppendFloat64(buf *Buffer, f float64) {
	switch {
	case math.IsNaN(f):
		buf.AddString("NaN")
		return
	case math.IsInf(f, 1):
		buf.AddString("+Inf")
		return
	case math.IsInf(f, -1):
		buf.AddString("-Inf")
		return
	}
	buf.B = strconv.AppendFloat(buf.B, f, 'g', -1, 64)
}

func AppendDuration(buf *Buffer, d time.Duration) { buf.AddString(d.String()) }

func AppendTime(buf *Buffer, t time.Time, layout string) {
	if layout == "" {
		layout = time.RFC3339Nano
	}
	buf.B = t.AppendFormat(buf.B, layout)
}

// AppendBase64 writes data as a quoted standard base64 string.
func AppendBase64(buf *Buffer, data []byte) {
	buf.AddByte('"')
	buf.B = base64.StdEncoding.AppendEncode(buf.B, data)
	buf.AddByte('"')
}
