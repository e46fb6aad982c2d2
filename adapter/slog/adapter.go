package slogadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/logbridge"
)

// Handler is a slog.Handler that publishes into a logbridge.Handler, which
// makes log/slog the generic facility in front of a Bridge:
//
//	b, _ := logbridge.New(host, "xjc", "UTF-8")
//	logger := slog.New(slogadapter.New(b))
//
// Attributes become Fields; groups are flattened into dotted keys. The first
// attribute holding an error value becomes the record's cause instead of a
// field.
type Handler struct {
	h      logbridge.Handler
	bound  []logbridge.Field
	groups []string
}

var _ slog.Handler = (*Handler)(nil)

func New(h logbridge.Handler) *Handler {
	return &Handler{h: h}
}

// Enabled defers to the target when it can answer (a *logbridge.Bridge can);
// otherwise everything is enabled and filtering happens in Publish.
func (a *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if e, ok := a.h.(interface{ Enabled(logbridge.Level) bool }); ok {
		return e.Enabled(fromSlog(level))
	}
	return true
}

func (a *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]logbridge.Field, 0, len(a.bound)+r.NumAttrs())
	fields = append(fields, a.bound...)
	var cause error
	prefix := a.groupPrefix()
	r.Attrs(func(at slog.Attr) bool {
		if cause == nil {
			if v := at.Value.Resolve(); v.Kind() == slog.KindAny {
				if err, ok := v.Any().(error); ok {
					cause = err
					return true
				}
			}
		}
		fields = appendAttr(fields, prefix, at)
		return true
	})

	at := r.Time
	if at.IsZero() {
		at = time.Now()
	}
	a.h.Publish(logbridge.Record{
		At:      at,
		Level:   fromSlog(r.Level),
		Message: r.Message,
		Fields:  fields,
		Err:     cause,
	})
	return nil
}

func (a *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return a
	}
	child := *a
	child.bound = append([]logbridge.Field(nil), a.bound...)
	prefix := a.groupPrefix()
	for _, at := range attrs {
		child.bound = appendAttr(child.bound, prefix, at)
	}
	return &child
}

func (a *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return a
	}
	child := *a
	child.groups = append(append([]string(nil), a.groups...), name)
	return &child
}

func (a *Handler) groupPrefix() string {
	p := ""
	for _, g := range a.groups {
		p += g + "."
	}
	return p
}

func fromSlog(l slog.Level) logbridge.Level {
	return logbridge.Level(l)
}

func appendAttr(dst []logbridge.Field, prefix string, at slog.Attr) []logbridge.Field {
	if at.Equal(slog.Attr{}) {
		return dst
	}
	v := at.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		sub := prefix
		if at.Key != "" {
			sub = prefix + at.Key + "."
		}
		for _, ga := range v.Group() {
			dst = appendAttr(dst, sub, ga)
		}
		return dst
	}
	return append(dst, toField(prefix+at.Key, v))
}

func toField(k string, v slog.Value) logbridge.Field {
	switch v.Kind() {
	case slog.KindString:
		return logbridge.Str(k, v.String())
	case slog.KindInt64:
		return logbridge.Int64(k, v.Int64())
	case slog.KindUint64:
		return logbridge.Uint64(k, v.Uint64())
	case slog.KindFloat64:
		return logbridge.Float64(k, v.Float64())
	case slog.KindBool:
		return logbridge.Bool(k, v.Bool())
	case slog.KindDuration:
		return logbridge.Dur(k, v.Duration())
	case slog.KindTime:
		return logbridge.Time(k, v.Time())
	default:
		switch x := v.Any().(type) {
		case error:
			return logbridge.Err(k, x)
		case []byte:
			return logbridge.Bytes(k, x)
		default:
			return logbridge.Any(k, x)
		}
	}
}
