package logbridge

import (
	"fmt"
	"strconv"
	"strings"
)

// Level mirrors slog numeric semantics and extends with Trace (-8) and Fatal (12).
// LevelTrace is the finest level a bridge can be configured to forward.
type Level int

const (
	LevelTrace Level = -8
	LevelDebug Level = -4
	LevelInfo  Level = 0
	LevelWarn  Level = 4
	LevelError Level = 8
	LevelFatal Level = 12
)

// String renders the level name, with a signed offset for levels that fall
// between the named ones (e.g. "INFO+2").
func (l Level) String() string {
	name := func(base string, off Level) string {
		if off == 0 {
			return base
		}
		return base + "+" + strconv.Itoa(int(off))
	}
	switch {
	case l < LevelDebug:
		if l < LevelTrace {
			return "TRACE" + strconv.Itoa(int(l-LevelTrace))
		}
		return name("TRACE", l-LevelTrace)
	case l < LevelInfo:
		return name("DEBUG", l-LevelDebug)
	case l < LevelWarn:
		return name("INFO", l-LevelInfo)
	case l < LevelError:
		return name("WARN", l-LevelWarn)
	case l < LevelFatal:
		return name("ERROR", l-LevelError)
	default:
		return name("FATAL", l-LevelFatal)
	}
}

// ParseLevel accepts trace|debug|info|warn|warning|error|severe|fatal, case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "finer", "finest":
		return LevelTrace, nil
	case "debug", "fine":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error", "severe":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}
	return LevelInfo, fmt.Errorf("invalid log level value '%s'. Allowed values are [trace debug info warn error fatal]", s)
}

func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
