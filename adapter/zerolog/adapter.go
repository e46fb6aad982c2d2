package zerologadapter

import (
	"github.com/rs/zerolog"

	"github.com/trickstertwo/logbridge"
)

// Host adapts a zerolog.Logger to logbridge.HostLogger. Both the logger's
// own level and zerolog's global level gate the verbosity queries.
type Host struct {
	l zerolog.Logger
}

var _ logbridge.HostLogger = (*Host)(nil)

func New(l zerolog.Logger) *Host {
	return &Host{l: l}
}

func (h *Host) Error(msg string, err error) { h.write(zerolog.ErrorLevel, msg, err) }
func (h *Host) Warn(msg string, err error)  { h.write(zerolog.WarnLevel, msg, err) }
func (h *Host) Info(msg string, err error)  { h.write(zerolog.InfoLevel, msg, err) }
func (h *Host) Debug(msg string, err error) { h.write(zerolog.DebugLevel, msg, err) }

func (h *Host) IsDebugEnabled() bool { return h.enabled(zerolog.DebugLevel) }
func (h *Host) IsInfoEnabled() bool  { return h.enabled(zerolog.InfoLevel) }
func (h *Host) IsWarnEnabled() bool  { return h.enabled(zerolog.WarnLevel) }

func (h *Host) enabled(lvl zerolog.Level) bool {
	return lvl >= h.l.GetLevel() && lvl >= zerolog.GlobalLevel()
}

func (h *Host) write(lvl zerolog.Level, msg string, err error) {
	// Fast path: drop early if below logger's min level (no Event allocation).
	if !h.enabled(lvl) {
		return
	}
	ev := h.l.WithLevel(lvl)
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

// mapLevel converts logbridge.Level to zerolog.Level.
// logbridge.LevelFatal is mapped to Error to avoid zerolog.Fatal() (which would exit the process).
func mapLevel(l logbridge.Level) zerolog.Level {
	switch {
	case l <= logbridge.LevelTrace:
		return zerolog.TraceLevel
	case l <= logbridge.LevelDebug:
		return zerolog.DebugLevel
	case l <= logbridge.LevelInfo:
		return zerolog.InfoLevel
	case l <= logbridge.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
