package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/logbridge"
)

// Host adapts a logrus entry to logbridge.HostLogger. Fields already bound
// to the entry are kept on every line.
type Host struct {
	e *logrus.Entry
}

var _ logbridge.HostLogger = (*Host)(nil)

// New wraps a *logrus.Logger; a nil logger falls back to logrus.StandardLogger().
func New(l *logrus.Logger) *Host {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Host{e: logrus.NewEntry(l)}
}

// NewEntry wraps an entry, keeping its bound fields.
func NewEntry(e *logrus.Entry) *Host {
	if e == nil {
		return New(nil)
	}
	return &Host{e: e}
}

func (h *Host) Error(msg string, err error) { h.write(logrus.ErrorLevel, msg, err) }
func (h *Host) Warn(msg string, err error)  { h.write(logrus.WarnLevel, msg, err) }
func (h *Host) Info(msg string, err error)  { h.write(logrus.InfoLevel, msg, err) }
func (h *Host) Debug(msg string, err error) { h.write(logrus.DebugLevel, msg, err) }

func (h *Host) IsDebugEnabled() bool { return h.e.Logger.IsLevelEnabled(logrus.DebugLevel) }
func (h *Host) IsInfoEnabled() bool  { return h.e.Logger.IsLevelEnabled(logrus.InfoLevel) }
func (h *Host) IsWarnEnabled() bool  { return h.e.Logger.IsLevelEnabled(logrus.WarnLevel) }

func (h *Host) write(lvl logrus.Level, msg string, err error) {
	if !h.e.Logger.IsLevelEnabled(lvl) {
		return
	}
	e := h.e
	if err != nil {
		e = e.WithError(err)
	}
	e.Log(lvl, msg)
}

// Level converts a bridge level to a logrus level, capped at Error so a
// bridged record never panics or exits.
func Level(l logbridge.Level) logrus.Level {
	switch {
	case l <= logbridge.LevelTrace:
		return logrus.TraceLevel
	case l <= logbridge.LevelDebug:
		return logrus.DebugLevel
	case l <= logbridge.LevelInfo:
		return logrus.InfoLevel
	case l <= logbridge.LevelWarn:
		return logrus.WarnLevel
	default:
		return logrus.ErrorLevel
	}
}
