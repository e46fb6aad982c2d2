package slogadapter

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/logbridge"
)

// Host adapts a *slog.Logger to logbridge.HostLogger. The cause, when
// present, is attached as an "error" attribute.
type Host struct {
	l *slog.Logger
}

var _ logbridge.HostLogger = (*Host)(nil)

func NewHost(l *slog.Logger) *Host {
	if l == nil {
		l = slog.Default()
	}
	return &Host{l: l}
}

func (h *Host) Error(msg string, err error) { h.write(slog.LevelError, msg, err) }
func (h *Host) Warn(msg string, err error)  { h.write(slog.LevelWarn, msg, err) }
func (h *Host) Info(msg string, err error)  { h.write(slog.LevelInfo, msg, err) }
func (h *Host) Debug(msg string, err error) { h.write(slog.LevelDebug, msg, err) }

func (h *Host) IsDebugEnabled() bool { return h.l.Enabled(context.Background(), slog.LevelDebug) }
func (h *Host) IsInfoEnabled() bool  { return h.l.Enabled(context.Background(), slog.LevelInfo) }
func (h *Host) IsWarnEnabled() bool  { return h.l.Enabled(context.Background(), slog.LevelWarn) }

func (h *Host) write(lvl slog.Level, msg string, err error) {
	if err != nil {
		h.l.LogAttrs(context.Background(), lvl, msg, slog.Any("error", err))
		return
	}
	h.l.LogAttrs(context.Background(), lvl, msg)
}
