package zapadapter

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/logbridge"
)

// Host adapts a *zap.Logger to logbridge.HostLogger.
//
// Verbosity queries go through the logger's core, so an AtomicLevel changed
// at runtime is observed by the next query. A Bridge only samples them once,
// at construction.
type Host struct {
	l *zap.Logger
}

var _ logbridge.HostLogger = (*Host)(nil)

// New creates a host for the provided zap logger.
func New(l *zap.Logger) *Host {
	if l == nil {
		l = zap.NewNop()
	}
	return &Host{l: l}
}

func (h *Host) Error(msg string, err error) { h.write(zapcore.ErrorLevel, msg, err) }
func (h *Host) Warn(msg string, err error)  { h.write(zapcore.WarnLevel, msg, err) }
func (h *Host) Info(msg string, err error)  { h.write(zapcore.InfoLevel, msg, err) }
func (h *Host) Debug(msg string, err error) { h.write(zapcore.DebugLevel, msg, err) }

func (h *Host) IsDebugEnabled() bool { return h.l.Core().Enabled(zapcore.DebugLevel) }
func (h *Host) IsInfoEnabled() bool  { return h.l.Core().Enabled(zapcore.InfoLevel) }
func (h *Host) IsWarnEnabled() bool  { return h.l.Core().Enabled(zapcore.WarnLevel) }

// Logger returns the wrapped zap logger.
func (h *Host) Logger() *zap.Logger { return h.l }

func (h *Host) write(lvl zapcore.Level, msg string, err error) {
	// Fast path: skip if disabled. Avoids building fields.
	ce := h.l.Check(lvl, msg)
	if ce == nil {
		return
	}
	if err != nil {
		ce.Write(zap.Error(err))
		return
	}
	ce.Write()
}

// toZapLevel maps a bridge level onto zap's, never above Error so library
// code cannot trigger zap's panic or exit paths.
func toZapLevel(l logbridge.Level) zapcore.Level {
	switch {
	case l <= logbridge.LevelDebug:
		return zapcore.DebugLevel // zap has no trace; map to debug
	case l <= logbridge.LevelInfo:
		return zapcore.InfoLevel
	case l <= logbridge.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
