package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/logbridge"
)

// Config is an explicit, code-first configuration for a zap host logger.
type Config struct {
	Writer        io.Writer // default: os.Stdout
	MinLevel      logbridge.Level
	Console       bool                  // pretty console-like output via zapcore.NewConsoleEncoder
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	Caller        bool                  // include caller in logs
	CallerSkip    int
}

// NewHost builds a zap logger from cfg and wraps it. The returned
// AtomicLevel can retune the backend later; bridges created before that keep
// the threshold they sampled.
func NewHost(cfg Config) (*Host, zap.AtomicLevel) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
			LineEnding:     zapcore.DefaultLineEnding,
		}
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	al := zap.NewAtomicLevelAt(toZapLevel(cfg.MinLevel))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel + 1), // effectively off for normal levels
	}
	if cfg.Caller {
		skip := cfg.CallerSkip
		if skip <= 0 {
			skip = 2
		}
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(skip))
	}
	return New(zap.New(core, opts...)), al
}
