package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/logbridge"
)

// Config is an explicit, code-first configuration for a zerolog host logger.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	MinLevel          logbridge.Level
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339
	Caller            bool   // include caller in logs
	NoTimestamp       bool
}

// NewHost builds a zerolog logger from cfg and wraps it.
func NewHost(cfg Config) *Host {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
		if cfg.ConsoleTimeFormat == "" {
			cw.TimeFormat = time.RFC3339
		} else {
			cw.TimeFormat = cfg.ConsoleTimeFormat
		}
		// If caller isn't enabled, hide the caller column to avoid "<nil>".
		if !cfg.Caller {
			cw.PartsExclude = append(cw.PartsExclude, zerolog.CallerFieldName)
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	zl = zl.Level(mapLevel(cfg.MinLevel))
	ctx := zl.With()
	if !cfg.NoTimestamp {
		ctx = ctx.Timestamp()
	}
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	return New(ctx.Logger())
}
