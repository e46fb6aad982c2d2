package logrusadapter

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/logbridge"
)

type Format string

const (
	JSONFormat Format = "JSON"
	TextFormat Format = "TEXT"
)

// Config is an explicit, code-first configuration for a logrus host logger.
type Config struct {
	Writer   io.Writer // default: os.Stderr
	MinLevel logbridge.Level
	Format   Format
	Fields   logrus.Fields
}

// NewHost builds a dedicated logrus logger from cfg and wraps it.
func NewHost(cfg Config) *Host {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(formatter(cfg.Format))
	l.SetLevel(Level(cfg.MinLevel))
	e := logrus.NewEntry(l)
	if len(cfg.Fields) > 0 {
		e = e.WithFields(cfg.Fields)
	}
	return NewEntry(e)
}

func formatter(f Format) logrus.Formatter {
	switch f {
	case JSONFormat:
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z"}
	default:
		return &logrus.TextFormatter{
			FullTimestamp:          true,
			TimestampFormat:        "2006-01-02T15:04:05.000Z",
			DisableLevelTruncation: true,
			DisableColors:          true,
		}
	}
}
