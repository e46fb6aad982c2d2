package olog

import (
	"io"

	"github.com/trickstertwo/logbridge"
)

// Config is an explicit, code-first configuration for the line-writing host.
type Config struct {
	// Writer receives all lines when WriterFactory is nil. Defaults to os.Stdout.
	Writer io.Writer

	// WriterFactory optionally routes lines by level and takes precedence over Writer.
	WriterFactory WriterFactory

	MinLevel     logbridge.Level
	Format       Format
	ErrorHandler ErrorHandler
	TimeFormat   string
	JSONTime     JSONTimeEncoding
	JSONDuration JSONDurationEncoding
	BufferSize   int
	Fields       []logbridge.Field

	Metrics MetricsCollector // optional
}

// NewHost builds a Host from cfg. No envs, no init-time magic.
func NewHost(cfg Config) *Host {
	opts := Options{
		Format:       cfg.Format,
		MinLevel:     cfg.MinLevel,
		ErrorHandler: cfg.ErrorHandler,
		TimeFormat:   cfg.TimeFormat,
		JSONTime:     cfg.JSONTime,
		JSONDuration: cfg.JSONDuration,
		BufferSize:   cfg.BufferSize,
	}

	var h *Host
	if cfg.WriterFactory != nil {
		h = NewWithWriterFactory(cfg.WriterFactory, opts)
	} else {
		h = New(cfg.Writer, opts)
	}
	if cfg.Metrics != nil {
		h.SetMetricsCollector(cfg.Metrics)
	}
	return h.With(cfg.Fields...)
}
