package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/logbridge"
)

// NewJSONHost builds a Host on a slog JSON handler.
func NewJSONHost(w io.Writer, minLevel logbridge.Level, opts *slog.HandlerOptions) *Host {
	return NewHost(slog.New(slog.NewJSONHandler(writerOrStdout(w), handlerOptions(minLevel, opts))))
}

// NewTextHost builds a Host on a slog text handler.
func NewTextHost(w io.Writer, minLevel logbridge.Level, opts *slog.HandlerOptions) *Host {
	return NewHost(slog.New(slog.NewTextHandler(writerOrStdout(w), handlerOptions(minLevel, opts))))
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// handlerOptions copies opts so the caller's value keeps its own Level.
func handlerOptions(minLevel logbridge.Level, opts *slog.HandlerOptions) *slog.HandlerOptions {
	var o slog.HandlerOptions
	if opts != nil {
		o = *opts
	}
	o.Level = slog.Level(minLevel)
	return &o
}
