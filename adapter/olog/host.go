package olog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/logbridge"
	"github.com/trickstertwo/logbridge/internal/enc"
	"github.com/trickstertwo/xclock"
)

// Host writes one line per call to an io.Writer and implements logbridge.HostLogger.
type Host struct {
	writerFactory WriterFactory
	opts          Options
	formatter     LineFormatter
	clock         xclock.Clock

	// Shared across children returned by With.
	mu      *sync.Mutex
	stats   *stats
	metrics *atomic.Pointer[metricsHolder]

	boundText []byte
	boundJSON []byte
}

var _ logbridge.HostLogger = (*Host)(nil)

// metricsHolder gives every stored collector the same concrete type.
type metricsHolder struct{ MetricsCollector }

// New creates a Host writing to w.
func New(w io.Writer, opts Options) *Host {
	if w == nil {
		w = os.Stdout
	}
	return NewWithWriterFactory(&DefaultWriterFactory{Writer: w}, opts)
}

// NewWithWriterFactory creates a Host with per-level writer routing.
func NewWithWriterFactory(wf WriterFactory, opts Options) *Host {
	if opts.Format == 0 {
		opts.Format = FormatText
	}
	if opts.JSONTime == 0 {
		opts.JSONTime = JSONTimeRFC3339Nano
	}
	if opts.JSONDuration == 0 {
		opts.JSONDuration = JSONDurationString
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = 512
	}
	h := &Host{
		writerFactory: wf,
		opts:          opts,
		mu:            &sync.Mutex{},
		stats:         &stats{},
		metrics:       &atomic.Pointer[metricsHolder]{},
	}
	if opts.Format == FormatJSON {
		h.formatter = &JSONFormatter{}
	} else {
		h.formatter = &TextFormatter{}
	}
	h.metrics.Store(&metricsHolder{&NoopMetricsCollector{}})
	return h
}

// With returns a child Host whose lines carry the given fields. The child
// shares the writer lock, stats and metrics with its parent.
func (h *Host) With(fields ...logbridge.Field) *Host {
	if len(fields) == 0 {
		return h
	}
	c := *h
	c.boundText = append(append([]byte(nil), h.boundText...), encodeBoundText(fields)...)
	c.boundJSON = append(append([]byte(nil), h.boundJSON...), encodeBoundJSON(fields, h.opts)...)
	return &c
}

// WithClock returns a child Host stamping lines from clk instead of the process clock.
func (h *Host) WithClock(clk xclock.Clock) *Host {
	c := *h
	c.clock = clk
	return &c
}

func (h *Host) SetMetricsCollector(m MetricsCollector) {
	if m == nil {
		m = &NoopMetricsCollector{}
	}
	h.metrics.Store(&metricsHolder{m})
}

func (h *Host) Stats() StatsSnapshot { return h.stats.snapshot() }
func (h *Host) ResetStats()          { h.stats.reset() }

func (h *Host) MinLevel() logbridge.Level { return h.opts.MinLevel }

func (h *Host) Enabled(level logbridge.Level) bool { return level >= h.opts.MinLevel }

func (h *Host) IsDebugEnabled() bool { return h.Enabled(logbridge.LevelDebug) }
func (h *Host) IsInfoEnabled() bool  { return h.Enabled(logbridge.LevelInfo) }
func (h *Host) IsWarnEnabled() bool  { return h.Enabled(logbridge.LevelWarn) }

func (h *Host) Error(msg string, err error) { h.Log(logbridge.LevelError, msg, err) }
func (h *Host) Warn(msg string, err error)  { h.Log(logbridge.LevelWarn, msg, err) }
func (h *Host) Info(msg string, err error)  { h.Log(logbridge.LevelInfo, msg, err) }
func (h *Host) Debug(msg string, err error) { h.Log(logbridge.LevelDebug, msg, err) }

// Log formats and writes a single line when level passes MinLevel.
func (h *Host) Log(level logbridge.Level, msg string, cause error) {
	if !h.Enabled(level) {
		return
	}
	at := h.now()

	buf := enc.Get(h.opts.BufferSize)
	bound := h.boundText
	if h.opts.Format == FormatJSON {
		bound = h.boundJSON
	}
	h.formatter.FormatLogLine(buf, level, msg, at, cause, bound, h.opts)
	size := buf.Len()

	w := h.writerFactory.GetWriter(level)
	h.mu.Lock()
	_, err := w.Write(buf.B)
	h.mu.Unlock()
	enc.Put(buf)

	if err != nil {
		h.stats.loggedErrors.Add(1)
		if h.opts.ErrorHandler != nil {
			h.opts.ErrorHandler(err)
		}
	} else {
		h.stats.written.Add(1)
	}
	h.metrics.Load().LoggedMessage(level, float64(h.since(at).Microseconds())/1000.0, size, err)
}

func (h *Host) now() time.Time {
	if h.clock != nil {
		return h.clock.Now()
	}
	return xclock.Now()
}

func (h *Host) since(t time.Time) time.Duration {
	if h.clock != nil {
		return h.clock.Since(t)
	}
	return xclock.Since(t)
}
