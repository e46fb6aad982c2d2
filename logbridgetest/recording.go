package logbridgetest

import (
	"sync"

	"github.com/trickstertwo/logbridge"
)

// Call is one recorded emission.
type Call struct {
	Method string // "error", "warn", "info" or "debug"
	Msg    string
	Err    error
}

// RecordingHost is a concurrency-safe HostLogger that remembers every call.
// Verbosity flags are fixed at construction.
type RecordingHost struct {
	debug, info, warn bool

	mu    sync.Mutex
	calls []Call
}

var _ logbridge.HostLogger = (*RecordingHost)(nil)

func NewRecordingHost(debug, info, warn bool) *RecordingHost {
	return &RecordingHost{debug: debug, info: info, warn: warn}
}

// NewRecordingHostAt enables the flags that a host running at level would report.
func NewRecordingHostAt(level logbridge.Level) *RecordingHost {
	return NewRecordingHost(
		level <= logbridge.LevelDebug,
		level <= logbridge.LevelInfo,
		level <= logbridge.LevelWarn,
	)
}

func (h *RecordingHost) add(method, msg string, err error) {
	h.mu.Lock()
	h.calls = append(h.calls, Call{Method: method, Msg: msg, Err: err})
	h.mu.Unlock()
}

func (h *RecordingHost) Error(msg string, err error) { h.add("error", msg, err) }
func (h *RecordingHost) Warn(msg string, err error)  { h.add("warn", msg, err) }
func (h *RecordingHost) Info(msg string, err error)  { h.add("info", msg, err) }
func (h *RecordingHost) Debug(msg string, err error) { h.add("debug", msg, err) }

func (h *RecordingHost) IsDebugEnabled() bool { return h.debug }
func (h *RecordingHost) IsInfoEnabled() bool  { return h.info }
func (h *RecordingHost) IsWarnEnabled() bool  { return h.warn }

// Calls returns a copy of the recorded calls in order.
func (h *RecordingHost) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Call(nil), h.calls...)
}

// Methods returns just the method names, handy for table assertions.
func (h *RecordingHost) Methods() []string {
	calls := h.Calls()
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.Method
	}
	return out
}

func (h *RecordingHost) Reset() {
	h.mu.Lock()
	h.calls = nil
	h.mu.Unlock()
}
