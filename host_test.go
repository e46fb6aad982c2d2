package logbridge

import (
	"errors"
	"sync"
	"testing"
)

// stubHost is a minimal HostLogger for tests. It records every call and
// reports the verbosity flags it was built with.
type stubHost struct {
	mu    sync.Mutex
	debug bool
	info  bool
	warn  bool
	calls []stubCall
}

type stubCall struct {
	Method string
	Msg    string
	Err    error
}

func newStubHost(debug, info, warn bool) *stubHost {
	return &stubHost{debug: debug, info: info, warn: warn}
}

func (h *stubHost) record(method, msg string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls = append(h.calls, stubCall{Method: method, Msg: msg, Err: err})
}

func (h *stubHost) Error(msg string, err error) { h.record("error", msg, err) }
func (h *stubHost) Warn(msg string, err error)  { h.record("warn", msg, err) }
func (h *stubHost) Info(msg string, err error)  { h.record("info", msg, err) }
func (h *stubHost) Debug(msg string, err error) { h.record("debug", msg, err) }
func (h *stubHost) IsDebugEnabled() bool        { return h.debug }
func (h *stubHost) IsInfoEnabled() bool         { return h.info }
func (h *stubHost) IsWarnEnabled() bool         { return h.warn }

func (h *stubHost) Calls() []stubCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]stubCall, len(h.calls))
	copy(out, h.calls)
	return out
}

func TestLevelFor_Precedence(t *testing.T) {
	cases := []struct {
		debug, info, warn bool
		want              Level
	}{
		{true, true, true, LevelTrace},
		{true, false, false, LevelTrace},
		{true, true, false, LevelTrace},
		{true, false, true, LevelTrace},
		{false, true, true, LevelInfo},
		{false, true, false, LevelInfo},
		{false, false, true, LevelWarn},
		{false, false, false, LevelError},
	}
	for _, c := range cases {
		got, err := LevelFor(newStubHost(c.debug, c.info, c.warn))
		if err != nil {
			t.Fatalf("LevelFor(%v,%v,%v): %v", c.debug, c.info, c.warn, err)
		}
		if got != c.want {
			t.Fatalf("LevelFor(debug=%v info=%v warn=%v) = %v, want %v", c.debug, c.info, c.warn, got, c.want)
		}
	}
}

func TestLevelFor_NilHost(t *testing.T) {
	if _, err := LevelFor(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMustLevelFor_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustLevelFor(nil)
}

func TestLevelFor_IsPure(t *testing.T) {
	h := newStubHost(false, true, true)
	for i := 0; i < 3; i++ {
		if got := MustLevelFor(h); got != LevelInfo {
			t.Fatalf("call %d: got %v", i, got)
		}
	}
	if n := len(h.Calls()); n != 0 {
		t.Fatalf("LevelFor emitted %d host calls", n)
	}
}
