package olog

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/logbridge"
	"github.com/trickstertwo/xclock/adapter/frozen"
)

var testAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestTextLine_FieldsAndNewline(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{Format: FormatText}).
		WithClock(frozen.New(testAt)).
		With(
			logbridge.Str("from", "old"),
			logbridge.Int("count", 2),
			logbridge.Bool("ok", true),
			logbridge.Dur("dur", time.Millisecond),
		)
	h.Info("state changed", nil)

	out := buf.String()
	want := `ts=2025-01-01T00:00:00Z level=INFO msg="state changed" from=old count=2 ok=true dur=1ms` + "\n"
	if out != want {
		t.Fatalf("line mismatch:\n got %q\nwant %q", out, want)
	}
}

func TestTextLine_Cause(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{}).WithClock(frozen.New(testAt))
	h.Error("[gen]: failed", errors.New("disk full"))

	out := buf.String()
	if !strings.Contains(out, `level=ERROR msg="[gen]: failed" error="disk full"`) {
		t.Fatalf("unexpected line: %q", out)
	}
}

func TestTextLine_CustomTimeFormat(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{TimeFormat: "15:04:05"}).WithClock(frozen.New(testAt))
	h.Warn("x", nil)
	if got := buf.String(); got != "ts=00:00:00 level=WARN msg=x\n" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestJSONLine_ObjectAndFields(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	h := New(&buf, Options{Format: FormatJSON}).
		WithClock(frozen.New(at)).
		With(
			logbridge.Str("from", "old"),
			logbridge.Int("count", 2),
			logbridge.Bool("ok", true),
			logbridge.Dur("dur", time.Millisecond),
			logbridge.Any("raw", RawJSON(`{"a":1}`)),
		)
	h.Warn("state changed", errors.New("boom"))

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v (%s)", err, buf.String())
	}
	if m["msg"] != "state changed" || m["level"] != "WARN" || m["error"] != "boom" {
		t.Fatalf("core mismatch: %v", m)
	}
	if m["ts"] != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: %v", m["ts"])
	}
	if m["from"] != "old" || m["count"] != float64(2) || m["ok"] != true || m["dur"] != "1ms" {
		t.Fatalf("field mismatch: %v", m)
	}
	raw, _ := m["raw"].(map[string]any)
	if raw["a"] != float64(1) {
		t.Fatalf("raw json mismatch: %v", m["raw"])
	}
}

func TestJSONLine_NumericTimeAndDuration(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{
		Format:       FormatJSON,
		JSONTime:     JSONTimeUnixMillis,
		JSONDuration: JSONDurationMillis,
	}).WithClock(frozen.New(testAt)).With(logbridge.Dur("took", 1500*time.Millisecond))
	h.Info("done", nil)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if m["ts"] != float64(testAt.UnixMilli()) || m["took"] != float64(1500) {
		t.Fatalf("numeric encoding mismatch: %v", m)
	}
}

func TestVerbosityQueries(t *testing.T) {
	cases := []struct {
		min  logbridge.Level
		want logbridge.Level
	}{
		{logbridge.LevelDebug, logbridge.LevelTrace},
		{logbridge.LevelInfo, logbridge.LevelInfo},
		{logbridge.LevelWarn, logbridge.LevelWarn},
		{logbridge.LevelError, logbridge.LevelError},
	}
	for _, tc := range cases {
		h := New(&bytes.Buffer{}, Options{MinLevel: tc.min})
		got, err := logbridge.LevelFor(h)
		if err != nil || got != tc.want {
			t.Fatalf("min %s: got %s, %v want %s", tc.min, got, err, tc.want)
		}
	}
}

func TestMinLevelFiltersLines(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{MinLevel: logbridge.LevelWarn})
	h.Debug("a", nil)
	h.Info("b", nil)
	h.Warn("c", nil)
	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Fatalf("expected 1 line, got %d: %q", n, buf.String())
	}
	if s := h.Stats(); s.Written != 1 || s.LoggedErrors != 0 {
		t.Fatalf("stats mismatch: %+v", s)
	}
}

func TestBridgeIntoHost(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{MinLevel: logbridge.LevelInfo}).WithClock(frozen.New(testAt))
	br, err := logbridge.New(h, "xjc", "UTF-8")
	if err != nil {
		t.Fatalf("new bridge: %v", err)
	}
	br.Publish(logbridge.NewRecord(testAt, logbridge.LevelDebug, "dropped"))
	br.Publish(logbridge.NewRecord(testAt, logbridge.LevelInfo, "generated", logbridge.Int("files", 3)))

	want := `ts=2025-01-01T00:00:00Z level=INFO msg="[xjc]: generated files=3"` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("line mismatch:\n got %q\nwant %q", got, want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

type countingMetrics struct {
	mu    sync.Mutex
	calls int
	errs  int
}

func (c *countingMetrics) LoggedMessage(_ logbridge.Level, _ float64, _ int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if err != nil {
		c.errs++
	}
}

func TestWriteErrorsAndMetrics(t *testing.T) {
	var handled []error
	m := &countingMetrics{}
	h := NewHost(Config{
		Writer:       failingWriter{},
		ErrorHandler: func(err error) { handled = append(handled, err) },
		Metrics:      m,
	})
	h.Info("x", nil)
	h.Warn("y", nil)

	if len(handled) != 2 {
		t.Fatalf("expected 2 handled errors, got %d", len(handled))
	}
	if s := h.Stats(); s.LoggedErrors != 2 || s.Written != 0 {
		t.Fatalf("stats mismatch: %+v", s)
	}
	if m.calls != 2 || m.errs != 2 {
		t.Fatalf("metrics mismatch: %+v", m)
	}
	h.ResetStats()
	if s := h.Stats(); s.LoggedErrors != 0 {
		t.Fatalf("reset failed: %+v", s)
	}
}

func TestLevelWriterFactory(t *testing.T) {
	var out, errOut bytes.Buffer
	h := NewHost(Config{
		WriterFactory: &LevelWriterFactory{
			Default:     &out,
			LevelWriter: map[logbridge.Level]io.Writer{logbridge.LevelError: &errOut},
		},
		Fields: []logbridge.Field{logbridge.Str("svc", "gen")},
	})
	h.Info("fine", nil)
	h.Error("bad", nil)

	if !strings.Contains(out.String(), "msg=fine svc=gen") || strings.Contains(out.String(), "bad") {
		t.Fatalf("default writer mismatch: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "msg=bad svc=gen") {
		t.Fatalf("error writer mismatch: %q", errOut.String())
	}
}

func TestConcurrentWritesKeepLinesWhole(t *testing.T) {
	var buf bytes.Buffer
	h := New(&buf, Options{})
	child := h.With(logbridge.Str("child", "yes"))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				h.Info("parent", nil)
				child.Info("child", nil)
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 800 {
		t.Fatalf("expected 800 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if !strings.HasPrefix(l, "ts=") {
			t.Fatalf("torn line: %q", l)
		}
	}
	if s := h.Stats(); s.Written != 800 {
		t.Fatalf("shared stats mismatch: %+v", s)
	}
}

type latencyMetrics struct {
	got *[]float64
}

func (l latencyMetrics) LoggedMessage(_ logbridge.Level, durMS float64, _ int, _ error) {
	*l.got = append(*l.got, durMS)
}

func TestSetMetricsCollector_SwapsTypes(t *testing.T) {
	var lat []float64
	counting := &countingMetrics{}
	h := New(io.Discard, Options{}).WithClock(frozen.New(testAt))

	h.SetMetricsCollector(latencyMetrics{got: &lat})
	h.Info("a", nil)
	h.SetMetricsCollector(counting)
	h.Info("b", nil)
	h.SetMetricsCollector(nil)
	h.Info("c", nil)

	if len(lat) != 1 || lat[0] != 0 {
		t.Fatalf("latency should come from the host clock: %v", lat)
	}
	if counting.calls != 1 {
		t.Fatalf("expected 1 counted call, got %d", counting.calls)
	}
	if s := h.Stats(); s.Written != 3 {
		t.Fatalf("stats mismatch: %+v", s)
	}
}
