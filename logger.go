package logbridge

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"
)

// Logger is a local logging context. Handlers are attached explicitly with
// AddHandler or through the Builder; there is no process-wide registry.
type Logger struct {
	clock      xclock.Clock // nil means xclock.Now
	minLevel   Level
	baseFields []Field

	// Handlers and observers: lock-free reads via atomic.Value; synchronized
	// updates via mu. Stored slices MUST be treated as immutable by readers.
	handlers  atomic.Value // holds []Handler
	observers atomic.Value // holds []Observer
	mu        sync.Mutex
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	l := &Logger{
		clock:    cfg.Clock,
		minLevel: cfg.MinLevel,
	}
	l.handlers.Store(append([]Handler(nil), cfg.Handlers...))
	l.observers.Store(append([]Observer(nil), cfg.Observers...))
	return l
}

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level >= l.minLevel
}

// Level entry points returning fluent builders.

func (l *Logger) Trace() *Event { return getEvent(l, LevelTrace) }
func (l *Logger) Debug() *Event { return getEvent(l, LevelDebug) }
func (l *Logger) Info() *Event  { return getEvent(l, LevelInfo) }
func (l *Logger) Warn() *Event  { return getEvent(l, LevelWarn) }
func (l *Logger) Error() *Event { return getEvent(l, LevelError) }
func (l *Logger) Fatal() *Event { return getEvent(l, LevelFatal) }

// At returns a builder for an arbitrary level.
func (l *Logger) At(level Level) *Event { return getEvent(l, level) }

// With returns a child logger with bound fields. The child shares a snapshot
// of the parent's handlers and observers.
func (l *Logger) With(fs ...Field) *Logger {
	child := &Logger{
		clock:      l.clock,
		minLevel:   l.minLevel,
		baseFields: append(copyFields(nil, l.baseFields), fs...),
	}
	child.handlers.Store(l.snapshotHandlers())
	child.observers.Store(l.snapshotObservers())
	return child
}

// AddHandler registers h. Records emitted afterwards reach it.
func (l *Logger) AddHandler(h Handler) {
	if h == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers.Store(append(l.snapshotHandlers(), h))
}

// RemoveHandler unregisters h; it reports whether h was registered.
func (l *Logger) RemoveHandler(h Handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur := l.snapshotHandlers()
	for i := range cur {
		if reflect.TypeOf(cur[i]).Comparable() && cur[i] == h {
			l.handlers.Store(append(cur[:i:i], cur[i+1:]...))
			return true
		}
	}
	return false
}

func (l *Logger) AddObserver(o Observer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.observers.Store(append(l.snapshotObservers(), o))
}

// Flush flushes every handler and joins their errors.
func (l *Logger) Flush() error {
	var errs []error
	for _, h := range l.loadHandlers() {
		if err := h.Flush(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every handler and joins their errors. The logger keeps its
// handlers; closing twice is up to each handler.
func (l *Logger) Close() error {
	var errs []error
	for _, h := range l.loadHandlers() {
		if err := h.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (l *Logger) loadHandlers() []Handler {
	v, _ := l.handlers.Load().([]Handler)
	return v
}

func (l *Logger) snapshotHandlers() []Handler {
	cur := l.loadHandlers()
	if len(cur) == 0 {
		return nil
	}
	out := make([]Handler, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) snapshotObservers() []Observer {
	cur, _ := l.observers.Load().([]Observer)
	if len(cur) == 0 {
		return nil
	}
	out := make([]Observer, len(cur))
	copy(out, cur)
	return out
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

func (l *Logger) emit(level Level, msg string, args []any, evFields []Field, cause error) {
	if level < l.minLevel {
		return
	}
	handlers := l.loadHandlers()
	obs, _ := l.observers.Load().([]Observer)
	if len(handlers) == 0 && len(obs) == 0 {
		return
	}

	// Handlers and observers see combined fields: base + event. The event's
	// slice is pooled, so the record always gets its own copy.
	var fields []Field
	if n := len(l.baseFields) + len(evFields); n > 0 {
		fields = make([]Field, 0, n)
		fields = append(fields, l.baseFields...)
		fields = append(fields, evFields...)
	}

	r := Record{
		// Single authoritative timestamp
		At:      l.now(),
		Level:   level,
		Message: msg,
		Args:    args,
		Fields:  fields,
		Err:     cause,
	}
	for _, h := range handlers {
		h.Publish(r)
	}
	for _, o := range obs {
		o.OnLog(r)
	}
}
