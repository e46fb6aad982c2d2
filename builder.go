package logbridge

import "github.com/trickstertwo/xclock"

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Handlers  []Handler
	MinLevel  Level
	Observers []Observer
	Clock     xclock.Clock // optional; defaults to xclock.Now
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
	err error
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{MinLevel: LevelInfo}}
}

func (b *Builder) WithHandler(h Handler) *Builder {
	if h != nil {
		b.cfg.Handlers = append(b.cfg.Handlers, h)
	}
	return b
}

// WithBridge builds a Bridge for host and registers it. Construction errors
// surface from Build.
func (b *Builder) WithBridge(host HostLogger, prefix, encoding string, opts ...Option) *Builder {
	br, err := New(host, prefix, encoding, opts...)
	if err != nil {
		b.err = err
		return b
	}
	return b.WithHandler(br)
}

func (b *Builder) WithMinLevel(l Level) *Builder {
	b.cfg.MinLevel = l
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.cfg.Handlers) == 0 {
		return nil, ErrNoHandler
	}
	return newLogger(b.cfg), nil
}
