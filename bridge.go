package logbridge

import (
	"strings"
)

// Bridge is a Handler that forwards records to a HostLogger.
//
// Everything a Bridge holds is fixed by New: the prefix, the minimum level
// (mirrored from the host's verbosity at construction time), the formatter
// and the output encoding. Publish takes no locks; concurrent use is as safe
// as the host logger's own emission methods.
type Bridge struct {
	host      HostLogger
	prefix    string
	level     Level
	formatter Formatter
	charset   charset
}

var _ Handler = (*Bridge)(nil)

// Option configures a Bridge during New.
type Option func(*Bridge)

// WithFormatter replaces the default MessageFormatter.
func WithFormatter(f Formatter) Option {
	return func(b *Bridge) {
		if f != nil {
			b.formatter = f
		}
	}
}

// New binds a Bridge to host. A non-empty prefix is rendered as "[prefix]: "
// in front of every message. encoding names the output text encoding; an
// empty name is rejected, while an unknown one is reported once through
// host.Error and otherwise ignored (UTF-8 stays in effect).
func New(host HostLogger, prefix, encoding string, opts ...Option) (*Bridge, error) {
	if host == nil {
		return nil, invalidArg("host", "must not be nil")
	}
	if strings.TrimSpace(encoding) == "" {
		return nil, invalidArg("encoding", "must not be empty")
	}

	b := &Bridge{
		host:      host,
		prefix:    displayPrefix(prefix),
		level:     MustLevelFor(host),
		formatter: MessageFormatter{},
	}
	for _, opt := range opts {
		opt(b)
	}

	cs, err := lookupCharset(encoding)
	if err != nil {
		host.Error("Could not use encoding '"+encoding+"'", err)
	} else {
		b.charset = cs
	}
	return b, nil
}

func displayPrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	return "[" + prefix + "]: "
}

// Publish formats r and hands it to exactly one host method. Records below
// the bridge's level are dropped silently.
func (b *Bridge) Publish(r Record) {
	if !b.Enabled(r.Level) {
		return
	}
	msg := b.charset.apply(b.prefix + b.formatter.Format(r))
	dispatch(b.host, r.Level, msg, r.Err)
}

// Enabled reports whether records at level would reach the host.
func (b *Bridge) Enabled(level Level) bool { return level >= b.level }

// Flush is a no-op: the host logger owns any buffering.
func (b *Bridge) Flush() error { return nil }

// Close is a no-op and never closes the host logger.
func (b *Bridge) Close() error { return nil }

func (b *Bridge) Level() Level { return b.level }

// Prefix returns the rendered prefix, "" or "[name]: ".
func (b *Bridge) Prefix() string { return b.prefix }

// Encoding returns the canonical name of the encoding in effect.
func (b *Bridge) Encoding() string { return b.charset.Name() }

func (b *Bridge) Host() HostLogger { return b.host }
