package logbridge

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

const defaultCharset = "UTF-8"

// charset is a resolved output text encoding. The zero value means UTF-8,
// for which no transcoding is needed.
type charset struct {
	name string
	enc  encoding.Encoding
}

var errUnsupportedCharset = errors.New("unsupported encoding")

// lookupCharset resolves an IANA name, falling back to WHATWG labels so that
// common spellings like "utf8" or "latin1" are accepted. Labels that only map
// to the WHATWG replacement encoding are rejected: every message would decode
// to a single U+FFFD.
func lookupCharset(name string) (charset, error) {
	name = strings.TrimSpace(name)
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		if enc, err = htmlindex.Get(name); err != nil {
			return charset{}, errors.Wrap(errUnsupportedCharset, name)
		}
	}
	if enc == encoding.Replacement {
		return charset{}, errors.Wrap(errUnsupportedCharset, name)
	}
	canonical := canonicalName(enc, name)
	if strings.EqualFold(canonical, defaultCharset) {
		return charset{name: defaultCharset}, nil
	}
	return charset{name: canonical, enc: enc}, nil
}

// canonicalName prefers the MIME name (ISO-8859-1, Shift_JIS), then the IANA
// primary name, then the WHATWG name.
func canonicalName(enc encoding.Encoding, fallback string) string {
	if n, err := ianaindex.MIME.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := ianaindex.IANA.Name(enc); err == nil && n != "" {
		return n
	}
	if n, err := htmlindex.Name(enc); err == nil && n != "" {
		return n
	}
	return strings.ToUpper(fallback)
}

func (c charset) Name() string {
	if c.name == "" {
		return defaultCharset
	}
	return c.name
}

// apply round-trips s through the encoding so characters it cannot represent
// are replaced by the encoding's substitution byte.
func (c charset) apply(s string) string {
	if c.enc == nil {
		return s
	}
	encoded, err := encoding.ReplaceUnsupported(c.enc.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	decoded, err := c.enc.NewDecoder().String(encoded)
	if err != nil {
		return s
	}
	return decoded
}
