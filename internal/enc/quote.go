package enc

import "unicode/utf8"

const hexDigits = "0123456789abcdef"

// AppendQuoted writes s as a JSON string literal.
func AppendQuoted(buf *Buffer, s string) {
	buf.AddByte('"')
	appendQuotedContent(buf, s)
	buf.AddByte('"')
}

func appendQuotedContent(buf *Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c >= 0x20 && c != '\\' && c != '"' && c < 0x80 {
			i++
			continue
		}
		if start < i {
			buf.AddString(s[start:i])
		}
		if c < 0x80 {
			switch c {
			case '\\', '"':
				buf.AddByte('\\')
				buf.AddByte(c)
			case '\n':
				buf.AddString(`\n`)
			case '\r':
				buf.AddString(`\r`)
			case '\t':
				buf.AddString(`\t`)
			default:
				buf.AddString(`\u00`)
				buf.AddByte(hexDigits[c>>4])
				buf.AddByte(hexDigits[c&0xF])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			buf.AddString(`\uFFFD`)
		case r == '\u2028':
			buf.AddString(`\u2028`)
		case r == '\u2029':
			buf.AddString(`\u2029`)
		default:
			i += size
			continue
		}
		i += size
		start = i
	}
	if start < len(s) {
		buf.AddString(s[start:])
	}
}

// AppendTextString writes s bare, or quoted when it holds spaces, quotes,
// '=' or control characters.
func AppendTextString(buf *Buffer, s string) {
	if s == "" {
		buf.AddString(`""`)
		return
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x20 || c == '"' || c == '=' {
			AppendQuoted(buf, s)
			return
		}
	}
	buf.AddString(s)
}
