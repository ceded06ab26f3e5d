package marginx

// quoteFunc renders a string value as a quoted token appended to dst. The
// formatter selects the variant once at construction, so the escaping step is
// a plain function parameter of the visitor rather than a wrapping layer.
type quoteFunc func(dst []byte, s string) []byte

func quoteString(dst []byte, s string) []byte {
	return appendQuoted(dst, s, false)
}

func quoteStringMarkup(dst []byte, s string) []byte {
	return appendQuoted(dst, s, true)
}

// appendQuoted appends s as a quoted JSON string token. Quotes, backslashes,
// and control characters are always escaped. When markup is set, characters
// that are sensitive when the output is embedded in a markup context
// (<, >, &, =, ') are additionally written as \u00xx sequences.
func appendQuoted(dst []byte, s string, markup bool) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\', '"':
			dst = append(dst, '\\', c)
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '<', '>', '&', '=', '\'':
			if markup {
				dst = appendUnicodeEscape(dst, c)
			} else {
				dst = append(dst, c)
			}
		default:
			if c < 0x20 {
				dst = appendUnicodeEscape(dst, c)
				continue
			}
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}

func appendUnicodeEscape(dst []byte, c byte) []byte {
	return append(dst, '\\', 'u', '0', '0', hexDigit(c>>4), hexDigit(c&0x0f))
}

func hexDigit(v byte) byte {
	if v < 10 {
		return '0' + v
	}
	return 'a' + (v - 10)
}
