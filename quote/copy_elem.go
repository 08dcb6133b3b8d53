package quote

// CopyElem escapes field content for the COPY text format. There are no
// wrapping quotes: control characters become backslash-letter pairs,
// backslashes are doubled, and the field delimiter takes a backslash
// prefix, exactly as COPY TO emits them.
type CopyElem struct {
	// Delim is the field delimiter of the enclosing row, '\t' by default in
	// the copy-row encoder.
	Delim byte
}

// NeedsQuote reports whether src contains any byte Quote would rewrite.
func (q CopyElem) NeedsQuote(src []byte) bool {
	return q.countEscapes(src) > 0
}

// Quote writes the escaped form of src into dst and returns its length:
// len(src) plus one byte per escaped character.
func (q CopyElem) Quote(dst, src []byte) int {
	escapes := q.countEscapes(src)
	n := len(src)

	if escapes == 0 {
		if n > 0 && &dst[0] != &src[0] {
			copy(dst, src)
		}

		return n
	}

	w := n + escapes
	di := w
	for si := n - 1; si >= 0; si-- {
		esc, c := q.escape(src[si])
		di--
		dst[di] = c
		if esc {
			di--
			dst[di] = '\\'
		}
	}

	return w
}

func (q CopyElem) countEscapes(src []byte) int {
	escapes := 0
	for _, c := range src {
		if esc, _ := q.escape(c); esc {
			escapes++
		}
	}

	return escapes
}

// escape reports whether c needs a backslash prefix and the byte that
// follows the backslash (the character itself, or its letter form for
// control characters).
func (q CopyElem) escape(c byte) (bool, byte) {
	switch c {
	case '\b':
		return true, 'b'
	case '\f':
		return true, 'f'
	case '\n':
		return true, 'n'
	case '\r':
		return true, 'r'
	case '\t':
		return true, 't'
	case '\v':
		return true, 'v'
	case '\\':
		return true, '\\'
	}

	if c == q.Delim {
		return true, c
	}

	return false, c
}
