package quote

import "bytes"

var nullWord = []byte("NULL")

// ArrayElem quotes element content for PostgreSQL array literals.
//
// Content is wrapped in double quotes when it is empty, spells NULL in any
// letter case, or contains a quote, backslash, brace, the array delimiter,
// or whitespace. Embedded quotes and backslashes take a backslash prefix.
// Clean content passes through unchanged.
type ArrayElem struct {
	// Delim is the delimiter of the enclosing array. Content containing it
	// must be quoted even though the character itself needs no escape.
	Delim byte
}

// NeedsQuote reports whether the content requires quoting.
func (q ArrayElem) NeedsQuote(src []byte) bool {
	need, _ := q.scan(src)
	return need
}

// Quote writes the array-literal form of src into dst and returns its
// length: len(src) when no quoting is needed, otherwise len(src) plus one
// byte per embedded quote or backslash plus the two wrapping quotes.
func (q ArrayElem) Quote(dst, src []byte) int {
	need, escapes := q.scan(src)
	n := len(src)

	if !need {
		if n > 0 && &dst[0] != &src[0] {
			copy(dst, src)
		}

		return n
	}

	w := n + escapes + 2
	di := w - 1
	dst[di] = '"'
	for si := n - 1; si >= 0; si-- {
		c := src[si]
		di--
		dst[di] = c
		if c == '"' || c == '\\' {
			di--
			dst[di] = '\\'
		}
	}
	dst[0] = '"'

	return w
}

// scan decides quoting and counts the bytes needing a backslash prefix in
// a single pass.
func (q ArrayElem) scan(src []byte) (need bool, escapes int) {
	if len(src) == 0 || bytes.EqualFold(src, nullWord) {
		return true, 0
	}

	for _, c := range src {
		switch {
		case c == '"' || c == '\\':
			need = true
			escapes++
		case c == '{' || c == '}' || c == q.Delim ||
			c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			need = true
		}
	}

	return need, escapes
}
