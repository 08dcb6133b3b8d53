package quote

import "bytes"

// Ident quotes SQL identifiers: the content is always wrapped in double
// quotes and embedded double quotes are doubled. Unconditional quoting keeps
// case-sensitive and keyword-colliding names safe without a keyword table.
type Ident struct{}

// NeedsQuote always reports true; identifiers are quoted unconditionally.
func (Ident) NeedsQuote([]byte) bool {
	return true
}

// Quote writes the quoted identifier into dst and returns its length.
func (Ident) Quote(dst, src []byte) int {
	return quoteDoubling(dst, src, '"')
}

// quoteDoubling wraps src in the quote character q, doubling embedded
// occurrences of q. Shared by the identifier and literal dialects; writes
// right-to-left so dst may alias src at its base.
func quoteDoubling(dst, src []byte, q byte) int {
	w := len(src) + bytes.Count(src, []byte{q}) + 2
	di := w - 1
	dst[di] = q
	for si := len(src) - 1; si >= 0; si-- {
		c := src[si]
		di--
		dst[di] = c
		if c == q {
			di--
			dst[di] = q
		}
	}
	dst[0] = q

	return w
}
