package quote

// Literal quotes SQL string literals: the content is always wrapped in
// single quotes and embedded single quotes are doubled. Backslashes are not
// escaped; the output targets standard-conforming string syntax.
type Literal struct{}

// NeedsQuote always reports true; literals are quoted unconditionally.
func (Literal) NeedsQuote([]byte) bool {
	return true
}

// Quote writes the quoted literal into dst and returns its length.
func (Literal) Quote(dst, src []byte) int {
	return quoteDoubling(dst, src, '\'')
}
