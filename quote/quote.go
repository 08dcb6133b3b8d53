// Package quote implements the escaping dialects the text encoders emit
// through: array-element quoting, SQL identifier quoting, SQL string-literal
// quoting, and COPY text-format field escaping. The dialects are mutually
// incompatible; each is a Strategy behind the same two-method surface.
//
// Every strategy writes right-to-left: the closing quote first, then the
// source bytes back to front with each escape byte placed immediately before
// the character it protects, and the opening quote last. Because a
// destination cell is only written after the source cell at or past it has
// been consumed, dst may alias src; this is how elements already written
// into an output buffer are quoted in place without a staging copy.
//
// Aliasing contract: dst and src either do not overlap at all, or share
// their first byte (&dst[0] == &src[0]) with dst extending at least
// MaxQuoted(len(src)) bytes. Partial overlaps are not supported.
package quote

// Strategy is one escaping dialect.
type Strategy interface {
	// NeedsQuote reports whether Quote would alter src (wrap or escape it).
	NeedsQuote(src []byte) bool

	// Quote writes the quoted/escaped form of src into dst and returns the
	// number of bytes written, at most MaxQuoted(len(src)). dst must be
	// sized by the caller; see the package aliasing contract.
	Quote(dst, src []byte) int
}

// MaxQuoted returns the worst-case quoted size of n source bytes: every
// byte escaped plus two wrapping quote characters.
func MaxQuoted(n int) int {
	return 2*n + 2
}
