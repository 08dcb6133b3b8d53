package textenc

type scratchState uint8

const (
	scratchEmpty scratchState = iota
	scratchInt
	scratchBytes
)

// Scratch carries encoder state between the size-query phase and the write
// phase of a single Encode call. It holds either nothing, a coerced integer
// stashed by the size phase, or the fully materialized output bytes.
//
// A Scratch belongs to one value at a time. Reset it (or use a fresh one)
// before encoding the next value; a stale stash would be replayed into the
// wrong output.
type Scratch struct {
	state scratchState
	i     int64
	buf   []byte
}

// Reset clears the scratch back to its empty state and drops any buffer
// reference so the bytes can be collected.
func (s *Scratch) Reset() {
	s.state = scratchEmpty
	s.i = 0
	s.buf = nil
}

// IsSet reports whether the scratch holds anything from a size phase.
func (s *Scratch) IsSet() bool { return s.state != scratchEmpty }

// SetBytes stores b as the materialized output. The scratch takes ownership
// of b; callers hand over freshly allocated bytes, never pooled buffers.
func (s *Scratch) SetBytes(b []byte) {
	s.state = scratchBytes
	s.buf = b
}

// Bytes returns the materialized output, or nil when the scratch holds no
// bytes.
func (s *Scratch) Bytes() []byte {
	if s.state != scratchBytes {
		return nil
	}
	return s.buf
}

// setInt stashes the coerced integer computed by the size phase so the
// write phase can emit digits without re-coercing the value.
func (s *Scratch) setInt(x int64) {
	s.state = scratchInt
	s.i = x
}

// intStash returns the stashed integer and whether one is present.
func (s *Scratch) intStash() (int64, bool) {
	return s.i, s.state == scratchInt
}
