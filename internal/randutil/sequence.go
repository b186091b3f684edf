package randutil

// Sequence is a scripted picker that replays a fixed list of choices. Each
// call to IntN returns the next value reduced modulo n; once the script is
// exhausted it keeps returning 0. It is meant for tests that need to know
// exactly which card a deck will draw next.
type Sequence struct {
	values []int
	pos    int
}

// NewSequence creates a picker that replays values in order
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntN returns the next scripted value in [0, n)
func (s *Sequence) IntN(n int) int {
	if n <= 0 {
		panic("randutil: invalid argument to IntN")
	}
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos] % n
	s.pos++
	if v < 0 {
		v += n
	}
	return v
}

// Used returns how many scripted values have been consumed
func (s *Sequence) Used() int {
	return s.pos
}
