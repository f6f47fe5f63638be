package rng

import "fmt"

// Script is a Source that replays a fixed sequence of draws. Tests use
// it to force a specific car placement, pick, or host choice.
type Script struct {
	values []int
	pos    int
}

// NewScript returns a Script that yields the given values in order.
func NewScript(values ...int) *Script {
	return &Script{values: values}
}

// IntN returns the next scripted value. It panics when the script is
// exhausted or the next value falls outside [0, n); both indicate a
// broken test setup rather than a runtime condition.
func (s *Script) IntN(n int) int {
	if s.pos >= len(s.values) {
		panic("rng: script exhausted")
	}
	v := s.values[s.pos]
	s.pos++
	if v < 0 || v >= n {
		panic(fmt.Sprintf("rng: scripted value %d out of range [0, %d)", v, n))
	}
	return v
}

// Remaining reports how many scripted values have not been consumed.
func (s *Script) Remaining() int {
	return len(s.values) - s.pos
}
