// Package rngtest provides a scripted rng.Source for deterministic tests.
package rngtest

// Source replays queued draws and falls back to fixed defaults once a queue
// is exhausted. The defaults make every trial fail: IntN returns n-1 (so
// OneIn is false and Between yields its upper bound) and Float64 returns
// DefaultFloat.
type Source struct {
	ints   []int
	floats []float64

	DefaultFloat float64
}

// New returns a Source with DefaultFloat 0.999.
func New() *Source {
	return &Source{DefaultFloat: 0.999}
}

// Ints queues IntN results, consumed in order.
func (s *Source) Ints(v ...int) *Source {
	s.ints = append(s.ints, v...)
	return s
}

// Floats queues Float64 results, consumed in order.
func (s *Source) Floats(v ...float64) *Source {
	s.floats = append(s.floats, v...)
	return s
}

// Pending reports how many queued draws have not been consumed yet.
func (s *Source) Pending() int {
	return len(s.ints) + len(s.floats)
}

func (s *Source) IntN(n int) int {
	if len(s.ints) == 0 {
		return n - 1
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func (s *Source) Float64() float64 {
	if len(s.floats) == 0 {
		return s.DefaultFloat
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}
