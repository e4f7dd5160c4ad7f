package problemgen

import "math/rand/v2"

// Stream is a source of uniform floats in [0, 1).
type Stream interface {
	Float64() float64

	// Reproducible reports whether the stream replays identically for the
	// same construction arguments.
	Reproducible() bool
}

const (
	mod31 = 1 << 31
	mod32 = 1 << 32
)

// SeededStream is a deterministic linear-congruential stream derived from a
// (seed, slot) pair. Each slot gets its own state; nothing is shared.
type SeededStream struct {
	state uint64
	calls uint64
}

// NewSeededStream mixes seed and slot into a 31-bit initial state.
func NewSeededStream(seed, slot int64) *SeededStream {
	s := (mod(seed, mod31)*7919 + mod(slot, mod31)*9973) % mod31
	return &SeededStream{state: uint64(s)}
}

// Float64 advances the state and returns the next value.
func (s *SeededStream) Float64() float64 {
	s.calls++
	s.state = (s.state*1664525 + 1013904223 + s.calls*17) % mod32
	return float64(s.state%mod31) / mod31
}

func (s *SeededStream) Reproducible() bool { return true }

type ambientStream struct{}

// AmbientStream returns a stream backed by the process-wide random source.
// Its output is NOT reproducible and must not be used where a paper has to
// be regenerated from its seed.
func AmbientStream() Stream { return ambientStream{} }

func (ambientStream) Float64() float64   { return rand.Float64() }
func (ambientStream) Reproducible() bool { return false }

// mod returns the non-negative remainder of a divided by m.
func mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
