package sim

// Seed is the explicit pseudo-random generator state threaded through the
// engine: every call takes a seed in and hands the successor seed out, so a
// run is reproducible from its starting value alone. There is no hidden or
// global generator anywhere in the package.
//
// The generator is splitmix64; one Intn call consumes exactly one state step.
type Seed uint64

// NewSeed wraps a raw value as generator state.
func NewSeed(v uint64) Seed {
	return Seed(v)
}

func (s Seed) next() (uint64, Seed) {
	state := uint64(s) + 0x9E3779B97F4A7C15
	z := state
	z ^= z >> 30
	z *= 0xBF58476D1CE4E5B9
	z ^= z >> 27
	z *= 0x94D049BB133111EB
	z ^= z >> 31
	return z, Seed(state)
}

// Intn draws a uniform value in [0, n) and returns the successor seed.
// n must be positive; callers guard empty candidate sets before drawing.
func (s Seed) Intn(n int) (int, Seed) {
	if n <= 0 {
		panic("sim: Intn on non-positive bound")
	}
	v, next := s.next()
	return int(v % uint64(n)), next
}

// choosePosition draws uniformly among a non-empty candidate list,
// consuming one generator step.
func choosePosition(candidates []Position, s Seed) (Position, Seed) {
	idx, next := s.Intn(len(candidates))
	return candidates[idx], next
}
