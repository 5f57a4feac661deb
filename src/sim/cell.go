// Package sim implements the ecosystem core: the grid, the energy economy
// and the per-species stepping rules, with an explicit generator state
// threaded through every randomized choice.
package sim

// Kind discriminates the occupant of a grid slot.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindFox
	KindRabbit
)

func (k Kind) String() string {
	switch k {
	case KindFox:
		return "fox"
	case KindRabbit:
		return "rabbit"
	default:
		return "empty"
	}
}

// Cell is one grid slot: empty, or a fox/rabbit carrying its energy.
// Cells are plain values owned by the grid; an agent has no identity beyond
// its position at a given instant.
type Cell struct {
	Kind   Kind
	Energy Energy
}

// Empty is the unoccupied cell value.
var Empty = Cell{}

// NewFox returns a fox cell with the given energy.
func NewFox(e Energy) Cell {
	return Cell{Kind: KindFox, Energy: e}
}

// NewRabbit returns a rabbit cell with the given energy.
func NewRabbit(e Energy) Cell {
	return Cell{Kind: KindRabbit, Energy: e}
}

func (c Cell) IsEmpty() bool  { return c.Kind == KindEmpty }
func (c Cell) IsFox() bool    { return c.Kind == KindFox }
func (c Cell) IsRabbit() bool { return c.Kind == KindRabbit }
