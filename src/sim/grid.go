package sim

// Position is an (x, y) coordinate into a grid.
// Valid range is [0, width) x [0, height).
type Position struct {
	X int
	Y int
}

// Dimensions describe a grid's fixed size.
type Dimensions struct {
	Width  int
	Height int
}

// Neighbor pairs an adjacent position with the cell currently occupying it.
type Neighbor struct {
	Pos  Position
	Cell Cell
}

// Populations counts the live agents of each species.
type Populations struct {
	Foxes   int
	Rabbits int
}

// EnergyStat is a snapshot of the total live energy per species.
type EnergyStat struct {
	Foxes   Energy
	Rabbits Energy
}

// neighborOffsets enumerate the up-to-8 adjacent slots in a fixed order, so
// neighbor queries are deterministic for a given grid and position.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is a fixed-size rectangular field of cells stored in row-major order.
// Every in-range position holds exactly one cell for the grid's lifetime.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// EmptyGrid returns a grid of the given dimensions with every cell empty.
func EmptyGrid(d Dimensions) Grid {
	return Grid{
		width:  d.Width,
		height: d.Height,
		cells:  make([]Cell, d.Width*d.Height),
	}
}

// FromCells builds a grid from a flat row-major cell list.
// Reports ok=false when the list length does not match the dimensions; the
// caller is expected to fall back to EmptyGrid.
func FromCells(d Dimensions, cells []Cell) (Grid, bool) {
	if len(cells) != d.Width*d.Height {
		return Grid{}, false
	}
	g := EmptyGrid(d)
	copy(g.cells, cells)
	return g, true
}

// Width returns the number of columns.
func (g Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g Grid) Height() int { return g.height }

// Dimensions returns the grid's size.
func (g Grid) Dimensions() Dimensions {
	return Dimensions{Width: g.width, Height: g.height}
}

// Contains reports whether p is in range.
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

func (g Grid) index(p Position) int {
	return p.Y*g.width + p.X
}

// Get returns the cell at p. The position must be in range.
func (g Grid) Get(p Position) Cell {
	return g.cells[g.index(p)]
}

// Set replaces the cell at p. The position must be in range.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[g.index(p)] = c
}

// Move empties the source slot and places the cell at the destination.
// The two writes form one operation; callers must never split them, or an
// agent could be duplicated or lost mid-step.
func (g *Grid) Move(from, to Position, c Cell) {
	g.Set(from, Empty)
	g.Set(to, c)
}

// Clone returns a deep copy sharing no storage with the receiver.
func (g Grid) Clone() Grid {
	c := Grid{width: g.width, height: g.height, cells: make([]Cell, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// Walk visits every cell in row-major order.
func (g Grid) Walk(cb func(p Position, c Cell)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Position{X: x, Y: y}
			cb(p, g.cells[g.index(p)])
		}
	}
}

// Neighbors returns the in-range adjacent positions of p with their current
// cells, in a fixed, stable order.
func (g Grid) Neighbors(p Position) []Neighbor {
	res := make([]Neighbor, 0, 8)
	for _, off := range neighborOffsets {
		n := Position{X: p.X + off[0], Y: p.Y + off[1]}
		if !g.Contains(n) {
			continue
		}
		res = append(res, Neighbor{Pos: n, Cell: g.Get(n)})
	}
	return res
}

func (g Grid) nearby(p Position, keep func(Neighbor) bool) []Position {
	var res []Position
	for _, n := range g.Neighbors(p) {
		if keep(n) {
			res = append(res, n.Pos)
		}
	}
	return res
}

// NearbyRabbits returns the positions of rabbits adjacent to p.
func (g Grid) NearbyRabbits(p Position) []Position {
	return g.nearby(p, func(n Neighbor) bool { return n.Cell.IsRabbit() })
}

// NearbyFoxes returns the positions of foxes adjacent to p.
func (g Grid) NearbyFoxes(p Position) []Position {
	return g.nearby(p, func(n Neighbor) bool { return n.Cell.IsFox() })
}

// NearbyEmpties returns the empty positions adjacent to p.
func (g Grid) NearbyEmpties(p Position) []Position {
	return g.nearby(p, func(n Neighbor) bool { return n.Cell.IsEmpty() })
}

// NearbySafeEmpties returns the empty positions adjacent to p whose own
// neighborhoods hold no fox, i.e. slots one fox-hop out of danger.
func (g Grid) NearbySafeEmpties(p Position) []Position {
	return g.nearby(p, func(n Neighbor) bool {
		return n.Cell.IsEmpty() && g.IsSafe(n.Pos)
	})
}

// IsSafe reports whether no cell adjacent to p holds a fox.
func (g Grid) IsSafe(p Position) bool {
	for _, n := range g.Neighbors(p) {
		if n.Cell.IsFox() {
			return false
		}
	}
	return true
}

// Populations counts the live agents of each species.
func (g Grid) Populations() Populations {
	var pop Populations
	for _, c := range g.cells {
		switch c.Kind {
		case KindFox:
			pop.Foxes++
		case KindRabbit:
			pop.Rabbits++
		}
	}
	return pop
}

// EnergyStats sums the live energy per species.
func (g Grid) EnergyStats() EnergyStat {
	var es EnergyStat
	for _, c := range g.cells {
		switch c.Kind {
		case KindFox:
			es.Foxes = es.Foxes.Add(c.Energy)
		case KindRabbit:
			es.Rabbits = es.Rabbits.Add(c.Energy)
		}
	}
	return es
}

// Equal reports whether two grids have identical dimensions and cells.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
