package sim

// Relative spawn weights for a freshly generated grid.
// P(fox) = 1/6, P(rabbit) = 2/6, P(empty) = 3/6.
const (
	spawnWeightFox    = 1
	spawnWeightRabbit = 2
	spawnWeightEmpty  = 3
	spawnWeightTotal  = spawnWeightFox + spawnWeightRabbit + spawnWeightEmpty
)

// Generate populates a fresh grid of the given dimensions, drawing each
// slot independently with fox:rabbit:empty weights 1:2:3. Every spawned
// agent starts with the given initial energy. One draw is consumed per slot.
func Generate(d Dimensions, initial Energy, seed Seed) (Grid, Seed) {
	cells := make([]Cell, 0, d.Width*d.Height)
	for i := 0; i < d.Width*d.Height; i++ {
		var roll int
		roll, seed = seed.Intn(spawnWeightTotal)
		switch {
		case roll < spawnWeightFox:
			cells = append(cells, NewFox(initial))
		case roll < spawnWeightFox+spawnWeightRabbit:
			cells = append(cells, NewRabbit(initial))
		default:
			cells = append(cells, Empty)
		}
	}
	g, ok := FromCells(d, cells)
	if !ok {
		g = EmptyGrid(d)
	}
	return g, seed
}
