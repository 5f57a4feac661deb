package sim

// SpeciesConfig holds the per-species economy constants, immutable during a
// step. Nutrition is the energy gained by eating: a caught rabbit for foxes,
// grass for rabbits.
type SpeciesConfig struct {
	CostOfLiving Energy
	BirthCost    Energy
	Nutrition    Energy
}

// Step advances the whole grid by one day and returns the successor grid and
// generator state. Same grid, configs and seed always produce the same result.
//
// Positions of the tick-start snapshot are visited exactly once in row-major
// order, but each turn reads and writes the in-progress grid, so agents
// visited later in the tick see the moves, meals and births of agents visited
// earlier. A position whose in-progress occupant no longer matches the
// snapshot kind is skipped: the agent there was eaten, or another agent moved
// into a slot whose occupant left. An agent therefore acts at most once per
// tick and never acts after dying.
func Step(g Grid, foxCfg, rabbitCfg SpeciesConfig, seed Seed) (Grid, Seed) {
	next := g.Clone()
	g.Walk(func(p Position, snapshot Cell) {
		if snapshot.IsEmpty() {
			return
		}
		current := next.Get(p)
		if current.Kind != snapshot.Kind {
			return
		}
		switch current.Kind {
		case KindFox:
			seed = foxTurn(&next, p, current, foxCfg, seed)
		case KindRabbit:
			seed = rabbitTurn(&next, p, current, rabbitCfg, seed)
		}
	})
	return next, seed
}

// foxTurn applies one fox's day, in strict priority order:
// starve, eat an adjacent rabbit, give birth into an adjacent empty slot,
// move to an adjacent empty slot, stay put.
func foxTurn(g *Grid, p Position, fox Cell, cfg SpeciesConfig, seed Seed) Seed {
	remaining := fox.Energy.Subtract(cfg.CostOfLiving)
	if !remaining.IsPositive() {
		g.Set(p, Empty)
		return seed
	}

	if prey := g.NearbyRabbits(p); len(prey) > 0 {
		target, next := choosePosition(prey, seed)
		g.Set(target, Empty)
		g.Set(p, NewFox(remaining.Add(cfg.Nutrition)))
		return next
	}

	empties := g.NearbyEmpties(p)
	if fox.Energy.CanSupport(cfg.BirthCost, cfg.CostOfLiving) && len(empties) > 0 {
		den, next := choosePosition(empties, seed)
		g.Set(p, NewFox(remaining.Subtract(cfg.BirthCost)))
		g.Set(den, NewFox(cfg.BirthCost))
		return next
	}

	if len(empties) > 0 {
		dest, next := choosePosition(empties, seed)
		g.Move(p, dest, NewFox(remaining))
		return next
	}

	g.Set(p, NewFox(remaining))
	return seed
}

// rabbitTurn applies one rabbit's day: starve, flee to a safe empty slot when
// a fox is adjacent, otherwise give birth into a safe empty slot when rich
// enough, otherwise graze in place.
func rabbitTurn(g *Grid, p Position, rabbit Cell, cfg SpeciesConfig, seed Seed) Seed {
	remaining := rabbit.Energy.Subtract(cfg.CostOfLiving)
	if !remaining.IsPositive() {
		g.Set(p, Empty)
		return seed
	}

	if !g.IsSafe(p) {
		refuges := g.NearbySafeEmpties(p)
		if len(refuges) == 0 {
			// Cornered: nowhere safe to run.
			g.Set(p, NewRabbit(remaining))
			return seed
		}
		dest, next := choosePosition(refuges, seed)
		g.Move(p, dest, NewRabbit(remaining))
		return next
	}

	refuges := g.NearbySafeEmpties(p)
	if rabbit.Energy.CanSupport(cfg.BirthCost, cfg.CostOfLiving) && len(refuges) > 0 {
		nest, next := choosePosition(refuges, seed)
		g.Set(p, NewRabbit(remaining.Subtract(cfg.BirthCost)))
		g.Set(nest, NewRabbit(cfg.BirthCost))
		return next
	}

	g.Set(p, NewRabbit(remaining.Add(cfg.Nutrition)))
	return seed
}
