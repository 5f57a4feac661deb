package sim

// Energy is the life resource carried by an agent.
// Arithmetic never clamps: values can go negative mid-turn, before the
// starvation check runs.
type Energy int

// EnergyFromInt wraps a raw integer as Energy.
func EnergyFromInt(v int) Energy {
	return Energy(v)
}

// Int unwraps the raw integer value.
func (e Energy) Int() int {
	return int(e)
}

// Add returns e + other.
func (e Energy) Add(other Energy) Energy {
	return e + other
}

// Subtract returns e - cost.
func (e Energy) Subtract(cost Energy) Energy {
	return e - cost
}

// SumEnergy totals a list of energy values.
func SumEnergy(values []Energy) Energy {
	var total Energy
	for _, v := range values {
		total += v
	}
	return total
}

// IsPositive reports whether e is strictly greater than zero.
// Zero or less after cost deduction means death.
func (e Energy) IsPositive() bool {
	return e > 0
}

// GreaterThan reports whether e strictly exceeds other.
func (e Energy) GreaterThan(other Energy) bool {
	return e > other
}

// CanSupport reports whether e strictly exceeds the sum of the given costs,
// i.e. whether an agent could pay them all and still be alive afterwards.
func (e Energy) CanSupport(costs ...Energy) bool {
	return e.GreaterThan(SumEnergy(costs))
}
