package sim

import "testing"

func TestEnergyArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Energy
		want int
	}{
		{"add", EnergyFromInt(3).Add(EnergyFromInt(4)), 7},
		{"subtract", EnergyFromInt(3).Subtract(EnergyFromInt(4)), -1},
		{"subtract no clamp", EnergyFromInt(0).Subtract(EnergyFromInt(10)), -10},
		{"sum", SumEnergy([]Energy{1, 2, 3}), 6},
		{"sum empty", SumEnergy(nil), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Int() != tt.want {
				t.Errorf("got %v, want %v", tt.got.Int(), tt.want)
			}
		})
	}
}

func TestEnergyComparisons(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"positive", EnergyFromInt(1).IsPositive(), true},
		{"zero is not positive", EnergyFromInt(0).IsPositive(), false},
		{"negative is not positive", EnergyFromInt(-1).IsPositive(), false},
		{"greater", EnergyFromInt(5).GreaterThan(4), true},
		{"equal is not greater", EnergyFromInt(5).GreaterThan(5), false},
		{"can support", EnergyFromInt(5).CanSupport(3, 1), true},
		{"exact total cannot support", EnergyFromInt(4).CanSupport(3, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}
