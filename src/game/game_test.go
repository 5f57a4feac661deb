package game

import (
	"testing"
	"time"

	"predprey/src/sim"
)

func newTestOptions() *Options {
	o := DefaultOptions
	o.Interval = 0
	o.MaxDays = 0
	o.Seed = 42
	return &o
}

func newStatusCh() chan Status {
	return make(chan Status, 10)
}

func waitForState(t *testing.T, ch chan Status, want ...State) Status {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case st := <-ch:
			for _, w := range want {
				if st.State == w {
					return st
				}
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %v", want)
		}
	}
}

func TestStepAdvancesDay(t *testing.T) {
	statusCh := newStatusCh()
	g := New(newTestOptions(), statusCh)
	defer g.Close()

	g.Step()
	st := waitForState(t, statusCh, StateManual, StateFinished)

	if st.Day != 1 {
		t.Errorf("Day = %v, want 1", st.Day)
	}
	// Day 0 snapshot plus one stepped day.
	if got := len(g.History()); got != 2 {
		t.Errorf("history holds %v records, want 2", got)
	}
}

func TestExtinctionFinishes(t *testing.T) {
	statusCh := newStatusCh()
	g := New(newTestOptions(), statusCh)
	defer g.Close()

	grid := sim.EmptyGrid(sim.Dimensions{Width: 3, Height: 3})
	grid.Set(sim.Position{X: 1, Y: 1}, sim.NewFox(1))
	g.LoadGrid(grid)
	waitForState(t, statusCh, StateManual)

	g.Step()
	st := waitForState(t, statusCh, StateFinished)

	if st.Populations.Foxes != 0 || st.Populations.Rabbits != 0 {
		t.Errorf("populations = %+v, want all zero", st.Populations)
	}
	if st.Day != 1 {
		t.Errorf("Day = %v, want 1", st.Day)
	}
}

func TestScenarioThroughShell(t *testing.T) {
	statusCh := newStatusCh()
	g := New(newTestOptions(), statusCh)
	defer g.Close()

	grid := sim.EmptyGrid(sim.Dimensions{Width: 3, Height: 3})
	grid.Set(sim.Position{X: 1, Y: 1}, sim.NewFox(5))
	grid.Set(sim.Position{X: 1, Y: 0}, sim.NewRabbit(5))
	g.LoadGrid(grid)
	waitForState(t, statusCh, StateManual)

	g.Step()
	// The last rabbit is eaten, so the step finishes the game.
	st := waitForState(t, statusCh, StateFinished)

	if st.Populations.Foxes != 1 || st.Populations.Rabbits != 0 {
		t.Errorf("populations = %+v, want 1 fox, 0 rabbits", st.Populations)
	}
	got := g.Grid().Get(sim.Position{X: 1, Y: 1})
	if !got.IsFox() || got.Energy.Int() != 9 {
		t.Errorf("(1,1) = %v, want fox with energy 9", got)
	}
}

func TestReset(t *testing.T) {
	statusCh := newStatusCh()
	g := New(newTestOptions(), statusCh)
	defer g.Close()

	g.Step()
	waitForState(t, statusCh, StateManual, StateFinished)

	g.Reset()
	st := waitForState(t, statusCh, StateManual)

	if st.Day != 0 {
		t.Errorf("Day after reset = %v, want 0", st.Day)
	}
	if got := len(g.History()); got != 1 {
		t.Errorf("history holds %v records after reset, want 1", got)
	}
}

func TestSetConfigs(t *testing.T) {
	statusCh := newStatusCh()
	g := New(newTestOptions(), statusCh)
	defer g.Close()

	fox := sim.SpeciesConfig{CostOfLiving: 2, BirthCost: 5, Nutrition: 9}
	rabbit := sim.SpeciesConfig{CostOfLiving: 1, BirthCost: 2, Nutrition: 4}
	g.SetConfigs(fox, rabbit)

	// LoadGrid is serialized behind SetConfigs on the control channel, so
	// its status doubles as a sync point.
	g.LoadGrid(sim.EmptyGrid(sim.Dimensions{Width: 3, Height: 3}))
	waitForState(t, statusCh, StateManual)

	gotFox, gotRabbit := g.Configs()
	if gotFox != fox || gotRabbit != rabbit {
		t.Errorf("Configs = %+v / %+v, want %+v / %+v", gotFox, gotRabbit, fox, rabbit)
	}
}

func TestRunStopsAtMaxDays(t *testing.T) {
	statusCh := newStatusCh()
	o := newTestOptions()
	o.MaxDays = 3
	g := New(o, statusCh)
	defer g.Close()

	g.Run()
	st := waitForState(t, statusCh, StateFinished)

	// Extinction may end the run early, but never past the day limit.
	if st.Day < 1 || st.Day > 3 {
		t.Errorf("Day = %v, want within [1,3]", st.Day)
	}
}

func TestToggleCell(t *testing.T) {
	statusCh := newStatusCh()
	g := New(newTestOptions(), statusCh)
	defer g.Close()

	g.LoadGrid(sim.EmptyGrid(sim.Dimensions{Width: 3, Height: 3}))
	waitForState(t, statusCh, StateManual)

	g.ToggleCell(0, 0)
	if got := g.Grid().Get(sim.Position{X: 0, Y: 0}); !got.IsRabbit() {
		t.Fatalf("first toggle = %v, want rabbit", got)
	}
	g.ToggleCell(0, 0)
	if got := g.Grid().Get(sim.Position{X: 0, Y: 0}); !got.IsFox() {
		t.Fatalf("second toggle = %v, want fox", got)
	}
	g.ToggleCell(0, 0)
	if got := g.Grid().Get(sim.Position{X: 0, Y: 0}); !got.IsEmpty() {
		t.Fatalf("third toggle = %v, want empty", got)
	}

	// Out of range clicks are ignored.
	g.ToggleCell(9, 9)
	if pop := g.Grid().Populations(); pop.Foxes != 0 || pop.Rabbits != 0 {
		t.Errorf("out-of-range toggle changed the grid: %+v", pop)
	}
}
