package stats

import (
	"strings"
	"testing"

	"predprey/src/sim"
)

func TestRecorderObserve(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, sim.Populations{Foxes: 2, Rabbits: 5}, sim.EnergyStat{Foxes: 10, Rabbits: 25})
	r.Observe(1, sim.Populations{Foxes: 3, Rabbits: 4}, sim.EnergyStat{Foxes: 12, Rabbits: 20})

	if r.Len() != 2 {
		t.Fatalf("Len = %v, want 2", r.Len())
	}
	records := r.Records()
	if records[1].Day != 1 || records[1].Foxes != 3 || records[1].RabbitEnergy != 20 {
		t.Errorf("record 1 = %+v", records[1])
	}

	// Records returns a copy.
	records[0].Foxes = 99
	if r.Records()[0].Foxes == 99 {
		t.Error("Records exposed internal storage")
	}
}

func TestSummary(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, sim.Populations{Foxes: 2, Rabbits: 5}, sim.EnergyStat{})
	r.Observe(1, sim.Populations{Foxes: 4, Rabbits: 7}, sim.EnergyStat{})
	r.Observe(2, sim.Populations{Foxes: 0, Rabbits: 9}, sim.EnergyStat{})

	s := r.Summary()
	if s.Days != 3 {
		t.Errorf("Days = %v, want 3", s.Days)
	}
	if s.PeakFoxes != 4 || s.PeakRabbits != 9 {
		t.Errorf("peaks = %v/%v, want 4/9", s.PeakFoxes, s.PeakRabbits)
	}
	if s.FoxExtinctionDay != 2 {
		t.Errorf("FoxExtinctionDay = %v, want 2", s.FoxExtinctionDay)
	}
	if s.RabbitExtinctionDay != -1 {
		t.Errorf("RabbitExtinctionDay = %v, want -1", s.RabbitExtinctionDay)
	}
}

func TestReset(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, sim.Populations{Foxes: 1, Rabbits: 1}, sim.EnergyStat{})
	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len after Reset = %v, want 0", r.Len())
	}
}

func TestWriteCSV(t *testing.T) {
	r := NewRecorder()
	r.Observe(0, sim.Populations{Foxes: 2, Rabbits: 5}, sim.EnergyStat{Foxes: 10, Rabbits: 25})
	r.Observe(1, sim.Populations{Foxes: 3, Rabbits: 4}, sim.EnergyStat{Foxes: 12, Rabbits: 20})

	var b strings.Builder
	if err := r.WriteCSV(&b); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	out := b.String()

	if !strings.HasPrefix(out, "day,foxes,rabbits,fox_energy,rabbit_energy") {
		t.Errorf("missing header, got %q", out)
	}
	if !strings.Contains(out, "0,2,5,10,25") {
		t.Errorf("missing day 0 row, got %q", out)
	}
	if !strings.Contains(out, "1,3,4,12,20") {
		t.Errorf("missing day 1 row, got %q", out)
	}
}
