// Package stats collects the per-day population and energy history and
// exports it as CSV.
package stats

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"predprey/src/sim"
)

// Record is one day's snapshot of the ecosystem.
type Record struct {
	Day          int `csv:"day"`
	Foxes        int `csv:"foxes"`
	Rabbits      int `csv:"rabbits"`
	FoxEnergy    int `csv:"fox_energy"`
	RabbitEnergy int `csv:"rabbit_energy"`
}

// Summary condenses a run's history into its headline numbers.
// Extinction days are -1 when the species survived the whole run.
type Summary struct {
	Days                int
	PeakFoxes           int
	PeakRabbits         int
	FoxExtinctionDay    int
	RabbitExtinctionDay int
}

// Recorder owns an append-only day series. The engine only produces the
// per-tick snapshots; the recorder keeps the history.
type Recorder struct {
	records []Record
}

// NewRecorder returns an empty history.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe appends one day's snapshot.
func (r *Recorder) Observe(day int, pop sim.Populations, energy sim.EnergyStat) {
	r.records = append(r.records, Record{
		Day:          day,
		Foxes:        pop.Foxes,
		Rabbits:      pop.Rabbits,
		FoxEnergy:    energy.Foxes.Int(),
		RabbitEnergy: energy.Rabbits.Int(),
	})
}

// Len returns the number of recorded days.
func (r *Recorder) Len() int {
	return len(r.records)
}

// Records returns a copy of the recorded series.
func (r *Recorder) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Reset discards the history.
func (r *Recorder) Reset() {
	r.records = r.records[:0]
}

// Summary computes the run's headline numbers.
func (r *Recorder) Summary() Summary {
	s := Summary{
		Days:                len(r.records),
		FoxExtinctionDay:    -1,
		RabbitExtinctionDay: -1,
	}
	for _, rec := range r.records {
		if rec.Foxes > s.PeakFoxes {
			s.PeakFoxes = rec.Foxes
		}
		if rec.Rabbits > s.PeakRabbits {
			s.PeakRabbits = rec.Rabbits
		}
		if rec.Foxes == 0 && s.FoxExtinctionDay == -1 {
			s.FoxExtinctionDay = rec.Day
		}
		if rec.Rabbits == 0 && s.RabbitExtinctionDay == -1 {
			s.RabbitExtinctionDay = rec.Day
		}
	}
	return s
}

// WriteCSV writes the history, header included, to w.
func (r *Recorder) WriteCSV(w io.Writer) error {
	if err := gocsv.Marshal(r.records, w); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}

// WriteFile writes the history to a CSV file at path.
func (r *Recorder) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	return r.WriteCSV(f)
}
