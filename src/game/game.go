// Package game owns the simulation shell: the grid, the generator seed, the
// species configuration, the day counter and the run history. It drives the
// stepping engine once per tick and publishes status to viewers.
package game

import (
	"sync"
	"time"

	"predprey/src/sim"
	"predprey/src/stats"
)

// State is the shell's running mode at a concrete moment.
type State int

const (
	StateManual State = iota
	StateStepping
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateStepping:
		return "stepping"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "waiting"
	}
}

// Pacing bounds for Faster/Slower.
const (
	MinInterval = 25 * time.Millisecond
	MaxInterval = 5 * time.Second
)

// Options represents the shell's configurable options.
type Options struct {
	Width           int
	Height          int
	InitialEnergy   sim.Energy
	Interval        time.Duration
	MaxDays         int // 0 = unlimited
	MaxSkippedTicks int
	Seed            uint64
	Fox             sim.SpeciesConfig
	Rabbit          sim.SpeciesConfig
}

// DefaultOptions matches the reference configuration.
var DefaultOptions = Options{
	Width:           10,
	Height:          10,
	InitialEnergy:   5,
	Interval:        500 * time.Millisecond,
	MaxDays:         1000,
	MaxSkippedTicks: 5,
	Fox:             sim.SpeciesConfig{CostOfLiving: 1, BirthCost: 3, Nutrition: 5},
	Rabbit:          sim.SpeciesConfig{CostOfLiving: 1, BirthCost: 3, Nutrition: 3},
}

// Status represents the shell's state after a tick.
type Status struct {
	Day         int
	State       State
	Populations sim.Populations
	Energy      sim.EnergyStat
	StepTime    time.Duration
}

// Viewer is the interface to any viewer - the object who can display
// simulation data or control the shell.
type Viewer interface {
	Refresh()
	Register(g *Game)
	Start()
}

// Game runs the day loop around the stepping engine. All commands are
// serialized through an internal control channel, so at most one step is in
// flight and a tick is atomic from the caller's point of view.
type Game struct {
	options Options

	state struct {
		Status
		sync.Mutex
	}
	world struct {
		grid sim.Grid
		seed sim.Seed
		sync.Mutex
	}
	pace struct {
		interval time.Duration
		sync.Mutex
	}

	foxCfg    sim.SpeciesConfig
	rabbitCfg sim.SpeciesConfig

	recorder  *stats.Recorder
	statusCh  chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan bool
}

// New creates the shell, generates the starting grid from the seed and
// starts the command loop. A nil options pointer selects the defaults; a
// zero seed is replaced with the current clock.
func New(o *Options, statusCh chan Status) *Game {
	if o == nil {
		defaults := DefaultOptions
		o = &defaults
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}

	g := Game{
		options:   *o,
		foxCfg:    o.Fox,
		rabbitCfg: o.Rabbit,
		recorder:  stats.NewRecorder(),
		statusCh:  statusCh,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
	}
	g.pace.interval = o.Interval

	grid, seed := sim.Generate(g.dimensions(), o.InitialEnergy, sim.NewSeed(o.Seed))
	g.world.grid = grid
	g.world.seed = seed
	g.observe(grid, 0, 0)

	g.refreshView()
	go g.mainLoop()
	return &g
}

func (g *Game) dimensions() sim.Dimensions {
	return sim.Dimensions{Width: g.options.Width, Height: g.options.Height}
}

// RegisterViewer registers the viewer - the shell will call the viewer when
// the state is changed.
func (g *Game) RegisterViewer(v Viewer) {
	g.views = append(g.views, v)
	v.Register(g)
}

// StatusCh returns the channel with the shell's status updates.
func (g *Game) StatusCh() chan Status {
	return g.statusCh
}

// Status returns the current shell status.
func (g *Game) Status() Status {
	g.state.Lock()
	defer g.state.Unlock()
	return g.state.Status
}

// Options returns the shell configuration it was created with.
func (g *Game) Options() Options {
	return g.options
}

// Configs returns the species configurations in effect for the next step.
func (g *Game) Configs() (fox, rabbit sim.SpeciesConfig) {
	g.state.Lock()
	defer g.state.Unlock()
	return g.foxCfg, g.rabbitCfg
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() sim.Grid {
	g.world.Lock()
	defer g.world.Unlock()
	return g.world.grid.Clone()
}

// Interval returns the pause between ticks while running.
func (g *Game) Interval() time.Duration {
	g.pace.Lock()
	defer g.pace.Unlock()
	return g.pace.interval
}

// History returns a copy of the per-day records collected so far.
func (g *Game) History() []stats.Record {
	return g.recorder.Records()
}

// Summary condenses the collected history.
func (g *Game) Summary() stats.Summary {
	return g.recorder.Summary()
}

// WriteHistory writes the collected history as CSV to the given path.
func (g *Game) WriteHistory(path string) error {
	return g.recorder.WriteFile(path)
}

// Run starts continuous stepping, returns immediately.
func (g *Game) Run() {
	g.controlCh <- g.run
}

// Stop pauses continuous stepping, returns immediately.
func (g *Game) Stop() {
	g.controlCh <- g.stop
}

// Step performs one simulation day, returns immediately.
// A Status is written to the status channel on start and on finish.
func (g *Game) Step() {
	g.controlCh <- g.step
}

// Reset regenerates the grid, clears the day counter and the history,
// returns immediately.
func (g *Game) Reset() {
	g.controlCh <- g.reset
}

// LoadGrid replaces the current grid and restarts the day counter. Used to
// settle prepared scenarios.
func (g *Game) LoadGrid(grid sim.Grid) {
	g.controlCh <- func() { g.loadGrid(grid) }
}

// SetConfigs replaces both species configurations; the change takes effect
// at the next step boundary.
func (g *Game) SetConfigs(fox, rabbit sim.SpeciesConfig) {
	g.controlCh <- func() {
		g.state.Lock()
		g.foxCfg = fox
		g.rabbitCfg = rabbit
		g.state.Unlock()
		g.refreshView()
	}
}

// SetInterval replaces the pause between ticks.
func (g *Game) SetInterval(d time.Duration) {
	g.pace.Lock()
	g.pace.interval = d
	g.pace.Unlock()
	g.refreshView()
}

// Faster halves the pause between ticks, down to MinInterval.
func (g *Game) Faster() {
	g.pace.Lock()
	g.pace.interval /= 2
	if g.pace.interval < MinInterval {
		g.pace.interval = MinInterval
	}
	g.pace.Unlock()
	g.refreshView()
}

// Slower doubles the pause between ticks, up to MaxInterval.
func (g *Game) Slower() {
	g.pace.Lock()
	g.pace.interval *= 2
	if g.pace.interval > MaxInterval {
		g.pace.interval = MaxInterval
	}
	g.pace.Unlock()
	g.refreshView()
}

// ToggleCell cycles the cell at x, y through empty, rabbit, fox.
func (g *Game) ToggleCell(x, y int) {
	p := sim.Position{X: x, Y: y}
	g.world.Lock()
	if !g.world.grid.Contains(p) {
		g.world.Unlock()
		return
	}
	switch g.world.grid.Get(p).Kind {
	case sim.KindEmpty:
		g.world.grid.Set(p, sim.NewRabbit(g.options.InitialEnergy))
	case sim.KindRabbit:
		g.world.grid.Set(p, sim.NewFox(g.options.InitialEnergy))
	default:
		g.world.grid.Set(p, sim.Empty)
	}
	pop := g.world.grid.Populations()
	energy := g.world.grid.EnergyStats()
	g.world.Unlock()

	g.state.Lock()
	g.state.Populations = pop
	g.state.Energy = energy
	g.state.Unlock()
	g.refreshView()
}

// Close stops the command loop and closes its channels, returns immediately.
func (g *Game) Close() {
	g.closeCh <- true
}

// mainLoop is the command cycle; runs as a goroutine and serializes every
// mutation of the shell.
func (g *Game) mainLoop() {
	var closed = false
	for !closed {
		select {
		case cmd := <-g.controlCh:
			cmd()
		case closed = <-g.closeCh:
		}
	}
	close(g.closeCh)
	close(g.controlCh)
}

func (g *Game) currentState() State {
	g.state.Lock()
	defer g.state.Unlock()
	return g.state.State
}

// switchState switches the shell state and publishes the new status to the
// status channel so the controlling software can follow along.
func (g *Game) switchState(to State) {
	g.state.Lock()
	g.state.State = to
	st := g.state.Status
	g.state.Unlock()
	if g.statusCh != nil {
		g.statusCh <- st
	}
}

// run starts continuous stepping until stopped or finished. Ticks that
// arrive while a step is still in flight are skipped; too many skips in a
// row end the run.
func (g *Game) run() {
	if g.currentState() == StateFinished {
		return
	}
	go func() {
		g.switchState(StateRunning)
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := g.currentState()
			if mode != StateRunning && mode != StateStepping {
				break
			}
			if skipped > g.options.MaxSkippedTicks {
				g.switchState(StateFinished)
				break
			}
			if mode != StateStepping {
				skipped = 0
				g.controlCh <- func() {
					g.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if interval := g.Interval(); interval > 0 {
				time.Sleep(interval)
			}
		}
	}()
}

// stop pauses continuous stepping.
func (g *Game) stop() {
	if g.currentState() == StateRunning {
		g.switchState(StateManual)
	}
}

// step advances the ecosystem by one day: one call into the stepping engine,
// then bookkeeping, the extinction check and the day limit.
func (g *Game) step() {
	prior := g.currentState()
	if prior == StateFinished {
		return
	}
	g.switchState(StateStepping)

	g.state.Lock()
	fox, rabbit := g.foxCfg, g.rabbitCfg
	g.state.Unlock()

	g.world.Lock()
	start := time.Now()
	grid, seed := sim.Step(g.world.grid, fox, rabbit, g.world.seed)
	elapsed := time.Since(start)
	g.world.grid = grid
	g.world.seed = seed
	g.world.Unlock()

	g.state.Lock()
	g.state.Day++
	day := g.state.Day
	g.state.Unlock()
	g.observe(grid, day, elapsed)

	pop := grid.Populations()
	finished := pop.Foxes == 0 || pop.Rabbits == 0
	if g.options.MaxDays != 0 && day >= g.options.MaxDays {
		finished = true
	}

	if finished {
		g.switchState(StateFinished)
	} else {
		g.switchState(prior)
	}
	g.refreshView()
}

// reset regenerates the grid from the continuing seed sequence and clears
// the counters and the history.
func (g *Game) reset() {
	g.world.Lock()
	grid, seed := sim.Generate(g.dimensions(), g.options.InitialEnergy, g.world.seed)
	g.world.grid = grid
	g.world.seed = seed
	g.world.Unlock()

	g.recorder.Reset()
	g.resetStatus(grid)
}

// loadGrid installs a prepared grid and restarts the counters.
func (g *Game) loadGrid(grid sim.Grid) {
	g.world.Lock()
	g.world.grid = grid.Clone()
	g.world.Unlock()

	g.recorder.Reset()
	g.resetStatus(grid)
}

func (g *Game) resetStatus(grid sim.Grid) {
	g.state.Lock()
	g.state.Day = 0
	g.state.StepTime = 0
	g.state.Unlock()
	g.observe(grid, 0, 0)
	g.switchState(StateManual)
	g.refreshView()
}

// observe records one day's snapshot and mirrors it into the status.
func (g *Game) observe(grid sim.Grid, day int, elapsed time.Duration) {
	pop := grid.Populations()
	energy := grid.EnergyStats()
	g.recorder.Observe(day, pop, energy)
	g.state.Lock()
	g.state.Populations = pop
	g.state.Energy = energy
	g.state.StepTime = elapsed
	g.state.Unlock()
}

// refreshView calls Refresh for all registered viewers.
func (g *Game) refreshView() {
	for _, v := range g.views {
		v.Refresh()
	}
}
