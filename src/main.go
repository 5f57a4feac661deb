package main

import (
	"fmt"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"predprey/src/config"
	"predprey/src/game"
	"predprey/src/sim"
	"predprey/src/view"
)

type envOptions struct {
	interactive bool
	configPath  string
	csvPath     string
	seed        uint64
}

func main() {
	eo, cfg := initOptions()

	var statusCh chan game.Status
	if !eo.interactive {
		statusCh = make(chan game.Status, 10) //the buffered channel for the shell status updates
	}

	o := game.Options{
		Width:           cfg.Width,
		Height:          cfg.Height,
		InitialEnergy:   sim.EnergyFromInt(cfg.InitialEnergy),
		Interval:        time.Duration(cfg.Interval),
		MaxDays:         cfg.MaxDays,
		MaxSkippedTicks: game.DefaultOptions.MaxSkippedTicks,
		Seed:            eo.seed,
		Fox:             cfg.Fox.SimConfig(),
		Rabbit:          cfg.Rabbit.SimConfig(),
	}
	g := game.New(&o, statusCh)

	if eo.interactive {
		v := view.NewConsoleUI()
		g.RegisterViewer(v)
		v.Start()
		g.Close()
		return
	}

	out := view.NewConsoleOut()
	g.RegisterViewer(out)
	out.Start()
	g.Run()
	for st := range statusCh {
		if st.State == game.StateFinished {
			break
		}
	}
	if eo.csvPath != "" {
		if err := g.WriteHistory(eo.csvPath); err != nil {
			fmt.Fprintf(os.Stderr, "writing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("History written to %s\n", eo.csvPath)
	}
	g.Close()
	close(statusCh)
}

func initOptions() (eo *envOptions, cfg config.Config) {
	eo = &envOptions{}

	//sentinels mean "not set on the command line"
	var (
		width    int
		height   int
		days     = -1
		interval = time.Duration(-1)
	)

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&width, "x", "width", "Width of the field")
	flaggy.Int(&height, "y", "height", "Height of the field")
	flaggy.Duration(&interval, "i", "interval", "Pause between days, for example 150ms")
	flaggy.Int(&days, "d", "days", "Limit the simulation to the given number of days (0 = unlimited)")
	flaggy.UInt64(&eo.seed, "s", "seed", "Random seed (0 = from the clock)")
	flaggy.String(&eo.configPath, "f", "config", "YAML configuration file")
	flaggy.String(&eo.csvPath, "o", "csv", "Write the day-by-day history to a CSV file")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")

	flaggy.Parse()

	cfg, err := config.Load(eo.configPath)
	if err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if days >= 0 {
		cfg.MaxDays = days
	}
	if interval >= 0 {
		cfg.Interval = config.Duration(interval)
	}

	if err := cfg.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}

	return
}
