package view

import (
	"fmt"
	"time"

	"predprey/src/game"
)

// ConsoleOut is the headless viewer: it prints the run configuration on
// registration and reports progress and the final outcome to stdout.
type ConsoleOut struct {
	g         *game.Game
	startTime time.Time
}

func NewConsoleOut() *ConsoleOut {
	return &ConsoleOut{}
}

func (c *ConsoleOut) Refresh() {
	st := c.g.Status()
	if st.State == game.StateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		summary := c.g.Summary()
		fmt.Println("\nFinished:")
		fmt.Printf("  Last day: %v\n", st.Day)
		fmt.Printf("  Total time: %v\n", totalTime)
		fmt.Printf("  Foxes: %v, rabbits: %v\n", st.Populations.Foxes, st.Populations.Rabbits)
		if summary.FoxExtinctionDay >= 0 {
			fmt.Printf("  Foxes went extinct on day %v\n", summary.FoxExtinctionDay)
		}
		if summary.RabbitExtinctionDay >= 0 {
			fmt.Printf("  Rabbits went extinct on day %v\n", summary.RabbitExtinctionDay)
		}
		fmt.Printf("  Peak populations: %v foxes, %v rabbits\n", summary.PeakFoxes, summary.PeakRabbits)
	} else if st.State == game.StateRunning {
		if st.Day%10 == 0 {
			fmt.Printf("  Day %v: %v foxes, %v rabbits\n", st.Day, st.Populations.Foxes, st.Populations.Rabbits)
		}
	}
}

func (c *ConsoleOut) Register(g *game.Game) {
	c.g = g
	o := c.g.Options()
	fox, rabbit := c.g.Configs()
	fmt.Println("Running configuration:")
	fmt.Printf("  Dimension: %v x %v\n", o.Width, o.Height)
	fmt.Printf("  Interval: %v\n", c.g.Interval())
	fmt.Printf("  Max days: %v\n", o.MaxDays)
	fmt.Printf("  Seed: %v\n", o.Seed)
	fmt.Printf("  Fox: cost of living %v, birth cost %v, nutrition %v\n",
		fox.CostOfLiving.Int(), fox.BirthCost.Int(), fox.Nutrition.Int())
	fmt.Printf("  Rabbit: cost of living %v, birth cost %v, nutrition %v\n",
		rabbit.CostOfLiving.Int(), rabbit.BirthCost.Int(), rabbit.Nutrition.Int())
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Println("\nSimulation started...")
}
