package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"predprey/src/game"
	"predprey/src/sim"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the interactive terminal viewer: it renders the field and the
// status panes and drives the shell through keybindings.
type ConsoleUI struct {
	g *game.Game
	t *gocui.Gui
	k []keyBinding

	emptyFiller string
}

var stateDescr = map[game.State]string{
	game.StateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
	game.StateStepping: "stepping",
	game.StateRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
	game.StateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
}

// NewConsoleUI creates the terminal viewer.
func NewConsoleUI() *ConsoleUI {
	var err error
	t := ConsoleUI{
		emptyFiller: "·",
	}

	t.t, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.t.Mouse = true
	t.k = []keyBinding{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next day",
			t.cmdNextDay,
			""},
		{'r',
			"R",
			"Run",
			t.cmdRun,
			""},
		{'s',
			"S",
			"Stop",
			t.cmdStop,
			""},
		{'c',
			"C",
			"Reset",
			t.cmdReset,
			""},
		{'+',
			"+",
			"Faster",
			t.cmdFaster,
			""},
		{'-',
			"-",
			"Slower",
			t.cmdSlower,
			""},
		{gocui.MouseLeft,
			"MOUSE",
			"Toggle a cell",
			t.cmdMouseClick,
			"field"},
	}
	t.t.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) {
	for _, kb := range k {
		h := kb.handler
		if err := t.t.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

// Register binds the viewer to the shell.
func (t *ConsoleUI) Register(g *game.Game) {
	t.g = g
}

// Start runs the terminal main loop until quit.
func (t *ConsoleUI) Start() {
	if err := t.t.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.t.Close()
}

// Refresh redraws all panes.
func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

// glyph renders one cell. Agents rich enough to give birth show bright.
func (t *ConsoleUI) glyph(c sim.Cell, foxCfg, rabbitCfg sim.SpeciesConfig) string {
	switch c.Kind {
	case sim.KindFox:
		if c.Energy.CanSupport(foxCfg.BirthCost, foxCfg.CostOfLiving) {
			return aurora.BrightRed("F").String()
		}
		return aurora.Red("F").String()
	case sim.KindRabbit:
		if c.Energy.CanSupport(rabbitCfg.BirthCost, rabbitCfg.CostOfLiving) {
			return aurora.BrightGreen("r").String()
		}
		return aurora.Green("r").String()
	default:
		return t.emptyFiller
	}
}

func (t *ConsoleUI) renderField() {
	grid := t.g.Grid()
	foxCfg, rabbitCfg := t.g.Configs()

	t.t.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		//the entire field is redrawn at once; the terminal driver only
		//repaints changed chars
		v.Clear()

		crop := false
		maxW, maxH := v.Size()
		if grid.Width() > maxW || grid.Height() > maxH {
			crop = true
		}

		var b bytes.Buffer
		for y := 0; y < grid.Height(); y++ {
			if y >= maxH {
				break
			}
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < grid.Width(); x++ {
				if x >= maxW {
					break
				}
				b.WriteString(t.glyph(grid.Get(sim.Position{X: x, Y: y}), foxCfg, rabbitCfg))
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	s := t.g.Status()
	t.t.Update(func(g *gocui.Gui) error {
		if v, e := t.t.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Day", "%v", s.Day))
			_, _ = fmt.Fprintln(v, t.renderProp("Foxes", "%v (energy %v)", s.Populations.Foxes, s.Energy.Foxes.Int()))
			_, _ = fmt.Fprintln(v, t.renderProp("Rabbits", "%v (energy %v)", s.Populations.Rabbits, s.Energy.Rabbits.Int()))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", stateDescr[s.State]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when called from a goroutine
	t.t.Update(func(g *gocui.Gui) error {
		o := t.g.Options()
		foxCfg, rabbitCfg := t.g.Configs()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", o.Width, o.Height))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", t.g.Interval()))
			_, _ = fmt.Fprintln(v, t.renderProp("Max days", "%v", o.MaxDays))
			_, _ = fmt.Fprintln(v, t.renderProp("Seed", "%v", o.Seed))
			_, _ = fmt.Fprintln(v, t.renderProp("Fox", "live %v birth %v food %v",
				foxCfg.CostOfLiving.Int(), foxCfg.BirthCost.Int(), foxCfg.Nutrition.Int()))
			_, _ = fmt.Fprintln(v, t.renderProp("Rabbit", "live %v birth %v food %v",
				rabbitCfg.CostOfLiving.Int(), rabbitCfg.BirthCost.Int(), rabbitCfg.Nutrition.Int()))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 32
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Foxes & Rabbits ecosystem simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Field"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		if maxX < len(text) {
			panic(fmt.Sprintf("Terminal width is too small: %v", maxX))
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", (maxX-len(text))/2)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextDay(_ *gocui.View) error {
	t.g.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.g.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.g.Stop()
	return nil
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	t.g.Reset()
	return nil
}

func (t *ConsoleUI) cmdFaster(_ *gocui.View) error {
	t.g.Faster()
	return nil
}

func (t *ConsoleUI) cmdSlower(_ *gocui.View) error {
	t.g.Slower()
	return nil
}

func (t *ConsoleUI) cmdMouseClick(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.g.ToggleCell(cx, cy)
	return nil
}
