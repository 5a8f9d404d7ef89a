package simulation

import "time"

//Options represents the Simulation's configurable options
type Options struct {
	Width    int
	Height   int
	Interval time.Duration
	MaxSteps int
	Seed     int64 //seed for SettleWithRandomData, 0 means time based
	Blank    bool  //start with all cells dead instead of the default pattern
}

//Status represents the status of the Simulation at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(s *Simulation)
	Start()
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string   //template name
	Descr       string   //template descr
	Coordinates [][2]int //array of [row, col] coordinates
}

//RunningState is the simulation running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefWidth              = 64
	DefHeight             = 64
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

func (r RunningState) String() string {
	switch r {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "do the step"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

var DefaultOptions = Options{
	Width:    DefWidth,
	Height:   DefHeight,
	Interval: DefSimulationInterval,
	MaxSteps: DefMaxSteps,
}

//Templates shipped with the binary
var (
	TemplateGlider = Template{
		"glider",
		"the small spaceship moving one cell diagonally every 4 steps",
		[][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
	}
	TemplateSample = Template{
		"sample",
		"the benchmark seed, a block touching a small tail",
		[][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {3, 3}, {2, 4}, {3, 4}, {3, 5}},
	}
	TemplateBlinker = Template{
		"blinker",
		"the period 2 oscillator",
		[][2]int{{1, 0}, {1, 1}, {1, 2}},
	}
)
