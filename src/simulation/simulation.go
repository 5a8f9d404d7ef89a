package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"toruslife/src/universe"
)

//ErrUnknownTemplate is returned by SettleTemplate for a name never added
var ErrUnknownTemplate = errors.New("unknown template")

//Simulation drives one Universe: it paces the ticks, serialises the mutations
//coming from the viewers and publishes the status
//every command runs on the main loop goroutine, the universe itself is guarded by mu
//and the registered viewers by viewsMu
type Simulation struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	mu        sync.Mutex
	u         *universe.Universe
	rnd       *rand.Rand
	stateCh   chan Status
	viewsMu   sync.Mutex
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
	done      chan struct{}
	runID     int
}

//New creates the Simulation instance and starts its main loop
//stateCh may be nil, then no status updates are sent
func New(o *Options, stateCh chan Status) (*Simulation, error) {
	if o == nil {
		o = &DefaultOptions
	}
	var (
		u   *universe.Universe
		err error
	)
	if o.Blank {
		u, err = universe.NewBlank(o.Width, o.Height)
	} else {
		u, err = universe.New(o.Width, o.Height)
	}
	if err != nil {
		return nil, fmt.Errorf("create universe: %w", err)
	}
	seed := o.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := Simulation{
		options:   *o,
		u:         u,
		rnd:       rand.New(rand.NewSource(seed)),
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		done:      make(chan struct{}),
		stateCh:   stateCh,
		templates: map[string]Template{},
	}
	s.state.LiveCells = u.LiveCells()
	go s.mainLoop()
	return &s, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (s *Simulation) AddTemplate(tmpl Template) {
	s.mu.Lock()
	s.templates[tmpl.Name] = tmpl
	s.mu.Unlock()
}

//Templates returns the names of the stored templates
func (s *Simulation) Templates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.templates))
	for n := range s.templates {
		names = append(names, n)
	}
	return names
}

//Settle marks the listed [row, col] cells alive
func (s *Simulation) Settle(coords [][2]int) error {
	s.mu.Lock()
	err := s.u.SetCells(coords)
	live := s.u.LiveCells()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.setLiveCells(live)
	s.refreshView()
	return nil
}

//SettleTemplate populates the universe with the seeding template
func (s *Simulation) SettleTemplate(name string) error {
	s.mu.Lock()
	tmpl, ok := s.templates[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return s.Settle(tmpl.Coordinates)
}

//SettleWithRandomData clears the universe and populates it with random data, returns immediately
//ignored while the simulation is running
func (s *Simulation) SettleWithRandomData() {
	s.send(func() {
		//checked on the main loop so a Run queued earlier is already applied
		mode := s.mode()
		if mode != RunningStateManual && mode != RunningStateFinished {
			return
		}
		s.clear()
		s.mu.Lock()
		s.u.Randomize(s.rnd)
		live := s.u.LiveCells()
		s.mu.Unlock()
		s.setLiveCells(live)
		s.switchRunningState(RunningStateManual)
		s.refreshView()
	})
}

//ToggleCell inverses the cell state at row, col
func (s *Simulation) ToggleCell(row int, col int) error {
	s.mu.Lock()
	err := s.u.ToggleCell(row, col)
	live := s.u.LiveCells()
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.setLiveCells(live)
	s.refreshView()
	return nil
}

//ReadCells calls fn with the current generation while holding the universe lock
//cells must not be kept after fn returns
func (s *Simulation) ReadCells(fn func(width int, height int, cells []universe.Cell)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.u.Width(), s.u.Height(), s.u.Cells())
}

//Render returns the text form of the current generation
func (s *Simulation) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.u.String()
}

//RegisterViewer registers the viewer - the simulation will call the viewer when the state is changed
//the viewer gets Register before its first Refresh
func (s *Simulation) RegisterViewer(v Viewer) {
	v.Register(s)
	s.viewsMu.Lock()
	s.views = append(s.views, v)
	s.viewsMu.Unlock()
}

//StateCh returns the channel with the simulation's status updates
func (s *Simulation) StateCh() chan Status {
	return s.stateCh
}

//Status returns current simulation status represented by Status struct
func (s *Simulation) Status() Status {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.Status
}

//Options returns current simulation configuration represented by Options struct
func (s *Simulation) Options() Options {
	return s.options
}

//Run starts the simulation, returns immediately
func (s *Simulation) Run() {
	s.send(s.run)
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (s *Simulation) Stop() {
	s.send(s.stop)
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (s *Simulation) Step() {
	s.send(s.step)
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (s *Simulation) Clear() {
	s.send(s.clear)
}

//Close stops the main loop, returns immediately
func (s *Simulation) Close() {
	select {
	case s.closeCh <- true:
	case <-s.done:
	}
}

//send queues the command for the main loop, dropped after Close
func (s *Simulation) send(cmd func()) bool {
	select {
	case s.controlCh <- cmd:
		return true
	case <-s.done:
		return false
	}
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (s *Simulation) mainLoop() {
	defer close(s.done)
	for {
		select {
		case cmd := <-s.controlCh:
			cmd()
		case <-s.closeCh:
			return
		}
	}
}

func (s *Simulation) mode() RunningState {
	s.state.Lock()
	defer s.state.Unlock()
	return s.state.RunningMode
}

func (s *Simulation) setLiveCells(n int) {
	s.state.Lock()
	s.state.LiveCells = n
	s.state.Unlock()
}

//switchRunningState switch the state of the simulation to RunningState
//also writes the new state to the stateCh to signal upper control software
func (s *Simulation) switchRunningState(to RunningState) {
	s.state.Lock()
	s.state.RunningMode = to
	st := s.state.Status
	s.state.Unlock()
	if s.stateCh != nil {
		s.stateCh <- st
	}
}

//run starts the ticking goroutine
//it stops on Stop() calling or when the boundary conditions are reached
func (s *Simulation) run() {
	if s.mode() == RunningStateRun {
		return
	}
	s.runID++
	id := s.runID
	s.switchRunningState(RunningStateRun)
	go func() {
		done := make(chan bool, 1)
		//runID only changes on the main loop, so it is read there
		active := func() bool { return s.runID == id && s.mode() == RunningStateRun }
		for {
			if !s.send(func() {
				//Stop may have been processed while this step was queued
				if active() {
					s.step()
				} else {
					id = -1
				}
				done <- true
			}) {
				return
			}
			select {
			case <-done:
			case <-s.done:
				return
			}
			if id < 0 || s.mode() != RunningStateRun {
				return
			}
			if s.options.Interval > 0 {
				time.Sleep(s.options.Interval)
			}
		}
	}()
}

//stop stops the running cycle
func (s *Simulation) stop() {
	if s.mode() == RunningStateRun {
		s.switchRunningState(RunningStateManual)
	}
}

//step calculates the next generation for entire universe
func (s *Simulation) step() {
	finished := false
	rm := s.mode()
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	defer func() {
		if finished {
			s.switchRunningState(RunningStateFinished)
		} else {
			s.switchRunningState(rm)
		}
		s.refreshView()
	}()

	maxIter := s.options.MaxSteps
	if maxIter != 0 && s.Status().IterationNum >= maxIter {
		finished = true
		return
	}
	s.switchRunningState(RunningStateStep)

	start := time.Now()
	s.mu.Lock()
	live, changed := s.u.Tick()
	s.mu.Unlock()
	elapsed := time.Since(start)

	s.state.Lock()
	s.state.IterationNum++
	s.state.LiveCells = live
	s.state.IterationTime = elapsed
	s.state.Unlock()

	if live == 0 || !changed {
		finished = true
	}
}

//clear clears the universe data, reset all counters
func (s *Simulation) clear() {
	s.mu.Lock()
	s.u.Clear()
	s.mu.Unlock()

	s.state.Lock()
	s.state.IterationNum = 0
	s.state.LiveCells = 0
	s.state.IterationTime = 0
	s.state.Unlock()
	s.switchRunningState(RunningStateManual)
	s.refreshView()
}

//refreshView calls Refresh event for all registered views
func (s *Simulation) refreshView() {
	s.viewsMu.Lock()
	views := make([]Viewer, len(s.views))
	copy(views, s.views)
	s.viewsMu.Unlock()
	for _, v := range views {
		v.Refresh()
	}
}
