package view

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"toruslife/src/simulation"
	"toruslife/src/universe"
)

//ConsoleOut is the non interactive viewer, prints the progress and the final field
type ConsoleOut struct {
	s         *simulation.Simulation
	w         io.Writer
	au        aurora.Aurora
	startTime time.Time
}

//NewConsoleOut creates the viewer writing to stdout
func NewConsoleOut(colors bool) *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, colors)
}

//NewConsoleOutTo creates the viewer writing to w
func NewConsoleOutTo(w io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors)}
}

func (c *ConsoleOut) Refresh() {
	st := c.s.Status()
	if st.RunningMode == simulation.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		fmt.Fprintln(c.w, "\nFinished:")
		c.printHashData(resultData)
		c.s.ReadCells(func(width int, height int, cells []universe.Cell) {
			fmt.Fprint(c.w, FieldString(c.au, width, height, cells))
		})
	} else if st.RunningMode == simulation.RunningStateRun {
		if st.IterationNum%10 == 0 {
			fmt.Fprintf(c.w, "  Iterations done: %v\n", st.IterationNum)
		}
	}
}

func (c *ConsoleOut) Register(s *simulation.Simulation) {
	c.s = s
	o := c.s.Options()
	fmt.Fprintln(c.w, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Interval":       o.Interval,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
	})
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", c.au.Green(propName), d[propName])
	}
}

//FieldString renders the cells row by row, live cells are highlighted
func FieldString(au aurora.Aurora, width int, height int, cells []universe.Cell) string {
	var b bytes.Buffer
	for row := 0; row < height; row++ {
		for _, e := range cells[row*width : (row+1)*width] {
			if e.IsAlive() {
				b.WriteString(au.Green(e.String()).String())
			} else {
				b.WriteString(e.String())
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
