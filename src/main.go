package main

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"toruslife/src/simulation"
	"toruslife/src/view"
)

var templates = []simulation.Template{
	simulation.TemplateGlider,
	simulation.TemplateBlinker,
	simulation.TemplateSample,
}

type EnvOptions struct {
	interactive bool
	randomData  bool
	colors      bool
	template    string
}

func main() {
	eo, so := initOptions()

	var stateCh chan simulation.Status

	if !eo.interactive {
		stateCh = make(chan simulation.Status, 10) //the buffered channel to getting the simulation status
	}

	s, err := simulation.New(so, stateCh)
	if err != nil {
		log.Fatalf("can't start the simulation: %v", err)
	}

	for _, t := range templates {
		s.AddTemplate(t)
	}

	if eo.randomData {
		s.SettleWithRandomData()
	} else if eo.template != "" {
		if err := s.SettleTemplate(eo.template); err != nil {
			log.Fatalf("can't settle the template: %v", err)
		}
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		s.RegisterViewer(v)
		v.Start()
		s.Close()
		return
	}

	v := view.NewConsoleOut(eo.colors)
	s.RegisterViewer(v)
	v.Start()

	startTime := time.Now()
	s.Run()
	for {
		st := <-stateCh
		if st.RunningMode == simulation.RunningStateFinished {
			totalTime := time.Since(startTime).Round(time.Millisecond)
			fmt.Printf("Finished, iteration is: %v, total running time: %v\n", st.IterationNum, totalTime)
			break
		}
	}
	s.Close()
}

func initOptions() (eo *EnvOptions, so *simulation.Options) {
	o := simulation.DefaultOptions
	so = &o

	names := make([]string, 0, len(templates))
	for _, t := range templates {
		names = append(names, t.Name)
	}
	sort.Strings(names)

	eo = &EnvOptions{colors: true}
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&so.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&so.Height, "y", "height", "Height of a simulation field")
	flaggy.Duration(&so.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&so.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 means no limit")
	flaggy.Int64(&so.Seed, "", "seed", "Seed for the random data, 0 means time based")
	flaggy.Bool(&so.Blank, "b", "blank", "Start with an empty field instead of the default pattern, implied by -r and -t")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Bool(&eo.colors, "", "colors", "Colorize the console output")
	flaggy.String(&eo.template, "t", "template", "Settle with the template ["+strings.Join(names, "|")+"]")

	flaggy.Parse()
	applySeeding(eo, so)

	if so.Width <= 0 || so.Height <= 0 {
		flaggy.ShowHelpAndExit("width and height must be positive")
	}

	return
}

//applySeeding starts from an empty field when the field is seeded with a template or random data
func applySeeding(eo *EnvOptions, so *simulation.Options) {
	if eo.randomData || eo.template != "" {
		so.Blank = true
	}
}
