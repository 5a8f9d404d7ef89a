package main

import (
	"testing"

	"toruslife/src/simulation"
)

func simulationStep(s *simulation.Simulation, b *testing.B) {
	stateCh := s.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		if err := s.SettleTemplate("sample"); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		s.Step()
		for {
			st := <-stateCh
			if st.RunningMode == simulation.RunningStateManual || st.RunningMode == simulation.RunningStateFinished {
				break
			}
		}
	}
	s.Close()
}

func simulationRun(s *simulation.Simulation, b *testing.B) {
	stateCh := s.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s.Clear()
		<-stateCh //wait for finish
		if err := s.SettleTemplate("sample"); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		s.Run()
		for {
			st := <-stateCh
			if st.RunningMode == simulation.RunningStateFinished {
				break
			}
		}
	}
	s.Close()
}

func newSimulation(b *testing.B) *simulation.Simulation {
	o := simulation.DefaultOptions
	o.Interval = 0
	o.Blank = true
	o.Width = 200
	o.Height = 200
	s, err := simulation.New(&o, make(chan simulation.Status, 10))
	if err != nil {
		b.Fatal(err)
	}
	for _, t := range templates {
		s.AddTemplate(t)
	}
	return s
}

func BenchmarkSimulation_Step(b *testing.B) {
	simulationStep(newSimulation(b), b)
}

func BenchmarkSimulation_Run(b *testing.B) {
	simulationRun(newSimulation(b), b)
}
