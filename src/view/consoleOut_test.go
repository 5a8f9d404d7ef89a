package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toruslife/src/simulation"
	"toruslife/src/universe"
)

func TestFieldString(t *testing.T) {
	cells := []universe.Cell{
		universe.Dead, universe.Alive,
		universe.Alive, universe.Dead,
		universe.Dead, universe.Dead,
	}
	got := FieldString(aurora.NewAurora(false), 2, 3, cells)
	assert.Equal(t, "◻◼\n◼◻\n◻◻\n", got)
}

func TestConsoleOut(t *testing.T) {
	o := simulation.DefaultOptions
	o.Width, o.Height = 4, 4
	o.Interval = 0
	o.Blank = true
	stateCh := make(chan simulation.Status, 10)
	s, err := simulation.New(&o, stateCh)
	require.NoError(t, err)
	defer s.Close()

	var out bytes.Buffer
	c := NewConsoleOutTo(&out, false)
	c.Register(s)
	assert.Contains(t, out.String(), "Dimension: 4 x 4")
	assert.Contains(t, out.String(), "Max iterations: 1000 steps")

	c.Start()
	require.NoError(t, s.Settle([][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}))
	s.Run()
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case st := <-stateCh:
			done = st.RunningMode == simulation.RunningStateFinished
		case <-timeout:
			t.Fatal("simulation did not finish")
		}
	}

	out.Reset()
	c.Refresh()
	assert.Contains(t, out.String(), "Finished:")
	assert.Contains(t, out.String(), "Live cells: 4")
	assert.Contains(t, out.String(), "Last iteration: 1")
	assert.Contains(t, out.String(), "◻◻◻◻\n◻◼◼◻\n◻◼◼◻\n◻◻◻◻\n")
}
