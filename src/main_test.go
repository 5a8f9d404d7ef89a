package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toruslife/src/simulation"
)

func TestApplySeeding(t *testing.T) {
	tests := []struct {
		name      string
		eo        EnvOptions
		blank     bool
		wantBlank bool
	}{
		{"default pattern", EnvOptions{}, false, false},
		{"explicit blank", EnvOptions{}, true, true},
		{"template", EnvOptions{template: "glider"}, false, true},
		{"random", EnvOptions{randomData: true}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			so := simulation.DefaultOptions
			so.Blank = tt.blank
			applySeeding(&tt.eo, &so)
			assert.Equal(t, tt.wantBlank, so.Blank)
		})
	}
}

func TestTemplateSeedsEmptyField(t *testing.T) {
	eo := EnvOptions{template: "glider"}
	so := simulation.DefaultOptions
	so.Width, so.Height = 10, 10
	applySeeding(&eo, &so)

	s, err := simulation.New(&so, nil)
	require.NoError(t, err)
	defer s.Close()
	for _, tmpl := range templates {
		s.AddTemplate(tmpl)
	}
	require.NoError(t, s.SettleTemplate(eo.template))
	assert.Equal(t, len(simulation.TemplateGlider.Coordinates), s.Status().LiveCells)
}
