package ui_test

import (
	"strings"
	"testing"

	"forest-fire/internal/sims/forestfire"
	"forest-fire/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSim(t *testing.T) *forestfire.Sim {
	t.Helper()
	cfg := forestfire.DefaultConfig()
	cfg.Width = 10
	cfg.Height = 6
	sim, err := forestfire.NewSim(cfg)
	require.NoError(t, err)
	sim.Reset(0)
	return sim
}

func TestHUDAdjustsSelectedControl(t *testing.T) {
	sim := newSim(t)
	hud := ui.NewHUD(sim)
	hud.Update()

	require.Equal(t, "f", hud.Selected())
	require.True(t, hud.Adjust(1))
	assert.InDelta(t, 0.06, sim.Field().GrowthProbability(), 1e-9)

	require.True(t, hud.Adjust(-1))
	assert.InDelta(t, 0.05, sim.Field().GrowthProbability(), 1e-9)
}

func TestHUDSelectWraps(t *testing.T) {
	hud := ui.NewHUD(newSim(t))
	hud.Select(1)
	assert.Equal(t, "p", hud.Selected())
	hud.Select(-2)
	assert.Equal(t, "density", hud.Selected())
	hud.Select(1)
	assert.Equal(t, "f", hud.Selected())
}

func TestHUDStopsAtBounds(t *testing.T) {
	sim := newSim(t)
	require.True(t, sim.SetFloatParameter("f", 1))
	hud := ui.NewHUD(sim)
	hud.Update()

	assert.False(t, hud.Adjust(1), "growth already at its maximum")
	assert.Equal(t, 1.0, sim.Field().GrowthProbability())
}

func TestHUDAdjustNeedsSnapshot(t *testing.T) {
	hud := ui.NewHUD(newSim(t))
	assert.False(t, hud.Adjust(1), "values are unknown before the first Update")
}

func TestHUDLinesListParameters(t *testing.T) {
	hud := ui.NewHUD(newSim(t))
	hud.Update()

	lines := hud.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "Forestfire Controls", lines[0])
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "  Width: 10")
	assert.Contains(t, joined, "> Growth chance 0.05")
	assert.Contains(t, joined, "  Ignite chance 0.001")
}

func TestHUDDrawWritesPanel(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(100, 40)

	hud := ui.NewHUD(newSim(t))
	hud.Update()
	hud.Draw(screen, 5)
	screen.Show()

	cells, width, _ := screen.GetContents()
	var row strings.Builder
	for x := 5; x < 5+len("Forestfire"); x++ {
		row.WriteString(string(cells[x].Runes))
	}
	assert.Equal(t, "Forestfire", row.String())
	assert.Empty(t, strings.TrimSpace(string(cells[4].Runes)), "panel starts at the offset")
	assert.Equal(t, 100, width)
}
