package forestfire

import (
	"math"
	"slices"
	"testing"

	"forest-fire/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	sim.Reset(0)
	initial := append([]uint8(nil), sim.Cells()...)

	for i := 0; i < 5; i++ {
		sim.Step()
	}
	if sim.Generation() != 5 {
		t.Fatalf("expected generation 5, got %d", sim.Generation())
	}

	sim.Reset(0)
	if !slices.Equal(initial, sim.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if sim.Generation() != 0 {
		t.Fatalf("Reset should clear the generation counter, got %d", sim.Generation())
	}

	sim.Reset(777)
	seeded := append([]uint8(nil), sim.Cells()...)
	sim.Step()
	afterStep := append([]uint8(nil), sim.Cells()...)

	sim.Reset(777)
	if !slices.Equal(seeded, sim.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	sim.Step()
	if !slices.Equal(afterStep, sim.Cells()) {
		t.Fatal("Step after identical reset should be deterministic")
	}

	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different forests")
	}
}

func TestCellsMirrorField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 12
	cfg.Height = 9
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	sim.Reset(5)
	sim.Step()

	field := sim.Field().Cells()
	cells := sim.Cells()
	if len(cells) != len(field) {
		t.Fatalf("expected %d cells, got %d", len(field), len(cells))
	}
	for i := range cells {
		if Cell(cells[i]) != field[i] {
			t.Fatalf("cell %d: display %d, field %v", i, cells[i], field[i])
		}
	}
	if sim.Render() != sim.Field().Render() {
		t.Fatal("Render should draw the current field")
	}
	if got := sim.Size(); got != (core.Size{W: 12, H: 9}) {
		t.Fatalf("unexpected size %+v", got)
	}
}

func TestResetSeedsConfiguredDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.TreeDensity = 1
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	sim.Reset(3)
	if c := sim.Census(); c.Tree != c.Total() {
		t.Fatalf("expected a full forest, got %+v", c)
	}
}

func TestNewSimRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Growth = 2
	if _, err := NewSim(cfg); err == nil {
		t.Fatal("expected out-of-range growth to be rejected")
	}
	cfg = DefaultConfig()
	cfg.Width = 0
	if _, err := NewSim(cfg); err == nil {
		t.Fatal("expected zero width to be rejected")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":       "20",
		"h":       "10",
		"seed":    "5",
		"f":       "0.2",
		"p":       "0.01",
		"density": "0.6",
	})
	if c.Width != 20 || c.Height != 10 || c.Seed != 5 {
		t.Fatalf("unexpected dimensions/seed: %+v", c)
	}
	if c.Params.Growth != 0.2 || c.Params.Ignite != 0.01 || c.Params.TreeDensity != 0.6 {
		t.Fatalf("unexpected params: %+v", c.Params)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":       "-3",
		"h":       "tall",
		"f":       "1.5",
		"p":       "-0.1",
		"density": "NaN",
	})
	if c != def {
		t.Fatalf("expected defaults, got %+v", c)
	}
	if FromMap(nil) != def {
		t.Fatal("nil map should yield defaults")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	sim, err := NewSim(DefaultConfig())
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}

	if !sim.SetFloatParameter("f", 0.25) {
		t.Fatal("expected growth to be adjustable")
	}
	if got := sim.Field().GrowthProbability(); math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("expected growth 0.25, got %f", got)
	}

	if !sim.SetFloatParameter("p", 3) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := sim.Field().IgniteProbability(); got != 1 {
		t.Fatalf("expected ignite to clamp to 1, got %f", got)
	}

	if !sim.SetFloatParameter("density", -1) {
		t.Fatal("expected setter to clamp values below min")
	}
	if sim.cfg.Params.TreeDensity != 0 {
		t.Fatalf("expected density to clamp to 0, got %f", sim.cfg.Params.TreeDensity)
	}

	if sim.SetFloatParameter("f", math.NaN()) {
		t.Fatal("NaN should be rejected")
	}
	if sim.SetFloatParameter("unknown", 0.5) {
		t.Fatal("unknown keys should be rejected")
	}
}

func TestParametersSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Growth = 0.125
	sim, err := NewSim(cfg)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	sim.Reset(0)

	snap := sim.Parameters()
	param, ok := snap.Lookup("f")
	if !ok {
		t.Fatal("expected growth parameter in snapshot")
	}
	if param.Value != "0.125" || param.Type != core.ParamTypeFloat {
		t.Fatalf("unexpected growth parameter %+v", param)
	}
	for _, ctrl := range sim.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q has no snapshot value", ctrl.Key)
		}
	}
}

func TestRegistered(t *testing.T) {
	factory, ok := core.Sims()["forestfire"]
	if !ok {
		t.Fatal("forestfire sim not registered")
	}
	sim, err := factory(map[string]string{"w": "7", "h": "3"})
	if err != nil {
		t.Fatalf("factory: %v", err)
	}
	if sim.Size() != (core.Size{W: 7, H: 3}) {
		t.Fatalf("unexpected size %+v", sim.Size())
	}
	if _, ok := sim.(core.TextRenderer); !ok {
		t.Fatal("forestfire sim should render text")
	}
}
