package forestfire

import "forest-fire/internal/core"

// Sim drives a Field as a core.Sim. It owns the random source and swaps in
// a fresh Field on every step.
type Sim struct {
	cfg Config

	rng        *core.RNG
	field      *Field
	display    []uint8
	generation int
}

// NewSim returns a simulation configured from cfg. Call Reset to seed it.
func NewSim(cfg Config) (*Sim, error) {
	field, err := New(cfg.Width, cfg.Height, cfg.Params.Growth, cfg.Params.Ignite)
	if err != nil {
		return nil, err
	}
	return &Sim{
		cfg:     cfg,
		rng:     core.NewRNG(cfg.Seed),
		field:   field,
		display: make([]uint8, field.dims.Len()),
	}, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "forestfire" }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return s.field.Size() }

// Cells exposes the current generation as raw Cell values.
func (s *Sim) Cells() []uint8 { return s.display }

// Field returns the current generation.
func (s *Sim) Field() *Field { return s.field }

// Census counts the current generation's cells.
func (s *Sim) Census() Census { return s.field.Census() }

// Generation returns the number of steps since the last reset.
func (s *Sim) Generation() int { return s.generation }

// Render draws the current generation as text.
func (s *Sim) Render() string { return s.field.Render() }

// Reset reseeds the forest. A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng = core.NewRNG(effective)
	s.field = s.field.Populate(s.rng, Tree, s.cfg.Params.TreeDensity)
	s.generation = 0
	s.rebuildDisplay()
}

// Step advances the forest by one generation.
func (s *Sim) Step() {
	s.field = s.field.Step(s.rng)
	s.generation++
	s.rebuildDisplay()
}

func (s *Sim) rebuildDisplay() {
	for i, c := range s.field.cells {
		s.display[i] = uint8(c)
	}
}

func init() {
	core.Register("forestfire", func(cfg map[string]string) (core.Sim, error) {
		return NewSim(FromMap(cfg))
	})
}
