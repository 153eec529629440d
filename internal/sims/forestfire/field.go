package forestfire

import (
	"errors"
	"fmt"
	"math"

	"forest-fire/internal/core"
)

var (
	// ErrInvalidSize is returned for zero, negative or overflowing dimensions.
	ErrInvalidSize = errors.New("forestfire: invalid grid size")
	// ErrProbability is returned for probabilities outside [0, 1].
	ErrProbability = errors.New("forestfire: probability out of range")
)

// Field is one generation of the forest-fire automaton. Step and Populate
// return new Fields and never modify the receiver.
type Field struct {
	dims   core.Dims
	cells  []Cell
	growth float64
	ignite float64
}

// New returns a width x height Field with every cell Empty. growth is the
// chance an Empty cell grows a Tree per step, ignite the chance an isolated
// Tree catches fire.
func New(width, height int, growth, ignite float64) (*Field, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrInvalidSize, width, height)
	}
	if err := checkProbabilities(growth, ignite); err != nil {
		return nil, err
	}
	dims := core.Dims{W: width, H: height}
	return &Field{
		dims:   dims,
		cells:  make([]Cell, dims.Len()),
		growth: growth,
		ignite: ignite,
	}, nil
}

func checkProbabilities(growth, ignite float64) error {
	if !validProbability(growth) {
		return fmt.Errorf("%w: growth %v", ErrProbability, growth)
	}
	if !validProbability(ignite) {
		return fmt.Errorf("%w: ignite %v", ErrProbability, ignite)
	}
	return nil
}

func validProbability(p float64) bool {
	return p >= 0 && p <= 1
}

// blank returns an Empty field with the receiver's dimensions and probabilities.
func (f *Field) blank() *Field {
	return &Field{
		dims:   f.dims,
		cells:  make([]Cell, len(f.cells)),
		growth: f.growth,
		ignite: f.ignite,
	}
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.dims.W }

// Height returns the number of rows.
func (f *Field) Height() int { return f.dims.H }

// Size returns the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.dims.W, H: f.dims.H} }

// GrowthProbability returns f, the per-step chance of Empty becoming Tree.
func (f *Field) GrowthProbability() float64 { return f.growth }

// IgniteProbability returns p, the per-step chance of an isolated Tree igniting.
func (f *Field) IgniteProbability() float64 { return f.ignite }

// Cells returns a copy of the row-major cell slice.
func (f *Field) Cells() []Cell {
	return append([]Cell(nil), f.cells...)
}

// Index maps (x, y) to its linear index.
func (f *Field) Index(x, y int) int { return f.dims.Index(x, y) }

// Coords maps a linear index back to (x, y).
func (f *Field) Coords(i int) (int, int) { return f.dims.Coords(i) }

// WithProbabilities returns a copy of the field using new growth and ignite
// probabilities.
func (f *Field) WithProbabilities(growth, ignite float64) (*Field, error) {
	if err := checkProbabilities(growth, ignite); err != nil {
		return nil, err
	}
	out := f.blank()
	copy(out.cells, f.cells)
	out.growth = growth
	out.ignite = ignite
	return out, nil
}

// Populate returns a new Field where each cell is independently target with
// the given probability and Empty otherwise. A probability of 1 or more sets
// every cell, 0 or less sets none.
func (f *Field) Populate(rng core.Source, target Cell, probability float64) *Field {
	out := f.blank()
	for i := range out.cells {
		if core.Chance(rng, probability) {
			out.cells[i] = target
		}
	}
	return out
}

// Get returns the cell at (x, y). It panics when the coordinate is outside
// the grid.
func (f *Field) Get(x, y int) Cell {
	return f.cells[f.dims.MustIndex(x, y)]
}

// Set overwrites the cell at (x, y) in place. It is meant for building test
// fixtures; the simulation itself only advances through Step.
func (f *Field) Set(x, y int, c Cell) {
	f.cells[f.dims.MustIndex(x, y)] = c
}

// Neighbours returns the in-bounds Moore neighbours of (x, y).
func (f *Field) Neighbours(x, y int) []core.Point {
	return f.dims.Neighbours(x, y)
}

// HasBurningNeighbour reports whether any neighbour of (x, y) is Burning.
func (f *Field) HasBurningNeighbour(x, y int) bool {
	for _, n := range f.dims.Neighbours(x, y) {
		if f.cells[f.dims.Index(n.X, n.Y)] == Burning {
			return true
		}
	}
	return false
}

// Step computes the next generation. Every cell's next state depends only on
// the receiver, which is left untouched:
//
//	Tree with a burning neighbour  -> Burning
//	Tree otherwise                 -> Burning with probability p
//	Empty                          -> Tree with probability f
//	Burning                        -> Empty
//
// Draws are taken in row-major order, one per Empty cell and one per Tree
// without a burning neighbour.
func (f *Field) Step(rng core.Source) *Field {
	next := f.blank()
	for i, c := range f.cells {
		next.cells[i] = f.nextState(rng, i, c)
	}
	return next
}

func (f *Field) nextState(rng core.Source, i int, c Cell) Cell {
	switch c {
	case Tree:
		x, y := f.dims.Coords(i)
		if f.HasBurningNeighbour(x, y) {
			return Burning
		}
		if core.Chance(rng, f.ignite) {
			return Burning
		}
		return Tree
	case Empty:
		if core.Chance(rng, f.growth) {
			return Tree
		}
		return Empty
	default:
		return Empty
	}
}
