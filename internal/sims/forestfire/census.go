package forestfire

// Census counts cells by state.
type Census struct {
	Empty   int
	Tree    int
	Burning int
}

// Total returns the number of counted cells.
func (c Census) Total() int { return c.Empty + c.Tree + c.Burning }

// TreeDensity returns the fraction of cells holding a Tree.
func (c Census) TreeDensity() float64 { return c.fraction(c.Tree) }

// BurningDensity returns the fraction of cells on fire.
func (c Census) BurningDensity() float64 { return c.fraction(c.Burning) }

func (c Census) fraction(n int) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// Census counts the field's cells by state.
func (f *Field) Census() Census {
	var c Census
	for _, cell := range f.cells {
		switch cell {
		case Tree:
			c.Tree++
		case Burning:
			c.Burning++
		default:
			c.Empty++
		}
	}
	return c
}
