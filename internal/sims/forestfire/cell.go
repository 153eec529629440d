package forestfire

// Cell is the state of a single grid position.
type Cell uint8

const (
	Empty Cell = iota
	Tree
	Burning
)

const (
	glyphEmpty   = ' '
	glyphTree    = 'T'
	glyphBurning = '#'
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Tree:
		return "tree"
	case Burning:
		return "burning"
	default:
		return "unknown"
	}
}

// Glyph returns the text character used when rendering the cell.
func (c Cell) Glyph() byte {
	switch c {
	case Tree:
		return glyphTree
	case Burning:
		return glyphBurning
	default:
		return glyphEmpty
	}
}

func cellFromGlyph(b byte) (Cell, bool) {
	switch b {
	case glyphEmpty:
		return Empty, true
	case glyphTree:
		return Tree, true
	case glyphBurning:
		return Burning, true
	}
	return Empty, false
}
