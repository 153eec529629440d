package forestfire

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by ParseField for text that is not a rendered grid.
var ErrMalformed = errors.New("forestfire: malformed grid text")

// Render draws the field as text: one glyph per cell, a newline after each
// row. The result is (width+1)*height bytes long.
func (f *Field) Render() string {
	var sb strings.Builder
	sb.Grow((f.dims.W + 1) * f.dims.H)
	for i, c := range f.cells {
		sb.WriteByte(c.Glyph())
		if (i+1)%f.dims.W == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ParseField reads text in the Render format back into a Field.
func ParseField(text string, growth, ignite float64) (*Field, error) {
	rows := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	width := len(rows[0])
	f, err := New(width, len(rows), growth, ignite)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, y, len(row), width)
		}
		for x := 0; x < width; x++ {
			c, ok := cellFromGlyph(row[x])
			if !ok {
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", ErrMalformed, row[x], x, y)
			}
			f.cells[f.dims.Index(x, y)] = c
		}
	}
	return f, nil
}
