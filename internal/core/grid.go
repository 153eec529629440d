package core

import "fmt"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Dims describes a bounded rectangular grid stored in row-major order.
type Dims struct {
	W, H int
}

// Len returns the number of cells covered by the grid.
func (d Dims) Len() int { return d.W * d.H }

// Index returns the linear slice index for coordinates (x, y).
func (d Dims) Index(x, y int) int { return y*d.W + x }

// Coords converts a linear index back to its (x, y) coordinates.
func (d Dims) Coords(i int) (int, int) { return i % d.W, i / d.W }

// InBounds reports whether (x, y) lies inside the grid.
func (d Dims) InBounds(x, y int) bool {
	return x >= 0 && x < d.W && y >= 0 && y < d.H
}

// MustIndex is Index with a bounds check. Out-of-range coordinates are a
// programming error and panic.
func (d Dims) MustIndex(x, y int) int {
	if !d.InBounds(x, y) {
		panic(fmt.Sprintf("core: coordinate (%d,%d) outside %dx%d grid", x, y, d.W, d.H))
	}
	return d.Index(x, y)
}

// Neighbours returns the Moore neighbourhood of (x, y) clipped to the grid.
// Edges do not wrap.
func (d Dims) Neighbours(x, y int) []Point {
	out := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= d.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= d.W {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			out = append(out, Point{X: nx, Y: ny})
		}
	}
	return out
}
