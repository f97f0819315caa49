// Package viewport tracks what part of the source image is on screen and how
// it is drawn, and advances that state one command at a time.
package viewport

import "fmt"

// Position is a pixel offset or size. Components are never negative.
type Position struct {
	X, Y int
}

// Pt is shorthand for Position{x, y}.
func Pt(x, y int) Position {
	return Position{X: x, Y: y}
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p+q.
func (p Position) Add(q Position) Position {
	return Position{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q with each component floored at 0. The flag reports whether
// any component had to be clamped.
func (p Position) Sub(q Position) (Position, bool) {
	x, cx := subFloor(p.X, q.X)
	y, cy := subFloor(p.Y, q.Y)
	return Position{X: x, Y: y}, cx || cy
}

// Half halves both components, rounding down.
func (p Position) Half() Position {
	return Position{X: p.X >> 1, Y: p.Y >> 1}
}

// MulScale multiplies both components by scale, truncating toward zero.
func (p Position) MulScale(scale float64) Position {
	return Position{
		X: int(float64(p.X) * scale),
		Y: int(float64(p.Y) * scale),
	}
}

func subFloor(a, b int) (int, bool) {
	if b > a {
		return 0, true
	}
	return a - b, false
}

// FullScale returns the smallest scale at which the whole image fits in the
// terminal pixel area: one axis fits exactly, the other is over-covered.
// Degenerate sizes yield 1.
func FullScale(term, img Position) float64 {
	if term.X <= 0 || term.Y <= 0 || img.X <= 0 || img.Y <= 0 {
		return 1
	}
	tw, th := float64(term.X), float64(term.Y)
	iw, ih := float64(img.X), float64(img.Y)
	if tw/iw < th/ih {
		return iw / tw
	}
	return ih / th
}
