// Package core provides fundamental types and utilities for the xonix engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "fmt"

// Position is an integer cell coordinate.
// X increases to the right, Y increases downward (screen coordinates).
type Position struct {
	X, Y int
}

// P is a convenience constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// Moved returns the position one step away in the given direction.
func (p Position) Moved(d Direction) Position {
	return Position{X: p.X + d.DX, Y: p.Y + d.DY}
}

// String returns a string representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is a unit step on the grid. Each component is -1, 0 or 1,
// giving the eight compass directions plus None.
type Direction struct {
	DX, DY int
}

// The nine legal directions.
var (
	None      = Direction{}
	North     = Direction{DX: 0, DY: -1}
	South     = Direction{DX: 0, DY: 1}
	East      = Direction{DX: 1, DY: 0}
	West      = Direction{DX: -1, DY: 0}
	NorthEast = Direction{DX: 1, DY: -1}
	NorthWest = Direction{DX: -1, DY: -1}
	SouthEast = Direction{DX: 1, DY: 1}
	SouthWest = Direction{DX: -1, DY: 1}
)

// Directions returns all nine legal directions, None first.
func Directions() []Direction {
	return []Direction{None, North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}
}

// Diagonals returns the four diagonal directions enemies spawn with.
func Diagonals() []Direction {
	return []Direction{NorthEast, NorthWest, SouthEast, SouthWest}
}

// Horizontal returns only the x component of d.
func (d Direction) Horizontal() Direction {
	return Direction{DX: d.DX}
}

// Vertical returns only the y component of d.
func (d Direction) Vertical() Direction {
	return Direction{DY: d.DY}
}

// FlippedX mirrors d on the vertical axis.
func (d Direction) FlippedX() Direction {
	return Direction{DX: -d.DX, DY: d.DY}
}

// FlippedY mirrors d on the horizontal axis.
func (d Direction) FlippedY() Direction {
	return Direction{DX: d.DX, DY: -d.DY}
}

// IsNone reports whether d is the zero direction.
func (d Direction) IsNone() bool {
	return d.DX == 0 && d.DY == 0
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case NorthEast:
		return "northeast"
	case NorthWest:
		return "northwest"
	case SouthEast:
		return "southeast"
	case SouthWest:
		return "southwest"
	default:
		return fmt.Sprintf("dir(%d,%d)", d.DX, d.DY)
	}
}

// Rect represents an axis-aligned box, used for overlay frames.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// CenteredRect returns a w×h rectangle centered inside an area of the given size.
func CenteredRect(areaW, areaH, w, h int) Rect {
	return NewRect((areaW-w)/2, (areaH-h)/2, w, h)
}
