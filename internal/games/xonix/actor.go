package xonix

import (
	"math/rand"

	"github.com/vovakirdan/tui-xonix/internal/core"
)

// Actor is anything that moves on the board: the player and both enemy kinds.
// Kinds differ only in how they bounce, not in their data.
type Actor struct {
	Position  core.Position
	Direction core.Direction
}

// Next returns the cell the actor would step onto.
func (a Actor) Next() core.Position {
	return a.Position.Moved(a.Direction)
}

// Advance moves the actor one step along its direction.
func (a *Actor) Advance() {
	a.Position = a.Next()
}

// HitPositions returns the cells an enemy can strike this tick:
// the full diagonal step and its horizontal and vertical parts.
func (a Actor) HitPositions() [3]core.Position {
	return [3]core.Position{
		a.Position.Moved(a.Direction),
		a.Position.Moved(a.Direction.Horizontal()),
		a.Position.Moved(a.Direction.Vertical()),
	}
}

// hits reports whether any hit position satisfies test.
func (a Actor) hits(test func(core.Position) bool) bool {
	for _, p := range a.HitPositions() {
		if test(p) {
			return true
		}
	}
	return false
}

// bounce reflects the actor off cells for which blocked is true.
// The horizontal axis is resolved first, then the vertical axis against the
// possibly updated direction, then the exact diagonal. Changing this order
// changes how enemies leave corners.
func (a *Actor) bounce(blocked func(core.Position) bool) {
	if blocked(a.Position.Moved(a.Direction.Horizontal())) {
		a.Direction = a.Direction.FlippedX()
	}
	if blocked(a.Position.Moved(a.Direction.Vertical())) {
		a.Direction = a.Direction.FlippedY()
	}
	if blocked(a.Position.Moved(a.Direction)) {
		a.Direction = a.Direction.FlippedX().FlippedY()
	}
}

// bounceSeaEnemy keeps a sea enemy inside the water: land is a wall.
func bounceSeaEnemy(b *Board, a *Actor) {
	a.bounce(func(p core.Position) bool {
		f, ok := b.Get(p)
		return !ok || f == Land
	})
}

// bounceLandEnemy keeps a land enemy on land: anything else, including the
// grid edge, is a wall.
func bounceLandEnemy(b *Board, a *Actor) {
	a.bounce(func(p core.Position) bool {
		f, ok := b.Get(p)
		return !ok || f != Land
	})
}

// randomDiagonal picks one of the four diagonal directions.
func randomDiagonal(rng *rand.Rand) core.Direction {
	d := core.Diagonals()
	return d[rng.Intn(len(d))]
}
