package xonix

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-xonix/internal/config"
	"github.com/vovakirdan/tui-xonix/internal/core"
)

// Field is the state of a single board cell.
type Field uint8

const (
	Land Field = iota
	Sea
	Sand    // trail left by the player while crossing the sea
	DeepSea // flood-fill marker, never survives Fill
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case Land:
		return "land"
	case Sea:
		return "sea"
	case Sand:
		return "sand"
	case DeepSea:
		return "deep sea"
	default:
		return "unknown"
	}
}

var (
	// ErrBoardTooSmall is returned when a board would have no interior.
	ErrBoardTooSmall = errors.New("xonix: board too small")

	// ErrNoMatchingCell is returned when rejection sampling gives up.
	ErrNoMatchingCell = errors.New("xonix: no matching cell")
)

// Board is the playfield: a land border around a sea interior.
// Cells are stored in row-major order: index = y*width + x.
type Board struct {
	width     int
	height    int
	fields    []Field
	fillRatio float64
}

// NewBoard creates a board with a land border and an open sea interior.
func NewBoard(width, height int) (*Board, error) {
	border := config.BorderWidth
	if width <= 2*border || height <= 2*border {
		return nil, fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, width, height)
	}

	b := &Board{
		width:  width,
		height: height,
		fields: make([]Field, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f := Sea
			if x < border || x >= width-border || y < border || y >= height-border {
				f = Land
			}
			b.fields[b.index(core.P(x, y))] = f
		}
	}
	return b, nil
}

// index converts a position to a flat array index.
func (b *Board) index(p core.Position) int {
	return p.Y*b.width + p.X
}

// Width returns the board width in cells.
func (b *Board) Width() int {
	return b.width
}

// Height returns the board height in cells.
func (b *Board) Height() int {
	return b.height
}

// FillRatio returns the fraction of the interior claimed as land.
func (b *Board) FillRatio() float64 {
	return b.fillRatio
}

// InteriorCells returns the number of cells inside the fixed border.
func (b *Board) InteriorCells() int {
	border := config.BorderWidth
	return (b.width - 2*border) * (b.height - 2*border)
}

// WithinBounds returns true if the position lies on the board.
func (b *Board) WithinBounds(p core.Position) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// Get returns the field at p. ok is false when p is off the board.
func (b *Board) Get(p core.Position) (f Field, ok bool) {
	if !b.WithinBounds(p) {
		return Land, false
	}
	return b.fields[b.index(p)], true
}

// Set changes the field at p. Returns false when p is off the board.
func (b *Board) Set(p core.Position, f Field) bool {
	if !b.WithinBounds(p) {
		return false
	}
	b.fields[b.index(p)] = f
	return true
}

// Is reports whether p is on the board and holds f.
func (b *Board) Is(p core.Position, f Field) bool {
	got, ok := b.Get(p)
	return ok && got == f
}

// Count returns the number of cells holding f.
func (b *Board) Count(f Field) int {
	n := 0
	for _, field := range b.fields {
		if field == f {
			n++
		}
	}
	return n
}

// RandomPositionOfType samples positions uniformly until one holds f.
// Gives up with ErrNoMatchingCell after maxAttempts samples.
func (b *Board) RandomPositionOfType(rng *rand.Rand, f Field, maxAttempts int) (core.Position, error) {
	for range maxAttempts {
		p := core.P(rng.Intn(b.width), rng.Intn(b.height))
		if b.fields[b.index(p)] == f {
			return p, nil
		}
	}
	return core.Position{}, fmt.Errorf("%w: no %s cell after %d attempts", ErrNoMatchingCell, f, maxAttempts)
}

// Fill captures territory. Every sea region reachable from a source keeps
// its water; every other sea or sand cell becomes land. Returns the gained
// fill ratio.
func (b *Board) Fill(sources []core.Position) float64 {
	for _, src := range sources {
		b.flood(src)
	}

	remaining := 0
	for i, f := range b.fields {
		switch f {
		case DeepSea:
			b.fields[i] = Sea
			remaining++
		case Sea, Sand:
			b.fields[i] = Land
		}
	}

	old := b.fillRatio
	b.fillRatio = 1 - float64(remaining)/float64(b.InteriorCells())
	return max(0, b.fillRatio-old)
}

// flood marks the 4-connected sea region around start as DeepSea.
func (b *Board) flood(start core.Position) {
	if !b.Is(start, Sea) {
		return
	}

	neighbours := [4]core.Direction{core.North, core.South, core.West, core.East}
	b.Set(start, DeepSea)
	queue := []core.Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			next := p.Moved(d)
			if !b.Is(next, Sea) {
				continue
			}
			b.Set(next, DeepSea)
			queue = append(queue, next)
		}
	}
}

// Clean erases an unfinished trail.
func (b *Board) Clean() {
	for i, f := range b.fields {
		if f == Sand {
			b.fields[i] = Sea
		}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	return &Board{
		width:     b.width,
		height:    b.height,
		fields:    fields,
		fillRatio: b.fillRatio,
	}
}

// Equal returns true if two boards have the same size and cells.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i, f := range b.fields {
		if f != other.fields[i] {
			return false
		}
	}
	return true
}
