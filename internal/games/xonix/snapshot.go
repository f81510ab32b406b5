package xonix

import "github.com/vovakirdan/tui-xonix/internal/core"

// Snapshot captures the engine state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Screens     []string // Bottom to top
	Level       int
	Score       int
	Lives       int
	Delay       Delay
	Fill        float64
	Player      Actor
	SeaEnemies  []core.Position
	LandEnemies []core.Position
}

// Snapshot returns the current snapshot. Level fields come from the topmost
// level on the stack and stay zero on the title screen.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick}
	var play *PlayState
	for _, st := range g.stack {
		snap.Screens = append(snap.Screens, screenName(st))
		if p, ok := st.(*PlayState); ok {
			play = p
		}
	}
	if play == nil {
		return snap
	}

	snap.Level = play.level
	snap.Score = play.score
	snap.Lives = play.lives
	snap.Delay = play.delay
	snap.Fill = play.board.FillRatio()
	snap.Player = play.player
	for _, e := range play.seaEnemies {
		snap.SeaEnemies = append(snap.SeaEnemies, e.Position)
	}
	for _, e := range play.landEnemies {
		snap.LandEnemies = append(snap.LandEnemies, e.Position)
	}
	return snap
}
