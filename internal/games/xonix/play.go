package xonix

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-xonix/internal/core"
)

// DelayKind identifies why play is frozen.
type DelayKind int

const (
	DelayNone DelayKind = iota
	DelayDeath
	DelayNextLevel
)

// String returns the delay name.
func (k DelayKind) String() string {
	switch k {
	case DelayNone:
		return "none"
	case DelayDeath:
		return "death"
	case DelayNextLevel:
		return "next_level"
	default:
		return "unknown"
	}
}

// Delay freezes play for Counter more ticks after a death or a cleared level.
type Delay struct {
	Kind    DelayKind
	Counter int
}

// PlayState is one level of a run. It owns the board and every actor.
type PlayState struct {
	s           *session
	board       *Board
	player      Actor
	seaEnemies  []Actor
	landEnemies []Actor
	level       int
	score       int
	lives       int
	delay       Delay
	tick        uint64
}

// newPlayState builds a fresh level with enemy counts scaled to level.
func newPlayState(s *session, level, score, lives int) (*PlayState, error) {
	board, err := NewBoard(s.cfg.Board.Width, s.cfg.Board.Height)
	if err != nil {
		return nil, err
	}

	p := &PlayState{
		s:     s,
		board: board,
		level: level,
		score: score,
		lives: lives,
	}

	for i := range s.cfg.SeaEnemies(level) {
		pos, err := board.RandomPositionOfType(s.rng, Sea, s.cfg.Rules.MaxSampleAttempts)
		if err != nil {
			return nil, fmt.Errorf("xonix: spawning sea enemy %d: %w", i+1, err)
		}
		p.seaEnemies = append(p.seaEnemies, Actor{Position: pos, Direction: randomDiagonal(s.rng)})
	}

	p.spawnPlayer()
	p.spawnLandEnemies()
	return p, nil
}

// spawnPlayer puts the player in the middle of the top border, standing still.
func (p *PlayState) spawnPlayer() {
	p.player = Actor{
		Position:  core.P(p.board.Width()/2, 0),
		Direction: core.None,
	}
}

// spawnLandEnemies spreads land enemies evenly along the bottom border.
func (p *PlayState) spawnLandEnemies() {
	n := p.s.cfg.LandEnemies(p.level)
	w, h := p.board.Width(), p.board.Height()

	p.landEnemies = make([]Actor, 0, n)
	for i := range n {
		p.landEnemies = append(p.landEnemies, Actor{
			Position:  core.P((i+1)*w/(n+1), h-2),
			Direction: randomDiagonal(p.s.rng),
		})
	}
}

// Board returns the level's board.
func (p *PlayState) Board() *Board {
	return p.board
}

// Player returns the player actor.
func (p *PlayState) Player() Actor {
	return p.player
}

// Level returns the level number, starting at 1.
func (p *PlayState) Level() int {
	return p.level
}

// Score returns the score accumulated over the run.
func (p *PlayState) Score() int {
	return p.score
}

// Lives returns the remaining lives.
func (p *PlayState) Lives() int {
	return p.lives
}

// Delay returns the current delay.
func (p *PlayState) Delay() Delay {
	return p.delay
}

// Update runs one tick: bounce, predict collisions, then move.
func (p *PlayState) Update() Transition {
	p.tick++

	switch p.delay.Kind {
	case DelayDeath:
		if p.delay.Counter == 0 {
			p.delay = Delay{}
			p.reset()
			return NoTransition()
		}
		p.delay.Counter--
		return NoTransition()

	case DelayNextLevel:
		if p.delay.Counter == 0 {
			next, err := newPlayState(p.s, p.level+1, p.score, p.lives)
			if err != nil {
				// Stay frozen and retry on the next tick.
				p.s.logger.Error("cannot build next level", "level", p.level+1, "error", err)
				return NoTransition()
			}
			p.s.logger.Info("level started", "level", next.level, "score", next.score, "lives", next.lives)
			return Replace(next)
		}
		p.delay.Counter--
		return NoTransition()
	}

	for i := range p.seaEnemies {
		bounceSeaEnemy(p.board, &p.seaEnemies[i])
	}
	for i := range p.landEnemies {
		bounceLandEnemy(p.board, &p.landEnemies[i])
	}

	if p.findCollision() {
		p.lives--
		p.s.logger.Debug("collision", "tick", p.tick, "player", p.player.Position, "lives", p.lives)
		if p.lives <= 0 {
			p.lives = 0
			p.s.logger.Info("game over", "level", p.level, "score", p.score)
			return Push(newGameOverState(p.s, p.score, p.level))
		}
		p.delay = Delay{Kind: DelayDeath, Counter: p.s.cfg.Rules.DeathDelay}
		return NoTransition()
	}

	p.movePlayer()
	for i := range p.seaEnemies {
		p.seaEnemies[i].Advance()
	}
	for i := range p.landEnemies {
		p.landEnemies[i].Advance()
	}

	if p.board.FillRatio() > p.s.cfg.Rules.FillThreshold {
		p.s.logger.Info("level cleared", "level", p.level, "fill", p.board.FillRatio())
		p.delay = Delay{Kind: DelayNextLevel, Counter: p.s.cfg.Rules.NextLevelDelay}
	}
	return NoTransition()
}

// findCollision predicts whether this tick's moves would kill the player.
// It must run after bounces and before anything moves.
func (p *PlayState) findCollision() bool {
	if p.board.Is(p.player.Next(), Sand) {
		return true
	}

	onPlayerOrTrail := func(pos core.Position) bool {
		return pos == p.player.Position || p.board.Is(pos, Sand)
	}
	for _, e := range p.seaEnemies {
		if e.hits(onPlayerOrTrail) {
			return true
		}
	}

	onPlayer := func(pos core.Position) bool {
		return pos == p.player.Position
	}
	for _, e := range p.landEnemies {
		if e.hits(onPlayer) {
			return true
		}
	}
	return false
}

// movePlayer steps the player, leaving a trail over the sea and capturing
// territory when the trail reaches land again.
func (p *PlayState) movePlayer() {
	next := p.player.Next()
	if !p.board.WithinBounds(next) {
		p.player.Direction = core.None
		return
	}

	if p.board.Is(p.player.Position, Sea) {
		p.board.Set(p.player.Position, Sand)

		if p.board.Is(next, Land) {
			p.player.Direction = core.None
			p.capture()
		}
	}

	p.player.Position = next
}

// capture fills every region without a sea enemy and scores the gain.
func (p *PlayState) capture() {
	sources := make([]core.Position, len(p.seaEnemies))
	for i, e := range p.seaEnemies {
		sources[i] = e.Position
	}

	gained := p.board.Fill(sources)
	points := int(math.Round(gained * 100 * float64(p.s.cfg.Rules.ScorePerPercent)))
	p.score += points
	p.s.logger.Debug("captured", "gained", gained, "points", points, "fill", p.board.FillRatio())
}

// reset discards the trail and respawns the player and land enemies after a death.
// Sea enemies, score and lives carry over.
func (p *PlayState) reset() {
	p.board.Clean()
	p.spawnPlayer()
	p.spawnLandEnemies()
}

// HandleEvent steers the player. Back abandons the run.
func (p *PlayState) HandleEvent(e core.Event) Transition {
	if d, ok := e.Direction(); ok {
		p.player.Direction = d
		return NoTransition()
	}
	if e == core.EventBack {
		p.s.logger.Info("run abandoned", "level", p.level, "score", p.score)
		return Pop(1)
	}
	return NoTransition()
}

// RenderParent is false: the level covers everything below it.
func (p *PlayState) RenderParent() bool {
	return false
}

// Render draws the board row by row, then the actors, then the status line.
func (p *PlayState) Render(dst core.Canvas) {
	w, h := p.board.Width(), p.board.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			f, _ := p.board.Get(core.P(x, y))
			r, c := fieldGlyph(f)
			dst.PutCell(x, y, r, c)
		}
	}

	playerGlyph := 'x'
	if p.delay.Kind == DelayDeath {
		playerGlyph = '*'
	}
	dst.PutCell(p.player.Position.X, p.player.Position.Y, playerGlyph, core.ColorBrightWhite)
	for _, e := range p.seaEnemies {
		dst.PutCell(e.Position.X, e.Position.Y, 'S', core.ColorBrightRed)
	}
	for _, e := range p.landEnemies {
		dst.PutCell(e.Position.X, e.Position.Y, 'L', core.ColorMagenta)
	}

	if p.delay.Kind == DelayNextLevel {
		core.DrawTextCentered(dst, w, h/2, fmt.Sprintf(" LEVEL %d CLEAR ", p.level), core.ColorBrightYellow)
	}

	hud := []rune(fmt.Sprintf("Score: %d Xn: %d Full: %.0f%% Level: %d",
		p.score, p.lives, p.board.FillRatio()*100, p.level))
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(hud) {
			r = hud[x]
		}
		dst.PutCell(x, h, r, core.ColorWhite)
	}
}

// fieldGlyph maps a field to its character and color.
func fieldGlyph(f Field) (rune, core.Color) {
	switch f {
	case Land:
		return '█', core.ColorBlue
	case Sea:
		return '░', core.ColorCyan
	case Sand:
		return '▒', core.ColorYellow
	default:
		return '?', core.ColorGray
	}
}

func (p *PlayState) screen() {}
