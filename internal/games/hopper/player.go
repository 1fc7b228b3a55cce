package hopper

import (
	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// HopState is the player's movement state.
type HopState uint8

const (
	HopIdle     HopState = iota // Ready, or waiting out the cooldown on the ground
	HopAirborne                 // Hop arc in progress
)

// DeathCause records why a run ended.
type DeathCause uint8

const (
	CauseNone    DeathCause = iota
	CauseHit                // Touched traffic on a crossing lane
	CauseDrowned            // Stood on a floating lane without support
	CauseSwept              // Carried past the edge of the playfield
)

// String returns a human-readable description.
func (c DeathCause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseHit:
		return "hit by traffic"
	case CauseDrowned:
		return "drowned"
	case CauseSwept:
		return "swept away"
	default:
		return "unknown"
	}
}

// Player is the hopping character.
// X is continuous; it sits on grid multiples except while being carried.
type Player struct {
	X     float64
	Row   int
	Alive bool
	Score int
	Best  int
	Drift float64 // Pixels per second imposed by the current support
	Cause DeathCause

	geom        Geometry
	cooldown    float64 // Seconds between accepted hops
	animRate    float64 // Hop progress per second
	lastHop     float64
	hopProgress float64
	state       HopState
}

func newPlayer(geom Geometry, cfg config.PlayerConfig) *Player {
	return &Player{
		geom:     geom,
		cooldown: float64(cfg.HopCooldownMs) / 1000.0,
		animRate: cfg.HopAnimRate,
	}
}

// reset places the player at (col, row). Best survives resets.
func (p *Player) reset(col, row int) {
	p.X = p.geom.ColumnX(col)
	p.Row = row
	p.Alive = true
	p.Score = 0
	p.Drift = 0
	p.Cause = CauseNone
	p.lastHop = -p.cooldown
	p.hopProgress = 0
	p.state = HopIdle
}

// Column returns the grid column nearest to the player.
func (p *Player) Column() int {
	return p.geom.ColumnAt(p.X)
}

// State returns the hop state.
func (p *Player) State() HopState {
	return p.state
}

// HopProgress returns the hop animation progress in [0, 1].
func (p *Player) HopProgress() float64 {
	if p.state == HopIdle {
		return 0
	}
	return p.hopProgress
}

// HopArc returns the height of the hop arc as a fraction of its peak.
func (p *Player) HopArc() float64 {
	t := p.HopProgress()
	return 4 * t * (1 - t)
}

// TileRect returns the full grid cell the player occupies.
func (p *Player) TileRect() core.RectF {
	return core.NewRectF(p.X, p.geom.RowY(p.Row), p.geom.Tile, p.geom.Tile)
}

// Rect returns the player's visual body.
func (p *Player) Rect() core.RectF {
	return p.TileRect().Inset(PlayerInset, PlayerInset)
}

// Hitbox returns the rectangle tested against traffic.
func (p *Player) Hitbox() core.RectF {
	return p.Rect().Inset(PlayerHitboxInset, PlayerHitboxInset)
}

// SupportPoint returns the point tested against platforms.
func (p *Player) SupportPoint() (x, y float64) {
	r := p.Rect()
	return r.CenterX(), r.Bottom() - SupportProbeLift
}

// CanHop reports whether a hop may start at time now.
func (p *Player) CanHop(now float64) bool {
	return p.Alive && now-p.lastHop >= p.cooldown
}

// hopTo snaps the player onto (col, row) and starts the hop arc.
// Callers validate the target; col is clamped and row floored at 0 here.
func (p *Player) hopTo(col, row int, now float64) {
	p.lastHop = now
	p.state = HopAirborne
	p.hopProgress = 0
	p.X = p.geom.ColumnX(p.geom.ClampColumn(col))
	if row < 0 {
		row = 0
	}
	p.Row = row
}

// Update advances the hop arc and applies drift. A player carried fully
// outside the playfield dies.
func (p *Player) Update(dt float64) {
	if !p.Alive {
		return
	}

	if p.state == HopAirborne {
		p.hopProgress += dt * p.animRate
		if p.hopProgress >= 1 {
			p.hopProgress = 1
			p.state = HopIdle
		}
	}

	if p.Drift != 0 {
		p.X += p.Drift * dt
	}

	r := p.Rect()
	if r.Right() < 0 || r.X > p.geom.ViewportW() {
		p.kill(CauseSwept)
	}
}

// kill ends the run. The first cause wins.
func (p *Player) kill(cause DeathCause) {
	if !p.Alive {
		return
	}
	p.Alive = false
	p.Cause = cause
}
