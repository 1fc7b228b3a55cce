package hopper

import (
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Sim is the per-tick orchestration of world, player and interaction rules.
type Sim struct {
	cfg        config.HopperConfig
	geom       Geometry
	world      *World
	player     *Player
	camera     Camera
	difficulty *config.DifficultyManager

	seed   int64
	seeds  *rand.Rand // Source of seeds for restarts
	now    float64    // Simulation seconds since reset
	tick   uint64
	paused bool
}

// NewSim creates a simulation and resets it with seed.
func NewSim(cfg config.HopperConfig, seed int64) *Sim {
	s := &Sim{
		cfg:        cfg,
		world:      NewWorld(cfg, seed),
		camera:     newCamera(cfg.Player.CameraLead, cfg.Player.CameraRate),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		seeds:      rand.New(rand.NewSource(seed)),
	}
	s.geom = s.world.Geometry()
	s.player = newPlayer(s.geom, cfg.Player)
	s.Reset(seed)
	return s
}

// Reset reinitializes world and player. The best score is kept.
func (s *Sim) Reset(seed int64) {
	s.seed = seed
	s.world.Reset(seed)
	s.player.reset(s.geom.Columns/2, s.cfg.Player.StartRow)
	s.camera.Snap(s.player.Row)
	s.now = 0
	s.tick = 0
	s.paused = false
}

// World returns the lane streamer.
func (s *Sim) World() *World { return s.world }

// Player returns the player.
func (s *Sim) Player() *Player { return s.player }

// Camera returns the presentation camera.
func (s *Sim) Camera() Camera { return s.camera }

// Seed returns the seed of the current run.
func (s *Sim) Seed() int64 { return s.seed }

// Now returns the simulation time in seconds.
func (s *Sim) Now() float64 { return s.now }

// Tick returns the number of simulated ticks since reset.
func (s *Sim) Tick() uint64 { return s.tick }

// Paused reports whether the simulation is paused.
func (s *Sim) Paused() bool { return s.paused }

// Step runs one tick. Restart reseeds and resets; a dead or paused
// simulation does not change otherwise.
func (s *Sim) Step(dt float64, in core.InputFrame) {
	if in.Has(core.ActionRestart) {
		s.Reset(s.seeds.Int63())
		return
	}

	p := s.player
	if !p.Alive {
		return
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	s.now += dt
	s.tick++

	for _, a := range core.Directions {
		if in.Has(a) {
			s.TryHop(a)
		}
	}

	s.world.SetSpeedScale(s.difficulty.SpeedScale(p.Score, int(s.tick)))
	s.world.Advance(dt, p.Row)

	p.Drift = 0
	p.Score = max(p.Score, p.Row-s.cfg.Player.StartRow)
	p.Best = max(p.Best, p.Score)

	s.resolve(s.world.LaneAt(p.Row))

	p.Update(dt)

	// Traffic is tested again after the player moves. Support on floating
	// lanes is tested once per tick, before drift.
	if p.Alive {
		lane := s.world.LaneAt(p.Row)
		if lane.Type() == LaneCrossing && lane.HazardOverlaps(p.Hitbox()) {
			p.kill(CauseHit)
		}
	}

	s.camera.Update(dt, p.Row)
}

// resolve applies the lane rules to the player before it moves.
func (s *Sim) resolve(lane *Lane) {
	p := s.player
	switch lane.Type() {
	case LaneSafe:
	case LaneCrossing:
		if lane.HazardOverlaps(p.Hitbox()) {
			p.kill(CauseHit)
		}
	case LaneFloating:
		support, ok := lane.SupportAt(p.SupportPoint())
		if !ok {
			p.kill(CauseDrowned)
			return
		}
		p.Drift = support.Velocity
	}
}

// TryHop validates and performs a hop. Rejected hops change nothing.
func (s *Sim) TryHop(a core.Action) bool {
	dc, dr, ok := a.Delta()
	if !ok {
		return false
	}

	p := s.player
	if !p.CanHop(s.now) {
		return false
	}

	col := s.geom.ClampColumn(p.Column() + dc)
	row := max(0, p.Row+dr)
	if s.world.LaneAt(row).IsBlocked(col) {
		return false
	}

	p.hopTo(col, row, s.now)
	return true
}
