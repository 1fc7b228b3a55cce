package hopper

import "github.com/vovakirdan/tui-hopper/internal/core"

// LaneView is a read-only copy of a lane.
type LaneView struct {
	Row       int
	Type      LaneType
	Direction int
	Speed     float64
	Blocked   []int
	Obstacles []Obstacle
}

// PlayerView is a read-only copy of the player pose.
type PlayerView struct {
	X           float64
	Column      int
	Row         int
	Rect        core.RectF
	Alive       bool
	Drift       float64
	State       HopState
	HopProgress float64
	HopArc      float64
}

// Snapshot captures everything a renderer needs after a completed tick.
// It shares no memory with the simulation.
type Snapshot struct {
	Tick      uint64
	Time      float64
	Seed      int64
	Tile      float64
	Columns   int
	Lanes     []LaneView // Ascending by row
	Player    PlayerView
	Score     int
	Best      int
	Alive     bool
	Paused    bool
	Cause     DeathCause
	CameraRow float64
}

// Snapshot returns a copy of the lanes around the player and the player pose.
func (s *Sim) Snapshot() Snapshot {
	p := s.player
	wc := s.cfg.World

	lanes := s.world.Lanes(p.Row-(wc.BehindRows+wc.RetainMargin), p.Row+wc.AheadRows)
	views := make([]LaneView, 0, len(lanes))
	for _, l := range lanes {
		obstacles := make([]Obstacle, len(l.Obstacles()))
		copy(obstacles, l.Obstacles())
		views = append(views, LaneView{
			Row:       l.Row(),
			Type:      l.Type(),
			Direction: l.Direction(),
			Speed:     l.Speed(),
			Blocked:   l.BlockedColumns(),
			Obstacles: obstacles,
		})
	}

	return Snapshot{
		Tick:    s.tick,
		Time:    s.now,
		Seed:    s.seed,
		Tile:    s.geom.Tile,
		Columns: s.geom.Columns,
		Lanes:   views,
		Player: PlayerView{
			X:           p.X,
			Column:      p.Column(),
			Row:         p.Row,
			Rect:        p.Rect(),
			Alive:       p.Alive,
			Drift:       p.Drift,
			State:       p.State(),
			HopProgress: p.HopProgress(),
			HopArc:      p.HopArc(),
		},
		Score:     p.Score,
		Best:      p.Best,
		Alive:     p.Alive,
		Paused:    s.paused,
		Cause:     p.Cause,
		CameraRow: s.camera.Row,
	}
}
