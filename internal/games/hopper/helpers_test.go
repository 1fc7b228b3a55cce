package hopper

import (
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

const testDt = 0.2 // Longer than the hop cooldown

func testConfig() config.HopperConfig {
	return config.DefaultHopperConfig()
}

func newTestSim(t *testing.T, seed int64) *Sim {
	t.Helper()
	return NewSim(testConfig(), seed)
}

func frame(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

// placeLane swaps the lane at row for a hand-built one without spawns.
func placeLane(t *testing.T, s *Sim, row int, typ LaneType, seed int64, obstacles ...Obstacle) *Lane {
	t.Helper()
	w := s.World()
	w.LaneAt(row)

	var traffic *config.TrafficConfig
	switch typ {
	case LaneCrossing:
		traffic = &w.crossing
	case LaneFloating:
		traffic = &w.floating
	}
	lane := newLane(LaneSpec{
		Row:        row,
		Type:       typ,
		Direction:  1,
		Seed:       seed,
		SpawnDelay: 1e9,
	}, w.geom, traffic, w.cfg.BlockedChance)
	lane.obstacles = append(lane.obstacles, obstacles...)
	w.lanes[row-w.base] = lane
	return lane
}

// standOn puts the player on (col, row) without a hop.
func standOn(s *Sim, col, row int) {
	p := s.Player()
	p.X = s.geom.ColumnX(col)
	p.Row = row
	s.World().EnsureWindowAround(row)
}

// seedBlocking returns a lane seed whose blocked set contains col.
func seedBlocking(t *testing.T, col int, blocked bool) int64 {
	t.Helper()
	cfg := testConfig()
	for seed := int64(0); seed < 10000; seed++ {
		if BlockedColumns(seed, cfg.World.Columns, cfg.World.BlockedChance)[col] == blocked {
			return seed
		}
	}
	t.Fatalf("no seed with column %d blocked=%v", col, blocked)
	return 0
}

// clearLane makes row a safe lane without trees.
func clearLane(t *testing.T, s *Sim, row int) *Lane {
	t.Helper()
	lane := placeLane(t, s, row, LaneSafe, 0)
	lane.blocked = make([]bool, s.geom.Columns)
	return lane
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
