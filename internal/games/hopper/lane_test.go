package hopper

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

var testGeom = Geometry{Tile: 48, Columns: 15, CullMargin: 192}

func testLane(typ LaneType, dir int, delay float64) *Lane {
	cfg := config.DefaultHopperConfig()
	var traffic *config.TrafficConfig
	switch typ {
	case LaneCrossing:
		traffic = &cfg.Crossing
	case LaneFloating:
		traffic = &cfg.Floating
	}
	return newLane(LaneSpec{
		Row:        10,
		Type:       typ,
		Direction:  dir,
		Speed:      200,
		Seed:       42,
		SpawnDelay: delay,
	}, testGeom, traffic, cfg.World.BlockedChance)
}

func TestBlockedColumnsDeterministic(t *testing.T) {
	a := BlockedColumns(1234, 15, 0.2)
	b := BlockedColumns(1234, 15, 0.2)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different trees: %v vs %v", a, b)
	}

	differs := false
	for seed := int64(0); seed < 50 && !differs; seed++ {
		differs = !reflect.DeepEqual(a, BlockedColumns(seed, 15, 0.2))
	}
	if !differs {
		t.Error("expected tree placement to vary with the seed")
	}
}

func TestBlockedColumnsChance(t *testing.T) {
	for _, b := range BlockedColumns(7, 15, 0) {
		if b {
			t.Fatal("chance 0 should block nothing")
		}
	}
	for _, b := range BlockedColumns(7, 15, 1) {
		if !b {
			t.Fatal("chance 1 should block everything")
		}
	}

	total := 0
	for seed := int64(0); seed < 200; seed++ {
		for _, b := range BlockedColumns(seed, 15, 0.2) {
			if b {
				total++
			}
		}
	}
	// 3000 draws at 20% should land near 600.
	if total < 450 || total > 750 {
		t.Errorf("blocked %d of 3000 columns, expected about 600", total)
	}
}

func TestLaneBlockedAccessorsAgree(t *testing.T) {
	lane := testLane(LaneSafe, 1, 0)
	expected := BlockedColumns(42, 15, 0.2)

	var cols []int
	for col := 0; col < 15; col++ {
		if lane.IsBlocked(col) != expected[col] {
			t.Errorf("IsBlocked(%d) = %v, expected %v", col, lane.IsBlocked(col), expected[col])
		}
		if expected[col] {
			cols = append(cols, col)
		}
	}
	if !reflect.DeepEqual(lane.BlockedColumns(), cols) {
		t.Errorf("BlockedColumns() = %v, expected %v", lane.BlockedColumns(), cols)
	}

	if lane.IsBlocked(-1) || lane.IsBlocked(15) {
		t.Error("out-of-range columns should never be blocked")
	}
}

func TestHazardLaneHasNoTrees(t *testing.T) {
	for _, typ := range []LaneType{LaneCrossing, LaneFloating} {
		lane := testLane(typ, 1, 0)
		if len(lane.BlockedColumns()) != 0 {
			t.Errorf("%s lane has trees", typ)
		}
	}
}

func TestSafeLaneHasNoTraffic(t *testing.T) {
	lane := testLane(LaneSafe, 1, 0)
	for i := 0; i < 600; i++ {
		lane.Advance(1.0 / 60.0)
	}
	if len(lane.Obstacles()) != 0 {
		t.Errorf("safe lane spawned %d obstacles", len(lane.Obstacles()))
	}
}

func TestLaneSpawnPlacement(t *testing.T) {
	tests := []struct {
		name string
		typ  LaneType
		dir  int
		kind ObstacleKind
	}{
		{"crossing moving right", LaneCrossing, 1, KindHazard},
		{"crossing moving left", LaneCrossing, -1, KindHazard},
		{"floating moving right", LaneFloating, 1, KindSupport},
		{"floating moving left", LaneFloating, -1, KindSupport},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lane := testLane(tc.typ, tc.dir, 0)
			lane.Advance(0.01)

			obs := lane.Obstacles()
			if len(obs) != 1 {
				t.Fatalf("expected 1 obstacle after the first spawn, got %d", len(obs))
			}
			o := obs[0]

			if o.Kind != tc.kind {
				t.Errorf("Kind = %v, expected %v", o.Kind, tc.kind)
			}
			if o.Velocity != 200*float64(tc.dir) {
				t.Errorf("Velocity = %v, expected %v", o.Velocity, 200*float64(tc.dir))
			}
			if o.Variant < 0 || o.Variant >= ObstacleVariants {
				t.Errorf("Variant = %d out of range", o.Variant)
			}

			// Entry is fully off-screen on the side the obstacle comes from.
			if tc.dir > 0 && o.Rect.Right() > -10 {
				t.Errorf("right-mover spawned at x=%v w=%v, expected left of -10", o.Rect.X, o.Rect.W)
			}
			if tc.dir < 0 && o.Rect.X < testGeom.ViewportW()+10 {
				t.Errorf("left-mover spawned at x=%v, expected past the right edge", o.Rect.X)
			}

			// Vertically centred inside the lane.
			top := o.Rect.Y - lane.Y()
			bottom := lane.Y() + testGeom.Tile - o.Rect.Bottom()
			if top < 0 || bottom < 0 || top-bottom > 1 || bottom-top > 1 {
				t.Errorf("obstacle not centred: top gap %v, bottom gap %v", top, bottom)
			}

			traffic := lane.traffic
			if lane.SpawnTimer() < traffic.MinGap || lane.SpawnTimer() >= traffic.MaxGap {
				t.Errorf("spawn timer %v outside [%v, %v)", lane.SpawnTimer(), traffic.MinGap, traffic.MaxGap)
			}
		})
	}
}

func TestLaneSpawnTimerWaits(t *testing.T) {
	lane := testLane(LaneCrossing, 1, 0.5)

	lane.Advance(0.4)
	if len(lane.Obstacles()) != 0 {
		t.Fatal("spawned before the initial delay elapsed")
	}
	lane.Advance(0.1)
	if len(lane.Obstacles()) != 1 {
		t.Fatalf("expected a spawn once the delay reached zero, got %d", len(lane.Obstacles()))
	}
}

func TestLaneCullsDepartedObstacles(t *testing.T) {
	lane := testLane(LaneCrossing, 1, 1e9)
	lane.obstacles = append(lane.obstacles,
		Obstacle{Rect: core.NewRectF(900, lane.Y()+6, 60, 35), Velocity: 100, Kind: KindHazard},
		Obstacle{Rect: core.NewRectF(300, lane.Y()+6, 60, 35), Velocity: 100, Kind: KindHazard},
	)

	lane.Advance(0.1)
	if len(lane.Obstacles()) != 2 {
		t.Fatalf("obstacle within the cull margin was dropped early")
	}

	lane.Advance(0.1)
	obs := lane.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("expected 1 obstacle after culling, got %d", len(obs))
	}
	if obs[0].Rect.X != 320 {
		t.Errorf("wrong obstacle survived: x=%v", obs[0].Rect.X)
	}
}

func TestLaneHazardOverlaps(t *testing.T) {
	lane := testLane(LaneCrossing, 1, 1e9)
	lane.obstacles = append(lane.obstacles,
		Obstacle{Rect: core.NewRectF(100, lane.Y()+6, 60, 35), Kind: KindHazard})

	tests := []struct {
		name     string
		hitbox   core.RectF
		expected bool
	}{
		{"overlapping", core.NewRectF(120, lane.Y()+18, 12, 12), true},
		{"inside forgiveness margin", core.NewRectF(88, lane.Y()+18, 14, 12), false},
		{"touching shrunk edge", core.NewRectF(157, lane.Y()+18, 12, 12), false},
		{"clear", core.NewRectF(300, lane.Y()+18, 12, 12), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lane.HazardOverlaps(tc.hitbox); got != tc.expected {
				t.Errorf("HazardOverlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLaneSupportAt(t *testing.T) {
	lane := testLane(LaneFloating, 1, 1e9)
	y := lane.Y() + 7
	lane.obstacles = append(lane.obstacles,
		Obstacle{Rect: core.NewRectF(100, y, 96, 33), Velocity: 120, Kind: KindSupport})

	tests := []struct {
		name string
		x, y float64
		ok   bool
	}{
		{"middle", 150, y + 10, true},
		{"left grow margin", 96, y + 10, true},
		{"right grow margin", 200, y + 10, true},
		{"past grow margin", 201, y + 10, false},
		{"bottom grow margin", 150, y + 36, true},
		{"below", 150, y + 37, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o, ok := lane.SupportAt(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("SupportAt() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && o.Velocity != 120 {
				t.Errorf("support velocity = %v, expected 120", o.Velocity)
			}
		})
	}
}
