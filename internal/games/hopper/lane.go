package hopper

import (
	"encoding/binary"
	"math"
	"math/rand"

	"github.com/zeebo/xxh3"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// LaneType is the kind of a lane.
type LaneType uint8

const (
	LaneSafe     LaneType = iota // Grass, may hold trees
	LaneCrossing                 // Road, deadly traffic
	LaneFloating                 // River, deadly unless riding a platform
)

// String returns a human-readable name for the lane type.
func (t LaneType) String() string {
	switch t {
	case LaneSafe:
		return "safe"
	case LaneCrossing:
		return "crossing"
	case LaneFloating:
		return "floating"
	default:
		return "unknown"
	}
}

// IsHazard reports whether the lane type can kill the player.
func (t LaneType) IsHazard() bool {
	return t == LaneCrossing || t == LaneFloating
}

// LaneSpec is the immutable identity of a lane chosen by the world generator.
type LaneSpec struct {
	Row        int
	Type       LaneType
	Direction  int     // +1 moves right, -1 moves left
	Speed      float64 // Pixels per second, zero for safe lanes
	Seed       int64   // Drives trees and traffic of this lane only
	SpawnDelay float64 // Seconds until the first spawn
}

// Lane is one row of the world and owns its traffic.
type Lane struct {
	spec    LaneSpec
	geom    Geometry
	traffic *config.TrafficConfig // nil for safe lanes
	blocked []bool                // nil for hazard lanes

	timer     float64
	obstacles []Obstacle
	rng       *rand.Rand
}

// newLane builds a fully initialized lane. traffic must be non-nil for hazard lanes.
func newLane(spec LaneSpec, geom Geometry, traffic *config.TrafficConfig, blockedChance float64) *Lane {
	l := &Lane{
		spec:  spec,
		geom:  geom,
		timer: spec.SpawnDelay,
		rng:   rand.New(rand.NewSource(spec.Seed)),
	}

	switch spec.Type {
	case LaneSafe:
		l.blocked = BlockedColumns(spec.Seed, geom.Columns, blockedChance)
	case LaneCrossing, LaneFloating:
		l.traffic = traffic
		l.obstacles = make([]Obstacle, 0, 4)
	}
	return l
}

// BlockedColumns derives the impassable columns of a safe lane from its seed.
// Each column is blocked independently with probability chance; the result
// depends on the arguments only.
func BlockedColumns(seed int64, columns int, chance float64) []bool {
	blocked := make([]bool, columns)
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(seed))
	for col := range blocked {
		binary.LittleEndian.PutUint64(buf[8:], uint64(col))
		blocked[col] = unitFloat(xxh3.Hash(buf[:])) < chance
	}
	return blocked
}

// unitFloat maps a hash to [0, 1) using its top 53 bits.
func unitFloat(h uint64) float64 {
	return float64(h>>11) / (1 << 53)
}

// Row returns the lane's row index.
func (l *Lane) Row() int { return l.spec.Row }

// Type returns the lane type.
func (l *Lane) Type() LaneType { return l.spec.Type }

// Direction returns +1 or -1.
func (l *Lane) Direction() int { return l.spec.Direction }

// Speed returns the traffic speed magnitude.
func (l *Lane) Speed() float64 { return l.spec.Speed }

// Spec returns the lane's immutable identity.
func (l *Lane) Spec() LaneSpec { return l.spec }

// Y returns the top edge of the lane in world pixels.
func (l *Lane) Y() float64 { return l.geom.RowY(l.spec.Row) }

// SpawnTimer returns the seconds left until the next spawn.
func (l *Lane) SpawnTimer() float64 { return l.timer }

// IsBlocked reports whether col holds a tree. Only safe lanes have trees.
func (l *Lane) IsBlocked(col int) bool {
	if col < 0 || col >= len(l.blocked) {
		return false
	}
	return l.blocked[col]
}

// BlockedColumns returns the blocked columns in ascending order.
func (l *Lane) BlockedColumns() []int {
	var cols []int
	for col, b := range l.blocked {
		if b {
			cols = append(cols, col)
		}
	}
	return cols
}

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (l *Lane) Obstacles() []Obstacle {
	return l.obstacles
}

// Advance moves and culls obstacles, then runs the spawn rule.
func (l *Lane) Advance(dt float64) {
	switch l.spec.Type {
	case LaneSafe:
		return
	case LaneCrossing, LaneFloating:
		for i := range l.obstacles {
			l.obstacles[i].Advance(dt)
		}
		l.cull()
		l.spawn(dt)
	}
}

func (l *Lane) cull() {
	viewportW := l.geom.ViewportW()
	kept := l.obstacles[:0]
	for _, o := range l.obstacles {
		if !o.ShouldCull(viewportW, l.geom.CullMargin) {
			kept = append(kept, o)
		}
	}
	// Clear the tail so dropped obstacles do not linger in the backing array.
	for i := len(kept); i < len(l.obstacles); i++ {
		l.obstacles[i] = Obstacle{}
	}
	l.obstacles = kept
}

func (l *Lane) spawn(dt float64) {
	l.timer -= dt
	if l.timer > 0 {
		return
	}

	t := l.traffic
	l.timer = uniform(l.rng, t.MinGap, t.MaxGap)

	length := t.Lengths[l.rng.Intn(len(t.Lengths))]
	w := math.Floor(l.geom.Tile * length)
	h := math.Floor(l.geom.Tile * t.Height)
	y := l.Y() + math.Floor((l.geom.Tile-h)/2)

	offset := float64(t.MinEdgeOffset)
	if t.MaxEdgeOffset > t.MinEdgeOffset {
		offset += float64(l.rng.Intn(t.MaxEdgeOffset - t.MinEdgeOffset + 1))
	}

	x := l.geom.ViewportW() + offset
	if l.spec.Direction > 0 {
		x = -w - offset
	}

	kind := KindHazard
	if l.spec.Type == LaneFloating {
		kind = KindSupport
	}

	l.obstacles = append(l.obstacles, Obstacle{
		Rect:     core.NewRectF(x, y, w, h),
		Velocity: l.spec.Speed * float64(l.spec.Direction),
		Kind:     kind,
		Variant:  l.rng.Intn(ObstacleVariants),
	})
}

// HazardOverlaps reports whether hitbox overlaps any traffic on the lane.
func (l *Lane) HazardOverlaps(hitbox core.RectF) bool {
	for _, o := range l.obstacles {
		if o.Kind == KindHazard && hitbox.Intersects(o.HitRect()) {
			return true
		}
	}
	return false
}

// SupportAt returns the first platform whose support rectangle contains (x, y).
func (l *Lane) SupportAt(x, y float64) (Obstacle, bool) {
	for _, o := range l.obstacles {
		if o.Kind == KindSupport && o.SupportRect().Contains(x, y) {
			return o, true
		}
	}
	return Obstacle{}, false
}

// uniform draws from [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
