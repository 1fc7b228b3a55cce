package hopper

import (
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
)

// World streams lanes around the player.
// Retained lanes live in a dense window: lanes[i] holds row base+i, and every
// row from base to highest is present.
type World struct {
	cfg  config.WorldConfig
	geom Geometry

	crossing config.TrafficConfig
	floating config.TrafficConfig

	rng        *rand.Rand
	lanes      []*Lane
	base       int
	highest    int
	speedScale float64
}

// NewWorld creates a world and resets it with seed.
func NewWorld(cfg config.HopperConfig, seed int64) *World {
	w := &World{
		cfg: cfg.World,
		geom: Geometry{
			Tile:       cfg.World.Tile,
			Columns:    cfg.World.Columns,
			CullMargin: cfg.World.CullMargin * cfg.World.Tile,
		},
		crossing: cfg.Crossing,
		floating: cfg.Floating,
	}
	w.Reset(seed)
	return w
}

// Reset drops every lane, reseeds the generator and lays down the safe start band.
func (w *World) Reset(seed int64) {
	for i := range w.lanes {
		w.lanes[i] = nil
	}
	w.lanes = w.lanes[:0]
	w.base = 0
	w.highest = -1
	w.speedScale = 1.0
	w.rng = rand.New(rand.NewSource(seed))

	for row := 0; row < w.cfg.StartBand; row++ {
		w.lanes = append(w.lanes, w.generate(row, true))
		w.highest = row
	}
}

// Geometry returns the pixel layout of the world.
func (w *World) Geometry() Geometry {
	return w.geom
}

// Highest returns the highest generated row.
func (w *World) Highest() int {
	return w.highest
}

// Base returns the lowest retained row.
func (w *World) Base() int {
	return w.base
}

// Retained returns the number of lanes held in memory.
func (w *World) Retained() int {
	return len(w.lanes)
}

// SetSpeedScale sets the factor applied to the speed of lanes generated from now on.
// Existing lanes keep their speed.
func (w *World) SetSpeedScale(scale float64) {
	if scale <= 0 {
		scale = 1.0
	}
	w.speedScale = scale
}

// EnsureWindowAround generates every row up to playerRow+AheadRows in order,
// then prunes rows too far behind the player.
func (w *World) EnsureWindowAround(playerRow int) {
	w.extendTo(playerRow + w.cfg.AheadRows)
	w.prune(playerRow - (w.cfg.BehindRows + w.cfg.RetainMargin))
}

// LaneAt returns the lane at row, generating it when needed.
// Rows above the generated range are generated in order up to row; rows below
// the retained window are restored as safe lanes. Negative rows map to row 0.
func (w *World) LaneAt(row int) *Lane {
	if row < 0 {
		row = 0
	}
	if row > w.highest {
		w.extendTo(row)
	}
	if row < w.base {
		w.backfill(row)
	}
	return w.lanes[row-w.base]
}

// Lookup returns the retained lane at row without generating anything.
func (w *World) Lookup(row int) (*Lane, bool) {
	if row < w.base || row > w.highest {
		return nil, false
	}
	return w.lanes[row-w.base], true
}

// Lanes returns the retained lanes in [from, to], ordered by row.
func (w *World) Lanes(from, to int) []*Lane {
	if from < w.base {
		from = w.base
	}
	if to > w.highest {
		to = w.highest
	}
	if from > to {
		return nil
	}
	out := make([]*Lane, to-from+1)
	copy(out, w.lanes[from-w.base:to-w.base+1])
	return out
}

// Advance streams lanes around playerRow and advances the traffic of every
// lane within the update range.
func (w *World) Advance(dt float64, playerRow int) {
	w.EnsureWindowAround(playerRow)
	for _, lane := range w.Lanes(playerRow-w.cfg.BehindRows, playerRow+w.cfg.AheadRows) {
		lane.Advance(dt)
	}
}

func (w *World) extendTo(target int) {
	for row := w.highest + 1; row <= target; row++ {
		w.lanes = append(w.lanes, w.generate(row, false))
		w.highest = row
	}
}

// prune drops every lane below minKeep (clamped at row 0).
func (w *World) prune(minKeep int) {
	if minKeep <= w.base {
		return
	}
	n := minKeep - w.base
	if n > len(w.lanes) {
		n = len(w.lanes)
	}
	for i := 0; i < n; i++ {
		w.lanes[i] = nil
	}
	w.lanes = w.lanes[n:]
	w.base += n
}

// backfill restores the pruned rows [row, base) as safe lanes.
func (w *World) backfill(row int) {
	restored := make([]*Lane, 0, w.base-row+len(w.lanes))
	for r := row; r < w.base; r++ {
		restored = append(restored, w.generate(r, true))
	}
	w.lanes = append(restored, w.lanes...)
	w.base = row
}

// generate draws a lane for row. Draw order: type, direction, seed, then
// speed and spawn delay for hazard lanes.
func (w *World) generate(row int, forceSafe bool) *Lane {
	laneType := LaneSafe
	if !forceSafe {
		laneType = w.chooseLaneType(row)
	}

	spec := LaneSpec{
		Row:       row,
		Type:      laneType,
		Direction: 1,
	}
	if w.rng.Intn(2) == 0 {
		spec.Direction = -1
	}
	spec.Seed = w.rng.Int63()

	var traffic *config.TrafficConfig
	switch laneType {
	case LaneSafe:
	case LaneCrossing:
		traffic = &w.crossing
	case LaneFloating:
		traffic = &w.floating
	}
	if traffic != nil {
		spec.Speed = uniform(w.rng, traffic.MinSpeed, traffic.MaxSpeed) * w.speedScale
		spec.SpawnDelay = uniform(w.rng, 0, traffic.InitialDelay)
	}

	return newLane(spec, w.geom, traffic, w.cfg.BlockedChance)
}

// chooseLaneType applies the generation policy for a new row. Early rows are
// mostly safe and never floating; later rows never extend a run of two hazards.
func (w *World) chooseLaneType(row int) LaneType {
	if row < w.cfg.EarlyRows {
		if w.rng.Float64() < w.cfg.EarlySafeBias {
			return LaneSafe
		}
		return LaneCrossing
	}

	if w.isHazard(row-1) && w.isHazard(row-2) {
		return LaneSafe
	}

	safe := w.cfg.SafeWeight
	crossing := w.cfg.CrossingWeight
	roll := w.rng.Float64() * (safe + crossing + w.cfg.FloatingWeight)
	switch {
	case roll < safe:
		return LaneSafe
	case roll < safe+crossing:
		return LaneCrossing
	default:
		return LaneFloating
	}
}

func (w *World) isHazard(row int) bool {
	lane, ok := w.Lookup(row)
	return ok && lane.Type().IsHazard()
}
