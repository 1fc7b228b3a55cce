// Package hopper implements an endless lane-crossing game.
// The player hops across an unbounded stack of lanes: safe lanes with
// impassable trees, crossing lanes with deadly traffic, and floating lanes
// that can only be crossed by riding drifting platforms.
package hopper

import "github.com/vovakirdan/tui-hopper/internal/core"

// Hitbox geometry in world pixels. All collision and support tests read these.
const (
	// PlayerInset shrinks the player tile to its visual body.
	PlayerInset = 8.0
	// PlayerHitboxInset shrinks the visual body to the traffic hitbox.
	PlayerHitboxInset = 10.0
	// SupportProbeLift is how far above the body's bottom edge the support point sits.
	SupportProbeLift = 4.0
	// HazardShrinkX and HazardShrinkY shrink traffic per side for forgiving hits.
	HazardShrinkX = 3.0
	HazardShrinkY = 4.0
	// SupportGrowX and SupportGrowY grow platforms per side so edges still carry.
	SupportGrowX = 5.0
	SupportGrowY = 4.0
)

// Geometry is the pixel layout shared by lanes, the world and the player.
type Geometry struct {
	Tile       float64 // Pixels per cell
	Columns    int     // Playable columns
	CullMargin float64 // Pixels past the edge before an obstacle is dropped
}

// ViewportW returns the playfield width in pixels.
func (g Geometry) ViewportW() float64 {
	return g.Tile * float64(g.Columns)
}

// RowY returns the top edge of a row. Rows grow upward, so Y decreases.
func (g Geometry) RowY(row int) float64 {
	return -float64(row) * g.Tile
}

// ColumnX returns the left edge of a column.
func (g Geometry) ColumnX(col int) float64 {
	return float64(col) * g.Tile
}

// ColumnAt returns the grid column nearest to x (not clamped).
func (g Geometry) ColumnAt(x float64) int {
	return core.RoundInt(x / g.Tile)
}

// ClampColumn restricts col to the playable range.
func (g Geometry) ClampColumn(col int) int {
	return core.Clamp(col, 0, g.Columns-1)
}
