package hopper

import "github.com/vovakirdan/tui-hopper/internal/core"

// ObstacleKind distinguishes deadly traffic from rideable platforms.
type ObstacleKind uint8

const (
	KindHazard  ObstacleKind = iota // Vehicles on crossing lanes
	KindSupport                     // Platforms on floating lanes
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindHazard:
		return "hazard"
	case KindSupport:
		return "support"
	default:
		return "unknown"
	}
}

// ObstacleVariants is the number of presentational variants an obstacle can take.
const ObstacleVariants = 6

// Obstacle is a moving vehicle or platform.
// Its velocity sign never changes; obstacles are culled, never reversed.
type Obstacle struct {
	Rect     core.RectF   // World-space bounds
	Velocity float64      // Pixels per second, positive moves right
	Kind     ObstacleKind // Hazard or support
	Variant  int          // Palette index for renderers, in [0, ObstacleVariants)
}

// Advance translates the obstacle by velocity*dt.
func (o *Obstacle) Advance(dt float64) {
	o.Rect.X += o.Velocity * dt
}

// ShouldCull reports whether the obstacle has left the viewport by more than margin
// on the side it is travelling towards.
func (o Obstacle) ShouldCull(viewportW, margin float64) bool {
	if o.Velocity > 0 {
		return o.Rect.X > viewportW+margin
	}
	return o.Rect.Right() < -margin
}

// HitRect returns the shrunken rectangle used for traffic collisions.
func (o Obstacle) HitRect() core.RectF {
	return o.Rect.Inset(HazardShrinkX, HazardShrinkY)
}

// SupportRect returns the grown rectangle used for support tests.
func (o Obstacle) SupportRect() core.RectF {
	return o.Rect.Inset(-SupportGrowX, -SupportGrowY)
}
