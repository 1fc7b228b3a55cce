package hopper

import "github.com/vovakirdan/tui-hopper/internal/core"

// Camera follows the player for presentation. The simulation never reads it.
// Row is the lowest visible row, as a float so renderers can scroll smoothly.
type Camera struct {
	Row  float64
	lead int
	rate float64
}

func newCamera(lead int, rate float64) Camera {
	return Camera{lead: lead, rate: rate}
}

// Target returns the camera row that frames playerRow.
func (c Camera) Target(playerRow int) float64 {
	return float64(playerRow - c.lead)
}

// Snap jumps straight to the target.
func (c *Camera) Snap(playerRow int) {
	c.Row = c.Target(playerRow)
}

// Update moves the camera a dt-proportional step towards the target.
func (c *Camera) Update(dt float64, playerRow int) {
	c.Row += (c.Target(playerRow) - c.Row) * core.ClampF(dt*c.rate, 0, 1)
}
