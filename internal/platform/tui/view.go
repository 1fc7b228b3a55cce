package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

// Playfield layout constants
const (
	cellWidth  = 3 // Characters per grid column
	hudHeight  = 1 // Lines reserved above the playfield
	minHeadway = 2 // Lines kept above the player on short terminals
)

// vehicleColors gives each obstacle variant on a crossing lane its own colour.
var vehicleColors = [hopper.ObstacleVariants]core.Color{
	core.ColorBrightRed,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorBrightWhite,
}

// playfield maps world coordinates onto screen cells.
type playfield struct {
	left   int // Screen x of column 0
	width  int // Playfield width in characters
	top    int // First playfield line
	bottom int // Last playfield line
	tile   float64
	camera float64 // Row drawn on the bottom line, fractional while scrolling
}

func newPlayfield(dst *core.Screen, snap hopper.Snapshot) playfield {
	pf := playfield{
		width:  snap.Columns * cellWidth,
		top:    hudHeight,
		bottom: dst.Height() - 1,
		tile:   snap.Tile,
		camera: snap.CameraRow,
	}
	pf.left = max(0, (dst.Width()-pf.width)/2)

	// Keep the player visible when the terminal is shorter than the camera lead.
	if y := pf.lineOf(snap.Player.Row); y < pf.top+minHeadway {
		pf.camera += float64(pf.top + minHeadway - y)
	}
	return pf
}

// lineOf returns the screen line of a row.
func (pf playfield) lineOf(row int) int {
	return pf.bottom - core.RoundInt(float64(row)-pf.camera)
}

// xOf returns the screen x of a world x coordinate.
func (pf playfield) xOf(x float64) int {
	return pf.left + int(math.Floor(x/pf.tile*cellWidth))
}

// span fills the world range [x0, x1) on line y, clipped to the playfield.
func (pf playfield) span(dst *core.Screen, y int, x0, x1 float64, r rune, c core.Color) {
	from := max(pf.xOf(x0), pf.left)
	to := min(pf.left+int(math.Ceil(x1/pf.tile*cellWidth)), pf.left+pf.width)
	for x := from; x < to; x++ {
		dst.SetColored(x, y, r, c)
	}
}

// DrawSnapshot draws the lanes, the player, the HUD and any overlay card.
func DrawSnapshot(dst *core.Screen, snap hopper.Snapshot) {
	dst.Clear()
	if snap.Columns <= 0 || snap.Tile <= 0 {
		return
	}

	pf := newPlayfield(dst, snap)
	for _, lane := range snap.Lanes {
		y := pf.lineOf(lane.Row)
		if y < pf.top || y > pf.bottom {
			continue
		}
		drawLane(dst, pf, y, lane)
	}

	drawPlayer(dst, pf, snap.Player)
	drawHUD(dst, snap)

	switch {
	case !snap.Alive:
		drawCard(dst, core.ColorBrightRed,
			"GAME OVER",
			snap.Cause.String(),
			fmt.Sprintf("score %d  best %d", snap.Score, snap.Best),
			"r to restart  q to quit",
		)
	case snap.Paused:
		drawCard(dst, core.ColorBrightYellow, "PAUSED", "p to resume")
	}
}

func drawLane(dst *core.Screen, pf playfield, y int, lane hopper.LaneView) {
	switch lane.Type {
	case hopper.LaneSafe:
		dst.DrawRect(core.NewRect(pf.left, y, pf.width, 1), '.', core.ColorGreen)
		for _, col := range lane.Blocked {
			dst.SetColored(pf.left+col*cellWidth+1, y, '♣', core.ColorBrightGreen)
		}

	case hopper.LaneCrossing:
		dst.DrawRect(core.NewRect(pf.left, y, pf.width, 1), '─', core.ColorGray)
		for _, o := range lane.Obstacles {
			pf.span(dst, y, o.Rect.X, o.Rect.Right(), '█', vehicleColors[o.Variant%len(vehicleColors)])
		}

	case hopper.LaneFloating:
		dst.DrawRect(core.NewRect(pf.left, y, pf.width, 1), '~', core.ColorBlue)
		for _, o := range lane.Obstacles {
			pf.span(dst, y, o.Rect.X, o.Rect.Right(), '=', core.ColorBrown)
		}
	}
}

func drawPlayer(dst *core.Screen, pf playfield, p hopper.PlayerView) {
	y := pf.lineOf(p.Row)
	x := pf.left + core.RoundInt(p.X/pf.tile*cellWidth) + cellWidth/2
	if x < pf.left || x >= pf.left+pf.width {
		return
	}

	switch {
	case !p.Alive:
		dst.SetColored(x, y, 'X', core.ColorBrightRed)
	case p.HopArc > 0.5:
		dst.SetColored(x, y, 'o', core.ColorBrightYellow)
	default:
		dst.SetColored(x, y, '@', core.ColorBrightYellow)
	}
}

func drawHUD(dst *core.Screen, snap hopper.Snapshot) {
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), hudHeight), ' ', core.ColorDefault)
	dst.DrawTextCentered(0, fmt.Sprintf("HOPPER   score %d   best %d", snap.Score, snap.Best), core.ColorBrightWhite)
}

// drawCard draws a boxed message centred on the screen.
func drawCard(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
