package hopper

import (
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

func testPlayer() *Player {
	p := newPlayer(testGeom, testConfig().Player)
	p.reset(7, 2)
	return p
}

func TestPlayerGeometry(t *testing.T) {
	p := testPlayer()

	if got := p.TileRect(); got != core.NewRectF(336, -96, 48, 48) {
		t.Errorf("TileRect() = %+v", got)
	}
	if got := p.Rect(); got != core.NewRectF(344, -88, 32, 32) {
		t.Errorf("Rect() = %+v", got)
	}
	if got := p.Hitbox(); got != core.NewRectF(354, -78, 12, 12) {
		t.Errorf("Hitbox() = %+v", got)
	}
	x, y := p.SupportPoint()
	if x != 360 || y != -60 {
		t.Errorf("SupportPoint() = (%v, %v), expected (360, -60)", x, y)
	}
	if p.Column() != 7 {
		t.Errorf("Column() = %d, expected 7", p.Column())
	}
}

func TestPlayerResetKeepsBest(t *testing.T) {
	p := testPlayer()
	p.Score = 12
	p.Best = 30
	p.kill(CauseDrowned)

	p.reset(3, 2)

	if !p.Alive || p.Score != 0 || p.Cause != CauseNone {
		t.Errorf("reset left alive=%v score=%d cause=%v", p.Alive, p.Score, p.Cause)
	}
	if p.Best != 30 {
		t.Errorf("Best = %d, expected 30", p.Best)
	}
	if p.X != 144 || p.Row != 2 {
		t.Errorf("position = (%v, %d), expected (144, 2)", p.X, p.Row)
	}
}

func TestPlayerCooldown(t *testing.T) {
	p := testPlayer()

	if !p.CanHop(0) {
		t.Fatal("fresh player should be able to hop immediately")
	}
	p.hopTo(7, 3, 0.5)

	tests := []struct {
		now      float64
		expected bool
	}{
		{0.5, false},
		{0.55, false},
		{0.62, true},
		{2.0, true},
	}
	for _, tc := range tests {
		if got := p.CanHop(tc.now); got != tc.expected {
			t.Errorf("CanHop(%v) = %v, expected %v", tc.now, got, tc.expected)
		}
	}

	p.kill(CauseHit)
	if p.CanHop(10) {
		t.Error("dead player should not hop")
	}
}

func TestPlayerHopToClamps(t *testing.T) {
	p := testPlayer()

	p.hopTo(-3, -1, 0)
	if p.Column() != 0 || p.Row != 0 {
		t.Errorf("hopTo(-3, -1) landed on (%d, %d)", p.Column(), p.Row)
	}
	p.hopTo(40, 5, 1)
	if p.Column() != 14 || p.Row != 5 {
		t.Errorf("hopTo(40, 5) landed on (%d, %d)", p.Column(), p.Row)
	}
}

func TestPlayerHopArc(t *testing.T) {
	p := testPlayer()
	if p.HopArc() != 0 || p.State() != HopIdle {
		t.Fatal("idle player should have no arc")
	}

	p.hopTo(7, 3, 0)
	if p.State() != HopAirborne {
		t.Fatal("hop should start the arc")
	}

	p.Update(0.0625) // Half of 1/8 s.
	if p.HopProgress() != 0.5 {
		t.Errorf("HopProgress() = %v, expected 0.5", p.HopProgress())
	}
	if p.HopArc() != 1 {
		t.Errorf("HopArc() = %v at the apex, expected 1", p.HopArc())
	}

	p.Update(0.1)
	if p.State() != HopIdle || p.HopArc() != 0 {
		t.Errorf("hop should have landed: state=%v arc=%v", p.State(), p.HopArc())
	}
}

func TestPlayerSwept(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		drift float64
		dt    float64
		alive bool
	}{
		{"still on screen", 600, 100, 0.5, true},
		{"body inside right edge", 700, 40, 0.25, true},
		{"carried off the right", 700, 100, 0.2, false},
		{"body touching left edge", -40, 0, 0.1, true},
		{"carried off the left", -40, -100, 0.1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testPlayer()
			p.X = tc.x
			p.Drift = tc.drift
			p.Update(tc.dt)

			if p.Alive != tc.alive {
				t.Fatalf("Alive = %v, expected %v (x=%v)", p.Alive, tc.alive, p.X)
			}
			if !tc.alive && p.Cause != CauseSwept {
				t.Errorf("Cause = %v, expected %v", p.Cause, CauseSwept)
			}
		})
	}
}

func TestPlayerFirstCauseWins(t *testing.T) {
	p := testPlayer()
	p.kill(CauseDrowned)
	p.kill(CauseHit)
	if p.Cause != CauseDrowned {
		t.Errorf("Cause = %v, expected %v", p.Cause, CauseDrowned)
	}
}

func TestDeathCauseString(t *testing.T) {
	tests := map[DeathCause]string{
		CauseNone:    "none",
		CauseHit:     "hit by traffic",
		CauseDrowned: "drowned",
		CauseSwept:   "swept away",
	}
	for c, expected := range tests {
		if c.String() != expected {
			t.Errorf("%d.String() = %q, expected %q", c, c.String(), expected)
		}
	}
}
