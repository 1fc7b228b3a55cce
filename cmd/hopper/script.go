package main

import (
	"fmt"
	"unicode"

	"github.com/vovakirdan/tui-hopper/internal/core"
)

// parseScript turns a move script into one action per command.
//
//	u d l r  hop up, down, left, right
//	p        toggle pause
//	x        restart
//	.        wait
//
// Whitespace is ignored and commands are case-insensitive.
func parseScript(script string) ([]core.Action, error) {
	actions := make([]core.Action, 0, len(script))
	for i, c := range script {
		if unicode.IsSpace(c) {
			continue
		}
		switch unicode.ToLower(c) {
		case 'u':
			actions = append(actions, core.ActionUp)
		case 'd':
			actions = append(actions, core.ActionDown)
		case 'l':
			actions = append(actions, core.ActionLeft)
		case 'r':
			actions = append(actions, core.ActionRight)
		case 'p':
			actions = append(actions, core.ActionPause)
		case 'x':
			actions = append(actions, core.ActionRestart)
		case '.':
			actions = append(actions, core.ActionNone)
		default:
			return nil, fmt.Errorf("script: unknown command %q at offset %d", c, i)
		}
	}
	return actions, nil
}

// scriptFrames spreads actions over ticks, leaving gap idle ticks after each
// command so hops are not swallowed by the cooldown. The result holds at least
// minTicks frames.
func scriptFrames(actions []core.Action, gap, minTicks int) []core.InputFrame {
	gap = max(gap, 0)
	total := max(len(actions)*(gap+1), minTicks)

	frames := make([]core.InputFrame, total)
	for i := range frames {
		frames[i] = core.NewInputFrame()
	}
	for i, a := range actions {
		if a != core.ActionNone {
			frames[i*(gap+1)].Set(a)
		}
	}
	return frames
}
