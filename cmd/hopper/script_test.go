package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected []core.Action
		wantErr  bool
	}{
		{"empty", "", []core.Action{}, false},
		{"hops", "udlr", []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}, false},
		{"upper case and spaces", "U L\n.", []core.Action{core.ActionUp, core.ActionLeft, core.ActionNone}, false},
		{"pause and restart", "px", []core.Action{core.ActionPause, core.ActionRestart}, false},
		{"unknown command", "uuq", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseScript(tc.script)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("parseScript(%q) = %v, expected %v", tc.script, got, tc.expected)
			}
		})
	}
}

func TestScriptFrames(t *testing.T) {
	frames := scriptFrames([]core.Action{core.ActionUp, core.ActionNone, core.ActionLeft}, 2, 0)
	if len(frames) != 9 {
		t.Fatalf("got %d frames, expected 9", len(frames))
	}

	for i, f := range frames {
		switch i {
		case 0:
			if !f.Has(core.ActionUp) {
				t.Errorf("frame 0 missing up")
			}
		case 6:
			if !f.Has(core.ActionLeft) {
				t.Errorf("frame 6 missing left")
			}
		default:
			if len(f.Actions) != 0 {
				t.Errorf("frame %d should be idle, got %v", i, f.Actions)
			}
		}
	}

	if got := len(scriptFrames(nil, 8, 30)); got != 30 {
		t.Errorf("minimum ticks ignored: %d frames", got)
	}
}

func TestRunScriptIsDeterministic(t *testing.T) {
	actions, err := parseScript("uuuu.l.uuu.r.uuuu")
	if err != nil {
		t.Fatal(err)
	}

	run := func() hopper.Snapshot {
		game := hopper.NewWithConfig(config.DefaultHopperConfig())
		runtime := core.DefaultConfig()
		runtime.Seed = 42
		game.Reset(runtime)
		return runScript(game, scriptFrames(actions, 8, 300))
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed and script gave different results")
	}

	var out bytes.Buffer
	printResult(&out, a)
	if !strings.Contains(out.String(), "seed    42") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestPrintLanes(t *testing.T) {
	world := hopper.NewWorld(config.DefaultHopperConfig(), 3)

	var out bytes.Buffer
	printLanes(&out, world, 12, 3)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	// Seed line, blank line, header, then one line per row.
	if len(lines) != 15 {
		t.Fatalf("got %d lines, expected 15:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[3], "11") {
		t.Errorf("first row line should be row 11: %q", lines[3])
	}
	last := lines[len(lines)-1]
	if !strings.Contains(last, "safe") {
		t.Errorf("row 0 should be safe: %q", last)
	}
	strip := last[strings.LastIndex(last, " ")+1:]
	if len(strip) != 15 || strings.Trim(strip, ".T") != "" {
		t.Errorf("unexpected strip %q", strip)
	}
}
