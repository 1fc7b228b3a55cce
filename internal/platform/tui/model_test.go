package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
	"github.com/vovakirdan/tui-hopper/internal/games/hopper"
)

func newTestModel(t *testing.T, logs *bytes.Buffer) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	m := NewModel(hopper.NewWithConfig(config.DefaultHopperConfig()), cfg, log.New(logs))
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelPauseKey(t *testing.T) {
	var logs bytes.Buffer
	m := newTestModel(t, &logs)

	m, _ = update(t, m, runeKey('p'))
	m, cmd := update(t, m, TickMsg{})

	if !m.State().Paused {
		t.Error("pause key did not pause the game")
	}
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
	if m.inputFrame.Has(core.ActionPause) {
		t.Error("input frame not cleared after the tick")
	}
}

func TestModelLogsRunEnd(t *testing.T) {
	var logs bytes.Buffer
	m := newTestModel(t, &logs)

	// Drop the player into open water before any platform has spawned.
	world := m.game.Sim().World()
	row := -1
	for r := 10; r < 200 && row < 0; r++ {
		if world.LaneAt(r).Type() == hopper.LaneFloating {
			row = r
		}
	}
	if row < 0 {
		t.Skip("no floating lane generated")
	}
	m.game.Sim().Player().Row = row

	m, _ = update(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("player should drown in open water")
	}

	if !strings.Contains(logs.String(), "run ended") {
		t.Errorf("run end not logged:\n%s", logs.String())
	}

	m, _ = update(t, m, runeKey('r'))
	m, _ = update(t, m, TickMsg{})
	if m.State().GameOver {
		t.Error("restart key did not start a new run")
	}
	if !strings.Contains(logs.String(), "run restarted") {
		t.Errorf("restart not logged:\n%s", logs.String())
	}
}

func TestModelQuit(t *testing.T) {
	var logs bytes.Buffer
	m := newTestModel(t, &logs)

	m, cmd := update(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelViewFooter(t *testing.T) {
	var logs bytes.Buffer
	m := newTestModel(t, &logs)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	out := m.View()
	if !strings.Contains(out, "restart") {
		t.Error("help footer missing")
	}
	if !strings.Contains(out, "HOPPER") {
		t.Error("HUD missing")
	}

	m, _ = update(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if !strings.Contains(m.View(), "hop right") {
		t.Error("full help missing bindings")
	}
}
