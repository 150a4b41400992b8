package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dino/internal/core"
)

type recordingGame struct {
	resets  int
	steps   int
	jumps   int
	ducks   int // steps with duck triggered or held
	presses []core.Pointer
	resized [2]int
}

func (g *recordingGame) ID() string { return "rec" }
func (g *recordingGame) Title() string { return "Recorder" }
func (g *recordingGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "frame") }
func (g *recordingGame) State() core.GameState { return core.GameState{Phase: "rec"} }
func (g *recordingGame) Resize(width, height int) { g.resized = [2]int{width, height} }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	if in.Has(core.ActionJump) {
		g.jumps++
	}
	if in.IsHeld(core.ActionDuck) {
		g.ducks++
	}
	g.presses = append(g.presses, in.Presses...)
	return core.StepResult{State: g.State()}
}

func newTestModel() (Model, *recordingGame) {
	g := &recordingGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	return m, g
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{runes("w"), core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDuck},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("x"), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestInitResetsGameAndKeepsHelpRow(t *testing.T) {
	m, g := newTestModel()

	if g.resets != 1 {
		t.Errorf("Init reset the game %d times", g.resets)
	}
	if m.screen.Height() != 23 || m.screen.Width() != 80 {
		t.Errorf("screen = %dx%d, expected 80x23", m.screen.Width(), m.screen.Height())
	}
}

func TestKeyDeliveredOnNextTickOnly(t *testing.T) {
	m, g := newTestModel()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := send(m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = send(m, TickMsg(time.Now()))

	if g.steps != 2 || g.jumps != 1 {
		t.Errorf("steps=%d jumps=%d, expected 2 steps with one jump", g.steps, g.jumps)
	}
}

func TestDuckIsHeldForAWindow(t *testing.T) {
	m, g := newTestModel()

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	for i := 0; i < 30; i++ {
		m, _ = send(m, TickMsg(time.Now()))
	}

	if want := ticksFor(duckHold, 60); g.ducks != want {
		t.Errorf("duck held for %d ticks, expected %d", g.ducks, want)
	}
}

func TestMouseClickBecomesPress(t *testing.T) {
	m, g := newTestModel()

	m, _ = send(m, tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = send(m, tea.MouseMsg{X: 11, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(m, TickMsg(time.Now()))

	if len(g.presses) != 1 || g.presses[0] != (core.Pointer{X: 10, Y: 5}) {
		t.Errorf("presses = %v, expected one at (10, 5)", g.presses)
	}
}

func TestResizeFollowsTerminal(t *testing.T) {
	m, g := newTestModel()

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resized != [2]int{100, 29} {
		t.Errorf("game resized to %v", g.resized)
	}
	if g.resets != 1 {
		t.Error("a resizable game must not be reset on resize")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel()

	m, cmd := send(m, runes("q"))
	if cmd == nil {
		t.Fatal("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewShowsGameAndHelp(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()
	if !strings.HasPrefix(view, "frame") {
		t.Errorf("view should start with the game frame, got %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "jump") {
		t.Error("help line should list the jump key")
	}
	if lines := strings.Count(view, "\n"); lines != 23 {
		t.Errorf("view has %d line breaks, expected 23", lines)
	}
}
