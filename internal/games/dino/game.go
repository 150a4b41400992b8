// Package dino adapts the run controller to the arcade host: it builds the
// world and the player, maps platform input onto them and draws the
// playfield with a one-line HUD.
package dino

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/registry"
	"github.com/vovakirdan/tui-dino/internal/runner"
	"github.com/vovakirdan/tui-dino/internal/scene/world"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Game implements registry.Game for the runner.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DinoConfig
	world   *world.World
	player  *Player
	ctrl    *runner.Controller
	paused  bool
}

var (
	mu               sync.RWMutex
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config file.
func SetDifficultyPreset(preset string) {
	mu.Lock()
	defer mu.Unlock()
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger handed to every new run controller.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

func settings() (string, config.DifficultyPreset, *log.Logger) {
	mu.RLock()
	defer mu.RUnlock()
	return configPath, difficultyPreset, logger
}

// New creates a new game. Call Reset before stepping it.
func New() *Game {
	return &Game{}
}

func (g *Game) ID() string    { return "dino" }
func (g *Game) Title() string { return "Dino Runner" }

// Reset loads the config and builds a fresh world waiting for the first
// jump.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	path, preset, l := settings()

	cfg, err := config.LoadDino(path)
	if err != nil {
		l.Warn("falling back to default config", "error", err)
		cfg = config.DefaultDinoConfig()
	}
	config.ApplyDinoPreset(&cfg, preset)

	g.runtime = runtime
	g.cfg = cfg
	g.paused = false

	g.world = world.New(cfg.Viewport.Width, cfg.Viewport.Height, Assets())
	g.player = NewPlayer(g.world, 0, cfg.Player)
	g.ctrl = runner.New(runner.Deps{
		Scene:     g.world,
		Physics:   g.world,
		Scheduler: g.world,
		Input:     g.world,
		Player:    g.player,
	}, cfg, runner.WithSeed(runtime.Seed), runner.WithLogger(l))

	// The ground strip is created by the controller; keep the dino in front.
	g.world.BringToTop(g.player.Entity)
}

// Resize adapts the playfield to a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// Step advances the run by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	state := g.ctrl.State()

	if in.Has(core.ActionPause) && state != runner.StateGameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	v := g.world.Viewport(g.playfield(g.runtime.ScreenW, g.runtime.ScreenH))
	for _, p := range in.Presses {
		g.world.PointerDown(v.ToWorld(p.X, p.Y))
	}
	if in.Has(core.ActionRestart) {
		g.pressRestart()
	}

	if state != runner.StateGameOver {
		if in.Has(core.ActionJump) {
			g.player.Jump()
		}
		g.player.Duck(in.IsHeld(core.ActionDuck))
	}

	g.world.Tick(g.runtime.TickDelta(), g.ctrl.Update)

	return core.StepResult{State: g.State()}
}

// pressRestart clicks the middle of the restart button.
func (g *Game) pressRestart() bool {
	b := g.ctrl.RestartButton().Bounds()
	return g.world.PointerDown(core.Vec{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2})
}

func (g *Game) playfield(w, h int) core.Rect {
	return core.NewRect(0, hudRows, w, core.Max(h-hudRows, 0))
}

// Render draws the world below the HUD line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	area := g.playfield(dst.Width(), dst.Height())
	g.world.Draw(dst, area)

	s := g.ctrl.Session()
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %05d ", s.Score))
	spd := fmt.Sprintf(" Spd: %.1f ", s.GameSpeed)
	if s.State == runner.StateGameOver {
		spd = " Spd: --- "
	}
	dst.DrawText(dst.Width()-len(spd)-2, 0, spd)

	switch s.State {
	case runner.StateWaitingToStart:
		dst.DrawTextCentered(area.Y+area.H/3, "Press SPACE to jump and start running")
	case runner.StateGameOver:
		dst.DrawTextCentered(area.Bottom()-1, fmt.Sprintf("Score: %d  |  Press R or click the button to restart", s.Score))
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}

// State reports the run for the host.
func (g *Game) State() core.GameState {
	s := g.ctrl.Session()
	return core.GameState{
		Score:    s.Score,
		GameOver: s.State == runner.StateGameOver,
		Paused:   g.paused,
		Phase:    s.State.String(),
	}
}

// Controller exposes the run controller of the current world.
func (g *Game) Controller() *runner.Controller { return g.ctrl }

// World exposes the engine of the current run.
func (g *Game) World() *world.World { return g.world }

// Player exposes the dinosaur of the current run.
func (g *Game) Player() *Player { return g.player }

func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}
