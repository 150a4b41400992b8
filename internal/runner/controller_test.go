package runner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/core"
	"github.com/vovakirdan/tui-dino/internal/scene/world"
)

const frame = time.Second / 60

// testPlayer is a bare body that records what the controller asks of it.
type testPlayer struct {
	*world.Entity
	runs   int
	deaths int
}

func (p *testPlayer) PlayRunAnimation() { p.runs++ }
func (p *testPlayer) Jump()             {}
func (p *testPlayer) Duck(bool)         {}
func (p *testPlayer) Die()              { p.deaths++ }

type harness struct {
	t      *testing.T
	cfg    config.DinoConfig
	world  *world.World
	player *testPlayer
	ctrl   *Controller
}

func newHarness(t *testing.T, mutate func(*config.DinoConfig), opts ...Option) *harness {
	t.Helper()

	cfg := config.DefaultDinoConfig()
	cfg.Difficulty.Enabled = false
	if mutate != nil {
		mutate(&cfg)
	}

	w := world.New(cfg.Viewport.Width, cfg.Viewport.Height, world.Catalog{
		"dino": {Width: 88, Height: 94},
	})
	p := &testPlayer{Entity: w.NewSprite(0, cfg.Viewport.Height, "dino")}
	p.SetOrigin(0, 1)

	opts = append([]Option{WithSeed(1)}, opts...)
	c := New(Deps{Scene: w, Physics: w, Scheduler: w, Input: w, Player: p}, cfg, opts...)

	return &harness{t: t, cfg: cfg, world: w, player: p, ctrl: c}
}

func (h *harness) tick() {
	h.world.Tick(frame, h.ctrl.Update)
}

// trigger jumps the player into the start trigger and lands it again.
func (h *harness) trigger() {
	h.t.Helper()
	x := h.player.Position().X
	h.player.SetPosition(x, h.cfg.Viewport.Height-h.cfg.Rollout.TriggerOffset-10)
	h.tick()
	h.player.SetPosition(h.player.Position().X, h.cfg.Viewport.Height)

	if h.ctrl.State() != StateRollingOut {
		h.t.Fatalf("state = %v after touching the trigger, expected rolling-out", h.ctrl.State())
	}
}

func (h *harness) runToRunning() {
	h.t.Helper()
	h.trigger()
	for i := 0; i < 100 && h.ctrl.State() != StateRunning; i++ {
		h.tick()
	}
	if h.ctrl.State() != StateRunning {
		h.t.Fatalf("rollout never finished, state = %v", h.ctrl.State())
	}
}

func (h *harness) pressRestart() bool {
	b := h.ctrl.RestartButton().Bounds()
	return h.world.PointerDown(core.Vec{X: (b.Left + b.Right) / 2, Y: (b.Top + b.Bottom) / 2})
}

func TestNewStartsWaiting(t *testing.T) {
	h := newHarness(t, nil)
	s := h.ctrl.Session()

	if s.State != StateWaitingToStart {
		t.Errorf("initial state = %v", s.State)
	}
	if s.GameSpeed != h.cfg.Speed.Initial {
		t.Errorf("initial GameSpeed = %v", s.GameSpeed)
	}
	if h.ctrl.Ground().Width() != h.cfg.Rollout.GroundWidth {
		t.Errorf("initial ground width = %v", h.ctrl.Ground().Width())
	}
	for _, cloud := range h.ctrl.Clouds().Children() {
		if cloud.Alpha() != 0 {
			t.Error("clouds should be hidden until the rollout completes")
		}
	}
	if h.ctrl.GameOverOverlay().Alpha() != 0 {
		t.Error("game over overlay should start hidden")
	}
}

func TestUpdateIsNoOpWhileWaiting(t *testing.T) {
	h := newHarness(t, nil)

	for _, d := range []time.Duration{0, frame, time.Second, 10 * time.Second} {
		h.ctrl.Update(d)
	}

	s := h.ctrl.Session()
	if s.Score != 0 || s.SpawnTime != 0 || s.ScoreTime != 0 {
		t.Errorf("session changed while waiting: %+v", s)
	}
	if h.ctrl.Obstacles().Len() != 0 {
		t.Errorf("obstacles spawned while waiting: %d", h.ctrl.Obstacles().Len())
	}
	if h.ctrl.Ground().TilePositionX() != 0 {
		t.Errorf("ground scrolled while waiting: %v", h.ctrl.Ground().TilePositionX())
	}
}

func TestUpdateIsNoOpAfterGameOver(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()
	h.ctrl.spawn(1, 600)
	h.ctrl.spawn(7, 100)
	h.ctrl.onObstacleHit()

	before := h.ctrl.Session()
	positions := map[string]core.Vec{}
	for _, o := range h.ctrl.Obstacles().Children() {
		positions[o.Asset()] = o.Position()
	}
	tile := h.ctrl.Ground().TilePositionX()

	for i := 0; i < 120; i++ {
		h.tick()
	}
	h.ctrl.Update(time.Hour)

	if after := h.ctrl.Session(); after != before {
		t.Errorf("session changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
	for _, o := range h.ctrl.Obstacles().Children() {
		if o.Position() != positions[o.Asset()] {
			t.Errorf("%s moved after game over", o.Asset())
		}
	}
	if h.ctrl.Ground().TilePositionX() != tile {
		t.Error("ground scrolled after game over")
	}
}

func TestStartTriggerFiresOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := newHarness(t, nil, WithLogger(logger))

	h.trigger()

	// Land on the parked trigger so the physics overlap is delivered again.
	parked := h.ctrl.StartTrigger()
	h.player.SetPosition(parkedPosition-10, parkedPosition)
	if !h.player.Bounds().Intersects(parked.Bounds()) {
		t.Fatal("player should overlap the parked trigger")
	}
	h.tick()

	if h.ctrl.State() != StateRollingOut {
		t.Fatalf("state = %v, expected rolling-out", h.ctrl.State())
	}
	if n := h.world.PendingTimers(); n != 1 {
		t.Errorf("%d rollout timers scheduled, expected exactly 1", n)
	}
	if n := strings.Count(buf.String(), "to=rolling-out"); n != 1 {
		t.Errorf("rolling-out entered %d times, expected 1:\n%s", n, buf.String())
	}
	if p := parked.Position(); p.X != parkedPosition || p.Y != parkedPosition {
		t.Errorf("trigger should stay parked off-screen, at %v", p)
	}
}

func TestStartTriggerNeedsOverlap(t *testing.T) {
	h := newHarness(t, nil)

	// Standing on the ground stays below the trigger.
	for i := 0; i < 30; i++ {
		h.tick()
	}
	if h.ctrl.State() != StateWaitingToStart {
		t.Fatalf("run started without touching the trigger: %v", h.ctrl.State())
	}

	h.trigger()
}

func TestRolloutWidensGroundToViewport(t *testing.T) {
	h := newHarness(t, nil)
	h.trigger()

	full := h.cfg.Viewport.Width
	prev := h.ctrl.Ground().Width()
	ticks := 0
	for h.ctrl.State() == StateRollingOut {
		h.tick()
		ticks++
		if ticks > 100 {
			t.Fatal("rollout did not finish")
		}

		width := h.ctrl.Ground().Width()
		if width > full {
			t.Fatalf("ground width %v exceeds viewport %v", width, full)
		}
		if h.ctrl.State() == StateRollingOut {
			if width != prev+h.cfg.Rollout.GroundStep {
				t.Fatalf("tick %d grew ground from %v to %v", ticks, prev, width)
			}
			if h.player.Velocity().X != h.cfg.Rollout.PlayerSpeed {
				t.Errorf("player velocity during rollout = %v", h.player.Velocity().X)
			}
		}
		prev = width
	}

	if h.ctrl.State() != StateRunning {
		t.Fatalf("state after rollout = %v", h.ctrl.State())
	}
	// 88 + 34*26 = 972 < 1000, the 27th tick completes.
	if ticks != 27 {
		t.Errorf("rollout took %d ticks, expected 27", ticks)
	}
	if h.ctrl.Ground().Width() != full {
		t.Errorf("ground width = %v, expected %v", h.ctrl.Ground().Width(), full)
	}
	if h.ctrl.Rolling() || h.world.PendingTimers() != 0 {
		t.Error("rollout ticker should be cancelled once the ground is full")
	}
	if h.player.Velocity().X != 0 {
		t.Errorf("player should stop after rollout, velocity %v", h.player.Velocity().X)
	}
	for _, cloud := range h.ctrl.Clouds().Children() {
		if cloud.Alpha() != 1 {
			t.Error("clouds should be revealed after rollout")
		}
	}
}

func TestSpawnKindFollowsDraw(t *testing.T) {
	for _, birds := range []int{1, 3} {
		h := newHarness(t, func(c *config.DinoConfig) {
			c.Obstacles.GroundCount = 6
			c.Obstacles.FlyingCount = birds
		})

		for draw := 1; draw <= 6+birds; draw++ {
			o := h.ctrl.spawn(draw, 200)

			if draw <= 6 {
				if o.Kind != KindGround {
					t.Errorf("birds=%d draw=%d: kind %v, expected ground", birds, draw, o.Kind)
				}
				if o.Asset != ObstacleAsset(draw) || o.X != 200 || o.Offset != 0 {
					t.Errorf("birds=%d draw=%d: ground obstacle %+v", birds, draw, o)
				}
				continue
			}

			if o.Kind != KindFlying {
				t.Errorf("birds=%d draw=%d: kind %v, expected flying", birds, draw, o.Kind)
			}
			if o.Asset != AssetBird || o.X != h.cfg.Viewport.Width+200 {
				t.Errorf("birds=%d draw=%d: flying obstacle %+v", birds, draw, o)
			}
			if o.Offset != 20 && o.Offset != 70 {
				t.Errorf("birds=%d draw=%d: offset %v is not a flight band", birds, draw, o.Offset)
			}
		}
	}
}

func TestSpawnedSpritesAreAnchoredAndImmovable(t *testing.T) {
	h := newHarness(t, nil)
	h.ctrl.spawn(2, 150)
	h.ctrl.spawn(7, 150)

	children := h.ctrl.Obstacles().Children()
	if len(children) != 2 {
		t.Fatalf("%d obstacles, expected 2", len(children))
	}

	ground := children[0].(*world.Entity)
	if !ground.Immovable() || ground.Bounds().Bottom != h.cfg.Viewport.Height {
		t.Errorf("ground obstacle should be immovable and stand on the ground: %+v", ground.Bounds())
	}

	bird := children[1].(*world.Entity)
	if !bird.Immovable() || bird.Animation() != AnimBirdFly {
		t.Errorf("bird should be immovable and flying, animation %q", bird.Animation())
	}
	if gap := h.cfg.Viewport.Height - bird.Bounds().Bottom; gap != 20 && gap != 70 {
		t.Errorf("bird flies %v above ground", gap)
	}
}

func TestGroundAnchorRightEdge(t *testing.T) {
	h := newHarness(t, func(c *config.DinoConfig) {
		c.Obstacles.GroundAnchor = config.AnchorRightEdge
	})

	o := h.ctrl.spawn(3, 180)
	if o.X != h.cfg.Viewport.Width+180 {
		t.Errorf("right-edge ground obstacle at %v", o.X)
	}
}

func TestSpawnDistanceStaysInRange(t *testing.T) {
	h := newHarness(t, nil)
	w := h.cfg.Viewport.Width

	for i := 0; i < 500; i++ {
		o := h.ctrl.spawnObstacle()
		x := o.X
		if o.Kind == KindFlying {
			x -= w
		}
		if x < 150 || x > 300 {
			t.Fatalf("spawn %d: distance %v outside [150, 300]", i, x)
		}
	}
}

func TestSpawnTimerResetsOnTrigger(t *testing.T) {
	h := newHarness(t, func(c *config.DinoConfig) {
		c.Timing.SpawnInterval = 1500 * time.Millisecond
		c.Timing.ScoreInterval = 100 * time.Millisecond
	})
	h.runToRunning()
	h.ctrl.Obstacles().Clear()

	already := h.ctrl.Session().SpawnTime
	h.ctrl.Update(1499*time.Millisecond - already)
	if h.ctrl.Obstacles().Len() != 0 {
		t.Fatalf("spawned before the interval elapsed")
	}

	h.ctrl.Update(time.Millisecond)
	if n := h.ctrl.Obstacles().Len(); n != 1 {
		t.Errorf("%d spawns after 1500 ms, expected exactly 1", n)
	}
	if st := h.ctrl.Session().SpawnTime; st != 0 {
		t.Errorf("SpawnTime = %v after spawning, expected 0", st)
	}
}

func TestScoreTicksOnInterval(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()
	start := h.ctrl.Session()

	h.ctrl.Update(h.cfg.Timing.ScoreInterval - start.ScoreTime)
	s := h.ctrl.Session()
	if s.Score != start.Score+1 || s.ScoreTime != 0 {
		t.Errorf("after one score interval: score %d, ScoreTime %v", s.Score, s.ScoreTime)
	}
}

func TestDespawnBoundary(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()
	speed := h.ctrl.Session().GameSpeed

	// Unknown assets are 32 wide.
	gone := h.ctrl.Obstacles().Create(-32+speed-0.5, 340, "obstacle-x")
	gone.SetOrigin(0, 1)
	kept := h.ctrl.Obstacles().Create(-32+speed, 340, "obstacle-y")
	kept.SetOrigin(0, 1)

	h.ctrl.Update(frame)

	assets := map[string]bool{}
	for _, o := range h.ctrl.Obstacles().Children() {
		assets[o.Asset()] = true
	}
	if assets["obstacle-x"] {
		t.Error("obstacle with right edge < 0 should be despawned")
	}
	if !assets["obstacle-y"] {
		t.Error("obstacle with right edge exactly 0 must stay")
	}
}

func TestNoObstacleLingersOffScreen(t *testing.T) {
	h := newHarness(t, func(c *config.DinoConfig) {
		c.Obstacles.FlyingCount = 2
	})
	h.runToRunning()

	// Keep the player clear of every obstacle.
	h.player.SetPosition(h.player.Position().X, 100)

	spawned := 0
	for i := 0; i < 60*20; i++ {
		before := h.ctrl.Obstacles().Len()
		h.tick()
		if h.ctrl.Obstacles().Len() > before {
			spawned++
		}
		for _, o := range h.ctrl.Obstacles().Children() {
			if o.Bounds().Right < 0 {
				t.Fatalf("frame %d: %s lingers at right edge %v", i, o.Asset(), o.Bounds().Right)
			}
		}
	}

	if h.ctrl.State() != StateRunning {
		t.Fatalf("run ended unexpectedly: %v", h.ctrl.State())
	}
	if spawned < 10 {
		t.Errorf("only %d spawns in 20 s", spawned)
	}
}

func TestClouds(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()

	cloud := h.ctrl.Clouds().Children()[0]
	cloud.SetPosition(-100, cloudY)
	h.ctrl.Update(frame)

	if x := cloud.Position().X; x != h.cfg.Viewport.Width+cloudRespawnGap {
		t.Errorf("off-screen cloud recycled to %v", x)
	}
	if h.ctrl.Clouds().Len() != 3 {
		t.Errorf("clouds are never removed, have %d", h.ctrl.Clouds().Len())
	}
}

func TestGroundScrollsByGameSpeed(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()

	before := h.ctrl.Ground().TilePositionX()
	h.ctrl.Update(frame)

	if got := h.ctrl.Ground().TilePositionX() - before; got != h.ctrl.Session().GameSpeed {
		t.Errorf("ground scrolled %v, expected %v", got, h.ctrl.Session().GameSpeed)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()

	h.ctrl.spawn(1, 600)
	h.ctrl.spawn(7, 400)
	// Right where the player stands.
	h.ctrl.spawn(1, h.player.Bounds().Left+10)
	count := h.ctrl.Obstacles().Len()

	h.tick()

	s := h.ctrl.Session()
	if s.State != StateGameOver {
		t.Fatalf("state = %v after collision", s.State)
	}
	if s.GameSpeed != 10 {
		t.Errorf("GameSpeed = %v, expected crash speed 10", s.GameSpeed)
	}
	if s.SpawnTime != 0 {
		t.Errorf("SpawnTime = %v, expected 0", s.SpawnTime)
	}
	if h.ctrl.Obstacles().Len() != count {
		t.Errorf("obstacles = %d, death must not clear them (had %d)", h.ctrl.Obstacles().Len(), count)
	}
	if !h.world.Paused() || !h.world.AnimationsPaused() {
		t.Error("physics and animations should be paused")
	}
	if h.player.deaths != 1 {
		t.Errorf("player died %d times", h.player.deaths)
	}
	if h.ctrl.GameOverOverlay().Alpha() != 1 {
		t.Error("game over overlay should be shown")
	}
}

func TestRestartRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		h := newHarness(t, func(c *config.DinoConfig) {
			c.Difficulty.Enabled = true
			c.Difficulty.Progression.Type = "time"
			c.Difficulty.Progression.MaxAt = 10
		})
		h.runToRunning()
		for i := 0; i < 30; i++ {
			h.ctrl.Update(frame)
		}
		for i := 0; i < n; i++ {
			h.ctrl.spawn(1, float64(500+40*i))
		}
		h.player.SetVelocityY(-900)
		h.ctrl.onObstacleHit()

		if !h.pressRestart() {
			t.Fatalf("n=%d: restart button did not take the press", n)
		}

		s := h.ctrl.Session()
		if s.State != StateRunning {
			t.Errorf("n=%d: state after restart = %v", n, s.State)
		}
		if h.ctrl.Obstacles().Len() != 0 {
			t.Errorf("n=%d: %d obstacles left after restart", n, h.ctrl.Obstacles().Len())
		}
		if h.player.Velocity().Y != 0 {
			t.Errorf("n=%d: player vertical velocity = %v", n, h.player.Velocity().Y)
		}
		if h.ctrl.GameOverOverlay().Alpha() != 0 {
			t.Errorf("n=%d: overlay still visible", n)
		}
		if h.world.Paused() || h.world.AnimationsPaused() {
			t.Errorf("n=%d: physics or animations still paused", n)
		}
		if s.GameSpeed != h.cfg.Speed.Initial || s.SpawnTime != 0 || s.Score != 0 {
			t.Errorf("n=%d: progression not reset: %+v", n, s)
		}
	}
}

func TestRestartButtonIgnoredWhileRunning(t *testing.T) {
	h := newHarness(t, nil)
	h.runToRunning()

	if h.pressRestart() {
		t.Error("hidden restart button should not take presses")
	}
	h.ctrl.Restart()
	if h.ctrl.State() != StateRunning {
		t.Errorf("Restart outside game over changed state to %v", h.ctrl.State())
	}
}

func TestLoggerRecordsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	h := newHarness(t, nil, WithLogger(logger))
	h.runToRunning()

	out := buf.String()
	for _, want := range []string{"rolling-out", "running"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestRunStateString(t *testing.T) {
	if StateGameOver.String() != "game-over" || RunState(42).String() != "unknown" {
		t.Error("unexpected RunState names")
	}
}
