// Package runner implements the run controller of the Dino runner: the
// per-frame state machine that takes a run from waiting, through the
// rollout, into active play and game over, spawning and despawning
// obstacles and scaling speed along the way.
//
// The controller only talks to the host engine through the scene
// interfaces. It is not safe for concurrent use: the host calls Update once
// per frame and delivers contact and pointer callbacks between frames.
package runner

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/scene"
)

// Asset and animation identifiers the controller asks the scene for.
const (
	AssetGround   = "ground"
	AssetCloud    = "cloud"
	AssetBird     = "enemy-bird"
	AssetGameOver = "game-over"
	AssetRestart  = "restart"

	AnimBirdFly = "enemy-bird-fly"

	birdFrameRate = 6
)

const (
	groundHeight = 26
	cloudY       = 170

	// cloudRespawnGap is how far past the right edge a recycled cloud reappears.
	cloudRespawnGap = 30
)

// parkedPosition is where the start trigger goes once used.
const parkedPosition = 9999

// ObstacleAsset returns the asset of ground obstacle variant n (1-based).
func ObstacleAsset(n int) string {
	return fmt.Sprintf("obstacle-%d", n)
}

// Deps are the host engine services the controller drives.
type Deps struct {
	Scene     scene.Scene
	Physics   scene.Physics
	Scheduler scene.Scheduler
	Input     scene.Input
	Player    scene.Player
}

// Controller owns the run state, the obstacle lifecycle and progression.
type Controller struct {
	scene     scene.Scene
	physics   scene.Physics
	scheduler scene.Scheduler
	player    scene.Player

	cfg        config.DinoConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	logger     *log.Logger

	session Session

	ground       scene.Ground
	clouds       scene.Group
	obstacles    scene.Group
	startTrigger scene.Sprite
	gameOver     scene.Renderable
	restart      scene.Renderable

	// rollout is set only while StateRollingOut is active.
	rollout scene.Timer
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for state transitions and spawns.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSeed seeds the spawn RNG for reproducible runs.
func WithSeed(seed int64) Option {
	return func(c *Controller) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// New builds the scene for a run and wires the start trigger, obstacle
// collisions and the restart button. The run begins in StateWaitingToStart.
// cfg is expected to be valid (see config.DinoConfig.Validate).
func New(d Deps, cfg config.DinoConfig, opts ...Option) *Controller {
	c := &Controller{
		scene:      d.Scene,
		physics:    d.Physics,
		scheduler:  d.Scheduler,
		player:     d.Player,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.session = Session{
		State:     StateWaitingToStart,
		GameSpeed: cfg.Speed.Initial,
	}

	c.createEnvironment()
	c.obstacles = c.scene.NewPhysicsGroup()
	c.createGameOverContainer()
	c.scene.CreateAnimation(AnimBirdFly, AssetBird, birdFrameRate)

	c.handleGameStart()
	c.handleObstacleCollisions()
	d.Input.OnPointerDown(c.restart, c.Restart)

	return c
}

func (c *Controller) createEnvironment() {
	w, h := c.scene.Width(), c.scene.Height()

	c.ground = c.scene.TileSprite(0, h, c.cfg.Rollout.GroundWidth, groundHeight, AssetGround)
	c.ground.SetOrigin(0, 1)

	c.clouds = c.scene.NewGroup()
	for _, x := range []float64{w / 2, w - 80, w / 1.3} {
		c.clouds.Add(c.scene.Image(x, cloudY, AssetCloud))
	}
	c.clouds.SetAlpha(0)
}

func (c *Controller) createGameOverContainer() {
	text := c.scene.Image(0, 0, AssetGameOver)
	c.restart = c.scene.Image(0, 80, AssetRestart)

	c.gameOver = c.scene.Container(c.scene.Width()/2, c.scene.Height()/2-50, text, c.restart)
	c.gameOver.SetAlpha(0)
}

// Update advances the run by one frame. It does nothing outside
// StateRunning; the rollout is driven by the scheduler instead.
func (c *Controller) Update(delta time.Duration) {
	s := &c.session
	if s.State != StateRunning {
		return
	}
	if delta < 0 {
		delta = 0
	}
	s.RunTicks++

	s.SpawnTime += delta
	if s.SpawnTime >= c.cfg.Timing.SpawnInterval {
		c.spawnObstacle()
		s.SpawnTime = 0
	}

	s.ScoreTime += delta
	if s.ScoreTime >= c.cfg.Timing.ScoreInterval {
		s.Score++
		s.ScoreTime = 0
	}

	s.GameSpeed = c.difficulty.Speed(c.cfg.Speed.Initial, s.Score, s.RunTicks)

	shiftX(c.obstacles, -s.GameSpeed)
	shiftX(c.clouds, -c.cfg.Speed.CloudDrift)

	for _, o := range c.obstacles.Children() {
		if o.Bounds().Right < 0 {
			c.obstacles.Remove(o)
		}
	}
	for _, cloud := range c.clouds.Children() {
		if cloud.Bounds().Right < 0 {
			cloud.SetPosition(c.scene.Width()+cloudRespawnGap, cloud.Position().Y)
		}
	}

	c.ground.SetTilePositionX(c.ground.TilePositionX() + s.GameSpeed)
}

func shiftX(g scene.Group, dx float64) {
	for _, r := range g.Children() {
		p := r.Position()
		r.SetPosition(p.X+dx, p.Y)
	}
}

func (c *Controller) transition(to RunState) {
	from := c.session.State
	c.session.State = to
	c.logger.Debug("run state", "from", from, "to", to, "score", c.session.Score)
}

// Session returns a copy of the current run state.
func (c *Controller) Session() Session { return c.session }

// State returns the current run state.
func (c *Controller) State() RunState { return c.session.State }

// Obstacles returns the live obstacle group.
func (c *Controller) Obstacles() scene.Group { return c.obstacles }

// Clouds returns the decoration group.
func (c *Controller) Clouds() scene.Group { return c.clouds }

// Ground returns the ground strip.
func (c *Controller) Ground() scene.Ground { return c.ground }

// GameOverOverlay returns the container shown after a crash.
func (c *Controller) GameOverOverlay() scene.Renderable { return c.gameOver }

// RestartButton returns the interactive restart affordance.
func (c *Controller) RestartButton() scene.Renderable { return c.restart }

// StartTrigger returns the invisible body that starts the run.
func (c *Controller) StartTrigger() scene.Sprite { return c.startTrigger }
