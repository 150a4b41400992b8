package runner

import (
	"github.com/vovakirdan/tui-dino/internal/config"
	"github.com/vovakirdan/tui-dino/internal/scene"
)

// spawnObstacle draws a variant and a forward distance and spawns it.
// Spacing against the previous obstacle is not checked; reachability is
// left to the physics contacts.
func (c *Controller) spawnObstacle() Obstacle {
	pool := c.cfg.Obstacles
	draw := c.rng.Intn(pool.GroundCount+pool.FlyingCount) + 1
	distance := float64(pool.MinDistance + c.rng.Intn(pool.MaxDistance-pool.MinDistance+1))
	return c.spawn(draw, distance)
}

// spawn creates the obstacle selected by draw (1-based). Draws above the
// ground count are flying enemies.
func (c *Controller) spawn(draw int, distance float64) Obstacle {
	w, h := c.scene.Width(), c.scene.Height()
	pool := c.cfg.Obstacles

	var o Obstacle
	var sprite scene.Sprite

	if draw > pool.GroundCount {
		band := pool.FlightBands[c.rng.Intn(len(pool.FlightBands))]
		o = Obstacle{Kind: KindFlying, X: w + distance, Offset: band, Asset: AssetBird}

		sprite = c.obstacles.Create(o.X, h-band, AssetBird)
		sprite.Play(AnimBirdFly)
	} else {
		x := distance
		if pool.GroundAnchor == config.AnchorRightEdge {
			x += w
		}
		o = Obstacle{Kind: KindGround, X: x, Asset: ObstacleAsset(draw)}
		sprite = c.obstacles.Create(o.X, h, o.Asset)
	}

	sprite.SetOrigin(0, 1)
	sprite.SetImmovable(true)

	c.logger.Debug("spawn", "kind", o.Kind, "asset", o.Asset, "x", o.X, "offset", o.Offset)
	return o
}
