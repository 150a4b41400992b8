package runner

func (c *Controller) handleObstacleCollisions() {
	c.physics.Collider(c.obstacles, c.player, c.onObstacleHit)
}

// onObstacleHit ends the run. Obstacles stay where they are until restart.
func (c *Controller) onObstacleHit() {
	if c.session.State != StateRunning {
		return
	}
	c.transition(StateGameOver)

	c.physics.Pause()
	c.scene.PauseAnimations()
	c.player.Die()
	c.gameOver.SetAlpha(1)

	c.session.SpawnTime = 0
	// Never read while physics is paused; kept as the crash cue.
	c.session.GameSpeed = c.cfg.Speed.Crash

	c.logger.Info("game over", "score", c.session.Score)
}

// Restart resumes play after a crash. It skips the rollout and goes
// straight back to StateRunning with a fresh score. It is a no-op in any
// other state.
func (c *Controller) Restart() {
	if c.session.State != StateGameOver {
		return
	}

	c.physics.Resume()
	c.player.SetVelocityY(0)
	c.obstacles.Clear()
	c.gameOver.SetAlpha(0)
	c.scene.ResumeAnimations()
	c.player.PlayRunAnimation()

	c.session = Session{
		State:     StateGameOver,
		GameSpeed: c.cfg.Speed.Initial,
	}
	c.transition(StateRunning)
}
