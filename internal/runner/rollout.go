package runner

// handleGameStart places the invisible start trigger above the player's
// head. Jumping into it starts the rollout.
func (c *Controller) handleGameStart() {
	h := c.scene.Height()

	c.startTrigger = c.scene.Sprite(0, h-c.cfg.Rollout.TriggerOffset, "")
	c.startTrigger.SetOrigin(0, 1)
	c.startTrigger.SetAlpha(0)

	c.physics.Overlap(c.startTrigger, c.player, c.onStartTrigger)
}

func (c *Controller) onStartTrigger() {
	if c.session.State != StateWaitingToStart {
		return
	}
	// Park the trigger so it cannot fire again.
	c.startTrigger.Reset(parkedPosition, parkedPosition)

	c.transition(StateRollingOut)
	c.rollout = c.scheduler.Every(c.cfg.Rollout.RolloutDelay(), c.rolloutTick)
}

// rolloutTick widens the ground strip until it spans the viewport, then
// hands over to active play.
func (c *Controller) rolloutTick() {
	if c.session.State != StateRollingOut {
		c.stopRollout()
		return
	}

	c.player.PlayRunAnimation()
	c.player.SetVelocityX(c.cfg.Rollout.PlayerSpeed)

	full := c.scene.Width()
	width := c.ground.Width() + c.cfg.Rollout.GroundStep
	if width < full {
		c.ground.SetWidth(width)
		return
	}

	c.stopRollout()
	c.ground.SetWidth(full)
	c.player.SetVelocityX(0)
	c.clouds.SetAlpha(1)
	c.transition(StateRunning)
}

func (c *Controller) stopRollout() {
	if c.rollout != nil {
		c.rollout.Cancel()
		c.rollout = nil
	}
}

// Rolling reports whether the rollout ticker is still scheduled.
func (c *Controller) Rolling() bool {
	return c.rollout != nil && c.rollout.Active()
}
