package motor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// applyInputVelocityChange steers velocity toward the input, limited by
// the ground or air acceleration.
func (c *Controller) applyInputVelocityChange(velocity, input mgl64.Vec3, dt float64) mgl64.Vec3 {
	if !c.canControl {
		input = mgl64.Vec3{}
	}
	input = clampLength(input, 1)

	grounded := c.motion.Grounded
	ground := c.ground()

	var desired mgl64.Vec3
	if grounded && ground.TooSteep {
		desired = c.slideVelocity(input, ground.Normal)
	} else {
		desired = c.desiredHorizontalVelocity(input, grounded)
	}

	if c.settings.Platform.Enabled && c.settings.Platform.Transfer == TransferPermanent {
		desired = withY(desired.Add(c.motion.FrameVelocity), 0)
	}

	if grounded {
		desired = adjustGroundVelocityToNormal(desired, ground.Normal)
	} else {
		velocity = withY(velocity, 0)
	}

	maxChange := c.maxAcceleration(grounded) * dt
	change := clampLength(desired.Sub(velocity), maxChange)
	// In the air without control nothing changes; on the ground the change
	// still applies and acts as friction.
	if grounded || c.canControl {
		velocity = velocity.Add(change)
	}

	if grounded {
		// Going uphill the mover climbs on its own; adding upward velocity
		// here would make the character lift off.
		velocity = withY(velocity, math.Min(velocity.Y(), 0))
	}
	return velocity
}

// applyGravityAndJumping integrates gravity, the variable height jump and
// take-off.
func (c *Controller) applyGravityAndJumping(velocity mgl64.Vec3, jumpHeld bool, dt float64) mgl64.Vec3 {
	mv := c.settings.Movement
	js := c.settings.Jumping

	if !jumpHeld || !c.canControl {
		c.jump.HoldingJumpButton = false
		c.jump.LastButtonDownTime = noButtonPress
	}
	if jumpHeld && c.jump.LastButtonDownTime < 0 && c.canControl {
		c.jump.LastButtonDownTime = c.now
	}

	if c.motion.Grounded {
		velocity = withY(velocity, math.Min(0, velocity.Y())-mv.Gravity*dt)
	} else {
		velocity = withY(velocity, c.motion.Velocity.Y()-mv.Gravity*dt)

		// Holding the button after a jump cancels gravity for a while and
		// keeps pushing along the jump direction instead.
		if c.jump.Jumping && c.jump.HoldingJumpButton && c.extraHeightActive() {
			velocity = velocity.Add(c.jump.JumpDir.Mul(mv.Gravity * dt))
		}

		velocity = withY(velocity, math.Max(velocity.Y(), -mv.MaxFallSpeed))
	}

	if !c.motion.Grounded {
		return velocity
	}
	// A press up to freshPressWindow before landing still counts.
	if js.Enabled && c.canControl && c.now-c.jump.LastButtonDownTime < freshPressWindow {
		return c.launch(velocity)
	}
	c.jump.HoldingJumpButton = false
	return velocity
}

func (c *Controller) launch(velocity mgl64.Vec3) mgl64.Vec3 {
	js := c.settings.Jumping
	ground := c.ground()

	c.motion.Grounded = false
	c.jump.Jumping = true
	c.jump.LastStartTime = c.now
	c.jump.LastButtonDownTime = noButtonPress
	c.jump.HoldingJumpButton = true

	perp := js.PerpAmount
	if ground.TooSteep {
		perp = js.SteepPerpAmount
	}
	c.jump.JumpDir = slerpDirection(up, ground.Normal, perp)

	velocity = withY(velocity, 0)
	velocity = velocity.Add(c.jump.JumpDir.Mul(c.jumpVerticalSpeed(js.BaseHeight)))

	if inherited, ok := c.platformInheritance(); ok {
		c.motion.FrameVelocity = inherited
		velocity = velocity.Add(inherited)
	}
	c.detachPlatform()

	c.logger.Debug("Character jumped", "direction", c.jump.JumpDir, "velocity", velocity)
	c.events.jump.Publish(JumpEvent{
		Position:  c.mover.Position(),
		Direction: c.jump.JumpDir,
		Material:  c.hitMaterial(),
	})
	return velocity
}

// extraHeightActive reports whether the held-button window is still open.
// A zero launch speed means the window has already closed.
func (c *Controller) extraHeightActive() bool {
	speed := c.jumpVerticalSpeed(c.settings.Jumping.BaseHeight)
	if speed < vecEpsilon {
		return false
	}
	return c.now < c.jump.LastStartTime+c.settings.Jumping.ExtraHeight/speed
}

// jumpVerticalSpeed is the launch speed that reaches height under gravity.
func (c *Controller) jumpVerticalSpeed(height float64) float64 {
	v := 2 * height * c.settings.Movement.Gravity
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

func (c *Controller) maxAcceleration(grounded bool) float64 {
	if grounded {
		return c.settings.Movement.MaxGroundAcceleration
	}
	return c.settings.Movement.MaxAirAcceleration
}

// desiredHorizontalVelocity scales the input by the speed limit in its
// local direction and, on the ground, by the slope speed curve.
func (c *Controller) desiredHorizontalVelocity(input mgl64.Vec3, grounded bool) mgl64.Vec3 {
	rot := orientation(c.mover.Rotation())
	local := rot.Inverse().Rotate(input)
	maxSpeed := maxSpeedInDirection(c.settings.Movement, local)
	if grounded {
		slope := asinDeg(normalizeOrZero(c.motion.Velocity).Y())
		maxSpeed *= c.settings.Movement.SlopeSpeedMultiplier.Evaluate(slope)
	}
	return rot.Rotate(local.Mul(maxSpeed))
}

// maxSpeedInDirection returns the radius of the speed ellipse spanned by
// the sideways speed on X and the forward or backwards speed on Z.
func maxSpeedInDirection(m MovementSettings, local mgl64.Vec3) float64 {
	dir := normalizeOrZero(horizontal(local))
	if dir == (mgl64.Vec3{}) {
		return 0
	}
	zMax := m.MaxBackwardsSpeed
	if dir.Z() > 0 {
		zMax = m.MaxForwardSpeed
	}

	var denom float64
	if x := dir.X(); x != 0 {
		if m.MaxSidewaysSpeed <= 0 {
			return 0
		}
		denom += x * x / (m.MaxSidewaysSpeed * m.MaxSidewaysSpeed)
	}
	if z := dir.Z(); z != 0 {
		if zMax <= 0 {
			return 0
		}
		denom += z * z / (zMax * zMax)
	}
	if denom <= 0 {
		return 0
	}
	return 1 / math.Sqrt(denom)
}

// slideVelocity is the desired velocity on too-steep ground: down the slope
// at the sliding speed, with some input influence along and across it.
func (c *Controller) slideVelocity(input, normal mgl64.Vec3) mgl64.Vec3 {
	sl := c.settings.Sliding
	dir := normalizeOrZero(horizontal(normal))
	along := project(input, dir)
	desired := dir.
		Add(along.Mul(sl.SpeedControl)).
		Add(input.Sub(along).Mul(sl.SidewaysControl))
	return desired.Mul(sl.SlidingSpeed)
}

// adjustGroundVelocityToNormal turns v into the ground plane while keeping
// its length.
func adjustGroundVelocityToNormal(v, normal mgl64.Vec3) mgl64.Vec3 {
	sideways := up.Cross(v)
	return normalizeOrZero(sideways.Cross(normal)).Mul(v.Len())
}

func orientation(q mgl64.Quat) mgl64.Quat {
	if q == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return q.Normalize()
}
