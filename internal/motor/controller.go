package motor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// Input is the intent for one fixed step.
type Input struct {
	// Move is the desired world-space move direction. Lengths above one are
	// clamped.
	Move mgl64.Vec3
	// Jump is true while the jump button is held.
	Jump bool
}

// Controller moves one character capsule. It is not safe for concurrent
// use; step each controller from the simulation loop that owns it.
type Controller struct {
	settings   Settings
	mover      Mover
	logger     *slog.Logger
	canControl bool
	now        float64

	motion   MotionState
	jump     JumpState
	platform PlatformState

	lastFootstep mgl64.Vec3
	events       events
}

type Option func(*Controller)

func WithLogger(lg *slog.Logger) Option {
	return func(c *Controller) {
		if lg != nil {
			c.logger = lg
		}
	}
}

// New validates settings and returns a controller driving mover.
func New(settings Settings, mover Mover, opts ...Option) (*Controller, error) {
	if mover == nil {
		return nil, errors.New("motor: mover is nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("motor: %w", err)
	}
	settings.Movement.SlopeSpeedMultiplier = append(Curve(nil), settings.Movement.SlopeSpeedMultiplier...)

	c := &Controller{
		settings:     settings,
		mover:        mover,
		logger:       slog.Default(),
		canControl:   true,
		motion:       newMotionState(),
		jump:         newJumpState(),
		lastFootstep: mover.Position(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.events = newEvents(c.logger)
	return c, nil
}

// FixedUpdate advances the controller by one fixed step of dt seconds.
// A non-positive or non-finite dt leaves everything unchanged.
func (c *Controller) FixedUpdate(in Input, dt float64) {
	if !(dt > 0) || !finite(dt) {
		return
	}
	c.now += dt

	c.refreshPlatform(dt)

	velocity := c.integrate(in, dt)

	c.followPlatform()
	c.move(velocity, dt)
}

// integrate runs steering and then gravity/jumping on a copy of the
// current velocity.
func (c *Controller) integrate(in Input, dt float64) mgl64.Vec3 {
	move := in.Move
	if !finite(move.X()) || !finite(move.Y()) || !finite(move.Z()) {
		move = mgl64.Vec3{}
	}
	velocity := c.motion.Velocity
	velocity = c.applyInputVelocityChange(velocity, move, dt)
	velocity = c.applyGravityAndJumping(velocity, in.Jump, dt)
	return velocity
}

func (c *Controller) move(velocity mgl64.Vec3, dt float64) {
	capsule := c.mover.Capsule()
	lastPosition := c.mover.Position()

	offset := velocity.Mul(dt)
	// Push towards the ground so walking down steps or over a sharp change
	// of slope keeps contact.
	pushDown := max(capsule.StepOffset, horizontal(offset).Len())
	wasGrounded := c.motion.Grounded
	if wasGrounded {
		offset = offset.Sub(up.Mul(pushDown))
	}

	c.platform.Hit = nil
	c.platform.HitGround = false
	c.motion.GroundNormal = mgl64.Vec3{}

	result := c.mover.Move(offset)
	c.motion.CollisionFlags = result.Flags
	for _, contact := range result.Contacts {
		c.onContact(contact)
	}

	c.motion.LastHitPoint = c.motion.HitPoint
	c.motion.LastGroundNormal = c.motion.GroundNormal

	c.attachHitPlatform()
	c.motion.Velocity = c.measureVelocity(velocity, c.mover.Position().Sub(lastPosition), dt)

	ground := c.ground()
	supported := ground.supports(c.settings.Sliding.Enabled)
	switch {
	case wasGrounded && !supported:
		c.motion.Grounded = false
		if inherited, ok := c.platformInheritance(); ok {
			c.motion.FrameVelocity = inherited
			c.motion.Velocity = c.motion.Velocity.Add(inherited)
		}
		c.logger.Debug("Character lost ground", "velocity", c.motion.Velocity)
		c.events.fall.Publish(FallEvent{Position: c.mover.Position(), Velocity: c.motion.Velocity})
		// The push-down found nothing, undo it so the fall starts smoothly.
		c.mover.SetPosition(c.mover.Position().Add(up.Mul(pushDown)))
		c.detachPlatform()
	case !c.motion.Grounded && supported:
		c.motion.Grounded = true
		c.jump.Jumping = false
		c.subtractNewPlatformVelocity()
		c.logger.Debug("Character landed", "normal", ground.Normal, "velocity", c.motion.Velocity)
		c.events.land.Publish(LandEvent{
			Position: c.mover.Position(),
			Velocity: c.motion.Velocity,
			Material: c.hitMaterial(),
		})
	}

	c.captureAnchor()
	c.stepFootsteps()
}

// measureVelocity derives the stored velocity from how far the mover
// actually went, so collisions slow the character down. Sideways sliding
// caused by collisions is not allowed to add velocity.
func (c *Controller) measureVelocity(intended, moved mgl64.Vec3, dt float64) mgl64.Vec3 {
	measured := moved.Mul(1 / dt)
	oldH := horizontal(intended)
	if lenSqr(oldH) < vecEpsilon {
		measured = mgl64.Vec3{0, measured.Y(), 0}
	} else {
		along := horizontal(measured).Dot(oldH) / lenSqr(oldH)
		measured = withY(oldH.Mul(mgl64.Clamp(along, 0, 1)), measured.Y())
	}

	if measured.Y() < intended.Y()-0.001 {
		if measured.Y() < 0 {
			// Something forced the capsule down faster than intended.
			measured = withY(measured, intended.Y())
		} else {
			// Upward motion was blocked: treat as a ceiling hit.
			c.jump.HoldingJumpButton = false
		}
	}
	return measured
}

func (c *Controller) onContact(contact Contact) {
	n, ok := classifyGround(contact, c.motion.GroundNormal, c.motion.LastGroundNormal, c.motion.LastHitPoint)
	if ok {
		c.motion.GroundNormal = n
		c.platform.Hit = validSurface(contact.Surface)
		c.platform.HitGround = true
		c.motion.HitPoint = contact.Point
		c.motion.HitMaterial = materialOf(contact.Surface)
		c.motion.FrameVelocity = mgl64.Vec3{}
	}
	c.push(contact)
}

func (c *Controller) ground() Ground {
	return classifyNormal(c.motion.GroundNormal, c.settings.steepThreshold())
}

func (c *Controller) stepFootsteps() {
	dist := c.settings.Movement.FootstepDistance
	if !c.motion.Grounded || dist <= 0 {
		return
	}
	pos := c.mover.Position()
	if lenSqr(horizontal(pos.Sub(c.lastFootstep))) < dist*dist {
		return
	}
	c.lastFootstep = pos
	c.events.footstep.Publish(FootstepEvent{Position: pos, Material: c.hitMaterial()})
}

// SetControllable enables or disables player control. Without control the
// input direction is ignored, jumping is impossible and airborne velocity
// is not steered at all.
func (c *Controller) SetControllable(enabled bool) {
	c.canControl = enabled
}

func (c *Controller) Controllable() bool {
	return c.canControl
}

func (c *Controller) Settings() Settings {
	s := c.settings
	s.Movement.SlopeSpeedMultiplier = append(Curve(nil), s.Movement.SlopeSpeedMultiplier...)
	return s
}

func (c *Controller) Velocity() mgl64.Vec3 {
	return c.motion.Velocity
}

// Grounded reports whether the character stands on walkable ground. Ground
// steeper than the slope limit never counts.
func (c *Controller) Grounded() bool {
	return c.motion.Grounded && !c.ground().TooSteep
}

// Sliding reports whether the character is held by too-steep ground and
// slides down it.
func (c *Controller) Sliding() bool {
	return c.motion.Grounded && c.ground().TooSteep
}

func (c *Controller) Jumping() bool {
	return c.jump.Jumping
}

func (c *Controller) GroundNormal() mgl64.Vec3 {
	return c.motion.GroundNormal
}

// Now is the controller clock, the sum of all accepted step durations.
func (c *Controller) Now() float64 {
	return c.now
}

func (c *Controller) Motion() MotionState {
	return c.motion
}

func (c *Controller) JumpState() JumpState {
	return c.jump
}

func (c *Controller) PlatformState() PlatformState {
	return c.platform
}
