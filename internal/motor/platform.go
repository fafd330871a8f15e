package motor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// refreshPlatform measures the velocity of the attached platform at the
// anchor point and advances the settle counter. It runs at the start of
// every step.
func (c *Controller) refreshPlatform(dt float64) {
	if !c.settings.Platform.Enabled {
		return
	}
	p := &c.platform
	if p.Active != nil && !p.Active.Valid() {
		c.logger.Debug("Platform became invalid, detaching")
		p.reset()
	}

	if p.Active == nil {
		p.Velocity = mgl64.Vec3{}
	} else {
		current := p.Active.Transform()
		if p.NewPlatform {
			// No baseline yet; the transform captured on attach becomes one
			// only now.
			p.Velocity = mgl64.Vec3{}
		} else {
			now := current.TransformPoint(p.ActiveLocalPoint)
			before := p.LastTransform.TransformPoint(p.ActiveLocalPoint)
			p.Velocity = now.Sub(before).Mul(1 / dt)
		}
		p.LastTransform = current
		p.NewPlatform = false
	}

	c.stepSettle()
}

// stepSettle counts down the wait after landing on a new platform. When it
// runs out and the character still stands on that platform, the platform
// velocity is removed from the character velocity once, so ground steering
// works relative to the platform.
func (c *Controller) stepSettle() {
	p := &c.platform
	if !p.pending.armed() {
		return
	}
	p.pending.ticks--
	if p.pending.ticks > 0 {
		return
	}
	surface := p.pending.surface
	p.pending = pendingSubtract{}
	if c.motion.Grounded && surface != nil && surface == p.Active {
		c.motion.Velocity = c.motion.Velocity.Sub(p.Velocity)
	}
}

// subtractNewPlatformVelocity removes the ground velocity on landing, or
// defers the removal when the platform was only just touched.
func (c *Controller) subtractNewPlatformVelocity() {
	if !c.settings.Platform.Enabled || !c.settings.Platform.Transfer.inheritsVelocity() {
		return
	}
	p := &c.platform
	if p.NewPlatform {
		p.pending = pendingSubtract{surface: p.Active, ticks: settleTicks}
		return
	}
	c.motion.Velocity = c.motion.Velocity.Sub(p.Velocity)
}

// platformInheritance returns the platform velocity handed to the
// character when it leaves the ground.
func (c *Controller) platformInheritance() (mgl64.Vec3, bool) {
	if !c.settings.Platform.Enabled || !c.settings.Platform.Transfer.inheritsVelocity() {
		return mgl64.Vec3{}, false
	}
	return c.platform.Velocity, true
}

// attachHitPlatform switches to the ground object touched in the last move.
// Ground that is not a platform releases the current one, whatever the
// transfer policy.
func (c *Controller) attachHitPlatform() {
	p := &c.platform
	if !c.settings.Platform.Enabled || p.Hit == p.Active {
		return
	}
	if p.Hit == nil {
		if p.HitGround {
			c.logger.Debug("Left platform for static ground")
			c.releasePlatform()
			p.Velocity = mgl64.Vec3{}
		}
		return
	}
	p.Active = p.Hit
	p.LastTransform = p.Hit.Transform()
	p.NewPlatform = true
	p.pending = pendingSubtract{}
	c.logger.Debug("Attached to platform", "position", p.LastTransform.Position)
}

// detachPlatform drops the platform when the character leaves the ground.
// The locked policy keeps following it through the air.
func (c *Controller) detachPlatform() {
	if c.settings.Platform.Transfer == TransferLocked {
		return
	}
	if c.platform.Active != nil {
		c.logger.Debug("Detached from platform")
	}
	c.releasePlatform()
}

func (c *Controller) releasePlatform() {
	p := &c.platform
	p.Active = nil
	p.NewPlatform = false
	p.LastTransform = Transform{}
	p.pending = pendingSubtract{}
}

func (c *Controller) moveWithPlatform() bool {
	p := &c.platform
	return c.settings.Platform.Enabled &&
		(c.motion.Grounded || c.settings.Platform.Transfer == TransferLocked) &&
		p.Active != nil
}

// followPlatform carries the character along with the platform motion and
// rotation since the anchor was captured.
func (c *Controller) followPlatform() {
	if !c.moveWithPlatform() {
		return
	}
	p := &c.platform
	current := p.Active.Transform()

	newGlobalPoint := current.TransformPoint(p.ActiveLocalPoint)
	if d := newGlobalPoint.Sub(p.ActiveGlobalPoint); d != (mgl64.Vec3{}) {
		for _, contact := range c.mover.Move(d).Contacts {
			c.push(contact)
		}
	}

	if p.ActiveGlobalRotation == (mgl64.Quat{}) {
		return
	}
	newGlobalRotation := current.rotation().Mul(p.ActiveLocalRotation)
	diff := newGlobalRotation.Mul(p.ActiveGlobalRotation.Inverse())
	if yaw := yawOf(diff); yaw != 0 {
		rot := orientation(c.mover.Rotation())
		c.mover.SetRotation(mgl64.QuatRotate(yaw, up).Mul(rot).Normalize())
	}
}

// captureAnchor stores the lower hemisphere centre of the capsule in
// platform space, together with the character rotation relative to the
// platform.
func (c *Controller) captureAnchor() {
	if !c.moveWithPlatform() {
		return
	}
	p := &c.platform
	current := p.Active.Transform()
	point := c.mover.Position().Add(up.Mul(c.mover.Capsule().FootOffset()))

	p.ActiveGlobalPoint = point
	p.ActiveLocalPoint = current.InverseTransformPoint(point)
	p.ActiveGlobalRotation = orientation(c.mover.Rotation())
	p.ActiveLocalRotation = current.rotation().Inverse().Mul(p.ActiveGlobalRotation)
}

// validSurface returns s, or nil when s is missing or destroyed.
func validSurface(s Surface) Surface {
	if s == nil || !s.Valid() {
		return nil
	}
	return s
}

// PlatformVelocity is the velocity of the attached platform measured at
// the start of the last step.
func (c *Controller) PlatformVelocity() mgl64.Vec3 {
	return c.platform.Velocity
}

// ActivePlatform returns the attached platform, or nil.
func (c *Controller) ActivePlatform() Surface {
	return c.platform.Active
}
