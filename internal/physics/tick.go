package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Body is a pushable box. Characters assign its velocity through the
// motor.Rigidbody methods; Step integrates it with gravity and friction.
type Body struct {
	solid     *Solid
	velocity  mgl64.Vec3
	onGround  bool
	kinematic bool
}

// NewBody attaches a body to solid. A kinematic body is never pushed.
func NewBody(solid *Solid, kinematic bool) *Body {
	b := &Body{solid: solid, kinematic: kinematic}
	solid.body = b
	return b
}

func (b *Body) Solid() *Solid {
	return b.solid
}

func (b *Body) IsKinematic() bool {
	return b.kinematic
}

func (b *Body) Velocity() mgl64.Vec3 {
	return b.velocity
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.velocity = v
}

func (b *Body) OnGround() bool {
	return b.onGround
}

// Step advances the body by dt inside its space.
func (b *Body) Step(space *Space, dt float64) {
	if b.kinematic || b.solid == nil || !(dt > 0) {
		return
	}
	box := b.solid.bounds
	area := box.Union(box.Offset(b.velocity.Mul(dt))).Grow(GroundProbeDistance + CollisionAxisTolerance)
	solids := space.Query(area)

	b.onGround = isStandingOnSolid(box, solids, b.solid)

	v := b.velocity
	v[axisY] = math.Max(v.Y()-BodyGravity*dt, -BodyMaxFallSpeed)
	friction := BodyAirDrag
	if b.onGround {
		friction = BodyGroundFriction
	}
	damp := math.Max(0, 1-friction*dt)
	v[axisX] *= damp
	v[axisZ] *= damp

	moved, hits := ResolveMovement(box, v.Mul(dt), solids, b.solid)
	for axis, hit := range hits {
		if hit != nil {
			v[axis] = 0
		}
	}
	space.SetBounds(b.solid, box.Offset(moved))

	b.onGround = isStandingOnSolid(b.solid.bounds, solids, b.solid)
	zeroResidualVelocity(&v)
	b.velocity = v
}

func zeroResidualVelocity(v *mgl64.Vec3) {
	if v == nil {
		return
	}
	for axis := range v {
		if math.Abs(v[axis]) < MinimumResidualSpeed {
			v[axis] = 0
		}
	}
}

func isStandingOnSolid(box AABB, solids []*Solid, skip *Solid) bool {
	probe := box.Offset(mgl64.Vec3{0, -GroundProbeDistance, 0})
	return CollidesWithSolid(probe, solids, skip)
}
