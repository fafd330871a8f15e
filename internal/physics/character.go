package physics

import (
	"github.com/Versifine/stride/internal/motor"
	"github.com/go-gl/mathgl/mgl64"
)

// Broadphase finds candidate solids for a swept area.
type Broadphase interface {
	Query(area AABB) []*Solid
}

// Character is the reference motor.Mover. The capsule is approximated by its
// bounding box and swept one axis at a time.
type Character struct {
	space    Broadphase
	position mgl64.Vec3
	rotation mgl64.Quat
	capsule  motor.Capsule
}

func DefaultCapsule() motor.Capsule {
	return motor.Capsule{
		Height:     DefaultCharacterHeight,
		Radius:     DefaultCharacterRadius,
		Center:     DefaultCharacterHeight / 2,
		StepOffset: DefaultStepOffset,
	}
}

func NewCharacter(space Broadphase, position mgl64.Vec3, capsule motor.Capsule) *Character {
	return &Character{
		space:    space,
		position: position,
		rotation: mgl64.QuatIdent(),
		capsule:  capsule,
	}
}

func (c *Character) Position() mgl64.Vec3       { return c.position }
func (c *Character) SetPosition(p mgl64.Vec3)   { c.position = p }
func (c *Character) Rotation() mgl64.Quat       { return c.rotation }
func (c *Character) SetRotation(q mgl64.Quat)   { c.rotation = q }
func (c *Character) Capsule() motor.Capsule     { return c.capsule }
func (c *Character) Bounds() AABB               { return c.boundsAt(c.position) }
func (c *Character) boundsAt(p mgl64.Vec3) AABB { return characterAABB(p, c.capsule) }

func characterAABB(p mgl64.Vec3, capsule motor.Capsule) AABB {
	bottom := p.Y() + capsule.Center - capsule.Height/2
	r := capsule.Radius
	return AABB{
		Min: mgl64.Vec3{p.X() - r, bottom, p.Z() - r},
		Max: mgl64.Vec3{p.X() + r, bottom + capsule.Height, p.Z() + r},
	}
}

// Move sweeps the box by displacement in Y, X, Z order. A horizontal axis that
// is blocked while standing on something is retried raised by the step
// offset, which is how the character climbs low ledges.
func (c *Character) Move(displacement mgl64.Vec3) motor.MoveResult {
	var result motor.MoveResult
	if !finiteVec(displacement) || displacement == (mgl64.Vec3{}) {
		return result
	}
	start := c.Bounds()
	area := start.Union(start.Offset(displacement)).Grow(c.capsule.StepOffset + CollisionAxisTolerance)
	solids := c.space.Query(area)

	box := start
	dy, hit := sweepAxis(box, axisY, displacement.Y(), solids, nil)
	box = box.Offset(axisVector(axisY, dy))
	supported := false
	if hit != nil {
		center := box.Center()
		if displacement.Y() < 0 {
			supported = true
			result.Flags |= motor.CollidedBelow
			result.Contacts = append(result.Contacts, contactWith(hit,
				mgl64.Vec3{0, 1, 0}, mgl64.Vec3{center.X(), box.Min.Y(), center.Z()}, mgl64.Vec3{0, -1, 0}))
		} else {
			result.Flags |= motor.CollidedAbove
			result.Contacts = append(result.Contacts, contactWith(hit,
				mgl64.Vec3{0, -1, 0}, mgl64.Vec3{center.X(), box.Max.Y(), center.Z()}, mgl64.Vec3{0, 1, 0}))
		}
	}

	// Side contacts report the direction of the horizontal pass, not of the
	// whole move, so a grounded push-down does not hide a push.
	side := mgl64.Vec3{displacement.X(), 0, displacement.Z()}
	if side != (mgl64.Vec3{}) {
		side = side.Normalize()
	}

	for _, axis := range [2]int{axisX, axisZ} {
		delta := displacement[axis]
		moved, hit := sweepAxis(box, axis, delta, solids, nil)
		if hit != nil && supported {
			if stepped, ok := c.stepUp(box, axis, delta, solids); ok {
				box = stepped
				continue
			}
		}
		box = box.Offset(axisVector(axis, moved))
		if hit == nil {
			continue
		}
		result.Flags |= motor.CollidedSides
		normal := axisVector(axis, -sign(delta))
		point := box.Center()
		if delta > 0 {
			point[axis] = box.Max[axis]
		} else {
			point[axis] = box.Min[axis]
		}
		result.Contacts = append(result.Contacts, contactWith(hit, normal, point, side))
	}

	c.position = c.position.Add(box.Min.Sub(start.Min))
	return result
}

// stepUp tries the blocked horizontal move raised by the step offset and
// then drops back onto whatever is below. It fails when there is no
// headroom, the raised move is blocked as well, or there is nothing to land
// on within the step height.
func (c *Character) stepUp(box AABB, axis int, delta float64, solids []*Solid) (AABB, bool) {
	step := c.capsule.StepOffset
	if step <= 0 {
		return box, false
	}
	rise, _ := sweepAxis(box, axisY, step, solids, nil)
	if rise < step-CollisionAxisTolerance {
		return box, false
	}
	raised := box.Offset(axisVector(axisY, rise))
	moved, hit := sweepAxis(raised, axis, delta, solids, nil)
	if hit != nil {
		return box, false
	}
	ahead := raised.Offset(axisVector(axis, moved))
	drop, floor := sweepAxis(ahead, axisY, -rise, solids, nil)
	if floor == nil {
		return box, false
	}
	return ahead.Offset(axisVector(axisY, drop)), true
}

func contactWith(s *Solid, normal, point, dir mgl64.Vec3) motor.Contact {
	return motor.Contact{
		Normal:        normal,
		Point:         point,
		MoveDirection: dir,
		Surface:       s,
		Body:          s.Body(),
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
