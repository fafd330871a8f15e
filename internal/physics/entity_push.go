package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	characterPushMaxPerOther = 0.08
	characterPushMaxPerTick  = 0.12
	characterPushStrength    = 0.7
)

// SeparationPush returns the horizontal displacement that moves c out of the
// characters it overlaps. Characters do not collide with each other in the
// sweep, so crowds are resolved softly over a few ticks instead.
func SeparationPush(c *Character, others []*Character) mgl64.Vec3 {
	if len(others) == 0 {
		return mgl64.Vec3{}
	}

	var pushX, pushZ float64
	self := c.Bounds()
	pos := c.Position()

	for _, other := range others {
		if other == nil || other == c {
			continue
		}
		ob := other.Bounds()
		if self.Max.Y() <= ob.Min.Y() || self.Min.Y() >= ob.Max.Y() {
			continue
		}

		op := other.Position()
		dx := pos.X() - op.X()
		dz := pos.Z() - op.Z()
		dist2 := dx*dx + dz*dz

		minDist := c.capsule.Radius + other.capsule.Radius
		if dist2 >= minDist*minDist {
			continue
		}

		dist := math.Sqrt(dist2)
		if dist < CollisionAxisTolerance {
			dx = 1
			dz = 0
			dist = 1
		}

		overlap := minDist - dist
		if overlap <= 0 {
			continue
		}

		mag := math.Min(overlap*characterPushStrength, characterPushMaxPerOther)
		pushX += (dx / dist) * mag
		pushZ += (dz / dist) * mag
	}

	length := math.Sqrt(pushX*pushX + pushZ*pushZ)
	if length <= CollisionAxisTolerance {
		return mgl64.Vec3{}
	}
	if length > characterPushMaxPerTick {
		scale := characterPushMaxPerTick / length
		pushX *= scale
		pushZ *= scale
	}
	return mgl64.Vec3{pushX, 0, pushZ}
}

// Separate applies SeparationPush to every character, sweeping each push
// against the world so nobody is pushed into a wall.
func Separate(chars []*Character) {
	pushes := make([]mgl64.Vec3, len(chars))
	for i, c := range chars {
		pushes[i] = SeparationPush(c, chars)
	}
	for i, c := range chars {
		if pushes[i] != (mgl64.Vec3{}) {
			c.Move(pushes[i])
		}
	}
}
