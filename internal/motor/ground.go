package motor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// classifyGround decides whether a contact defines the ground for this
// step. current is the best ground normal seen so far in the step, last is
// the ground normal of the previous step and lastHitPoint its contact point.
//
// A contact only counts when it faces up more than anything seen so far and
// the mover was heading down, so side walls touched while walking never
// replace the floor. A contact that barely moved from the previous hit
// keeps the previous normal to avoid flicker between coincident contacts.
func classifyGround(c Contact, current, last, lastHitPoint mgl64.Vec3) (mgl64.Vec3, bool) {
	n := c.Normal
	if !(n.Y() > 0 && n.Y() > current.Y() && c.MoveDirection.Y() < 0) {
		return current, false
	}
	if lenSqr(c.Point.Sub(lastHitPoint)) > hitPointEpsilonSqr || last == (mgl64.Vec3{}) {
		return n, true
	}
	return last, true
}

// isGroundedNormal reports whether a ground normal means the character is
// standing on something.
func isGroundedNormal(n mgl64.Vec3) bool {
	return n.Y() > groundedMinNormalY
}

// Ground is the classification of the current ground normal.
type Ground struct {
	Normal mgl64.Vec3
	// Contact is true when anything is under the character.
	Contact bool
	// TooSteep is true when the contact is steeper than the slope limit.
	TooSteep bool
}

// Walkable is ground that permits normal steering.
func (g Ground) Walkable() bool {
	return g.Contact && !g.TooSteep
}

func classifyNormal(n mgl64.Vec3, steepThreshold float64) Ground {
	g := Ground{Normal: n, Contact: isGroundedNormal(n)}
	g.TooSteep = g.Contact && n.Y() <= steepThreshold
	return g
}

// supports reports whether the ground holds the character up at all. Too
// steep ground only does so while sliding is enabled.
func (g Ground) supports(sliding bool) bool {
	return g.Walkable() || (g.Contact && sliding)
}
