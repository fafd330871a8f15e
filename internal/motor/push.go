package motor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// push sets the velocity of a touched dynamic body to the horizontal part
// of the move direction times the push power. The character's own motion
// is not affected.
func (c *Controller) push(contact Contact) {
	body := contact.Body
	if body == nil || body.IsKinematic() {
		return
	}
	// Mostly downward contacts are the character stepping onto the body.
	if contact.MoveDirection.Y() < pushMinMoveY {
		return
	}
	dir := mgl64.Vec3{contact.MoveDirection.X(), 0, contact.MoveDirection.Z()}
	body.SetVelocity(dir.Mul(c.settings.Movement.PushPower))
}
