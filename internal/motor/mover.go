package motor

//go:generate mockgen -source=mover.go -destination=mocks/mock_mover.go -package=mocks

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CollisionFlags reports which sides of the capsule were blocked during a move.
type CollisionFlags uint8

const (
	CollidedSides CollisionFlags = 1 << iota
	CollidedAbove
	CollidedBelow

	CollidedNone CollisionFlags = 0
)

func (f CollisionFlags) Has(flag CollisionFlags) bool {
	return f&flag != 0
}

// Capsule describes the collider the mover sweeps. Center is the offset of
// the capsule centre from the body position along the up axis.
type Capsule struct {
	Height     float64
	Radius     float64
	Center     float64
	StepOffset float64
}

// FootOffset is the height of the lower hemisphere centre above the body
// position. It is used as the anchor point on moving platforms.
func (c Capsule) FootOffset() float64 {
	return c.Center - c.Height*0.5 + c.Radius
}

// Contact is one hit reported by the mover while sweeping.
type Contact struct {
	Normal mgl64.Vec3
	Point  mgl64.Vec3
	// MoveDirection is the normalized direction the mover was sweeping in
	// when the contact happened.
	MoveDirection mgl64.Vec3
	Surface       Surface
	// Body is nil when the touched object has no simulated rigid body.
	Body Rigidbody
}

type MoveResult struct {
	Flags    CollisionFlags
	Contacts []Contact
}

// Mover sweeps the character capsule through the world.
type Mover interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)
	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)
	Capsule() Capsule
	// Move sweeps the capsule by displacement, sliding along whatever it
	// hits, and reports every contact in the order it occurred.
	Move(displacement mgl64.Vec3) MoveResult
}

// Surface is a non-owning handle to the object a contact touched. Valid
// reports false once the object was destroyed; nothing else may be called
// on an invalid surface.
type Surface interface {
	Valid() bool
	Transform() Transform
}

// MaterialSurface is implemented by surfaces that carry a physical material.
type MaterialSurface interface {
	Surface
	Material() Material
}

// Rigidbody is a simulated body that can be pushed by the character.
// SetVelocity assigns rather than accumulates, so when two characters touch
// the same body in one tick the last writer wins.
type Rigidbody interface {
	IsKinematic() bool
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
}

// Material identifies the physical material of a surface for cosmetic cues
// such as footstep sounds.
type Material struct {
	Name string
}

// DefaultMaterial is reported when a surface has no material of its own.
var DefaultMaterial = Material{Name: "default"}
