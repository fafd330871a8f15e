package motor

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tick = 1.0 / 60.0

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

func approxVec(t *testing.T, got, want mgl64.Vec3, tol float64, field string) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Fatalf("%s = %v, want %v (tol=%.8f)", field, got, want, tol)
	}
}

// planeMover is an infinite ground plane through (0, floor, 0). The body
// position is the bottom of the capsule and is clamped onto the plane.
type planeMover struct {
	pos     mgl64.Vec3
	rot     mgl64.Quat
	capsule Capsule

	hasFloor bool
	floor    float64
	normal   mgl64.Vec3
	surface  Surface
	body     Rigidbody

	moves []mgl64.Vec3
}

func newFlatMover() *planeMover {
	return &planeMover{
		rot:      mgl64.QuatIdent(),
		capsule:  Capsule{Height: 2, Radius: 0.5, Center: 1, StepOffset: 0.3},
		hasFloor: true,
		normal:   up,
	}
}

func newAirMover(height float64) *planeMover {
	m := newFlatMover()
	m.hasFloor = false
	m.pos = mgl64.Vec3{0, height, 0}
	return m
}

// newSlopeMover builds a plane whose normal has the given upward component,
// tilted around the X axis.
func newSlopeMover(normalY float64) *planeMover {
	m := newFlatMover()
	m.normal = mgl64.Vec3{0, normalY, -math.Sqrt(1 - normalY*normalY)}
	return m
}

func (m *planeMover) floorAt(p mgl64.Vec3) float64 {
	// n.(p - o) = 0 solved for y.
	return m.floor - (m.normal.X()*p.X()+m.normal.Z()*p.Z())/m.normal.Y()
}

func (m *planeMover) Position() mgl64.Vec3     { return m.pos }
func (m *planeMover) SetPosition(p mgl64.Vec3) { m.pos = p }
func (m *planeMover) Rotation() mgl64.Quat     { return m.rot }
func (m *planeMover) SetRotation(q mgl64.Quat) { m.rot = q }
func (m *planeMover) Capsule() Capsule         { return m.capsule }

func (m *planeMover) Move(d mgl64.Vec3) MoveResult {
	m.moves = append(m.moves, d)
	target := m.pos.Add(d)
	var result MoveResult
	if m.hasFloor {
		if y := m.floorAt(target); target.Y() < y {
			target = withY(target, y)
			result.Flags |= CollidedBelow
			result.Contacts = append(result.Contacts, Contact{
				Normal:        m.normal,
				Point:         target,
				MoveDirection: normalizeOrZero(d),
				Surface:       m.surface,
				Body:          m.body,
			})
		}
	}
	m.pos = target
	return result
}

// fakePlatform is a Surface whose transform the test drives.
type fakePlatform struct {
	valid    bool
	tr       Transform
	material *Material
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{valid: true, tr: NewTransform(mgl64.Vec3{}, mgl64.QuatIdent())}
}

func (p *fakePlatform) Valid() bool { return p.valid }

func (p *fakePlatform) Transform() Transform {
	if !p.valid {
		panic("Transform called on a destroyed platform")
	}
	return p.tr
}

func (p *fakePlatform) translate(d mgl64.Vec3) {
	p.tr.Position = p.tr.Position.Add(d)
}

type materialPlatform struct {
	*fakePlatform
	mat Material
}

func (p materialPlatform) Material() Material { return p.mat }

type fakeBody struct {
	kinematic bool
	velocity  mgl64.Vec3
	writes    int
}

func (b *fakeBody) IsKinematic() bool        { return b.kinematic }
func (b *fakeBody) Velocity() mgl64.Vec3     { return b.velocity }
func (b *fakeBody) SetVelocity(v mgl64.Vec3) { b.velocity = v; b.writes++ }

func newTestController(t *testing.T, s Settings, m Mover) *Controller {
	t.Helper()
	c, err := New(s, m, WithLogger(discardLogger()))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

// settle steps with no input until the controller rests on the ground.
func settle(t *testing.T, c *Controller, dt float64) {
	t.Helper()
	for i := 0; i < 10; i++ {
		c.FixedUpdate(Input{}, dt)
	}
	if !c.Grounded() {
		t.Fatalf("controller did not settle on the ground")
	}
}

func steps(c *Controller, n int, in Input, dt float64) {
	for i := 0; i < n; i++ {
		c.FixedUpdate(in, dt)
	}
}
