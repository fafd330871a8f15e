package motor

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNew_RejectsInvalidInput(t *testing.T) {
	if _, err := New(DefaultSettings(), nil); err == nil {
		t.Fatal("New(nil mover) error = nil")
	}

	s := DefaultSettings()
	s.Movement.Gravity = 0
	_, err := New(s, newFlatMover())
	if !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("New() error = %v, want ErrInvalidSettings", err)
	}
}

func TestNew_CopiesSlopeCurve(t *testing.T) {
	s := DefaultSettings()
	c := newTestController(t, s, newFlatMover())
	s.Movement.SlopeSpeedMultiplier[0].Value = 42

	if got := c.Settings().Movement.SlopeSpeedMultiplier[0].Value; got != 1 {
		t.Fatalf("controller curve changed with caller settings: %v", got)
	}
}

func TestFixedUpdate_GroundAccelerationLimitsFirstTick(t *testing.T) {
	c := newTestController(t, DefaultSettings(), newFlatMover())
	settle(t, c, tick)

	c.FixedUpdate(Input{Move: mgl64.Vec3{0, 0, 1}}, tick)

	v := c.Velocity()
	approxEqual(t, v.Z(), 0.5, 1e-9, "velocity.z")
	approxEqual(t, v.X(), 0, 1e-12, "velocity.x")
	approxEqual(t, v.Y(), 0, 1e-12, "velocity.y")
	if !c.Grounded() {
		t.Fatal("grounded = false after walking on flat ground")
	}
}

func TestFixedUpdate_ReachesMaxForwardSpeed(t *testing.T) {
	m := newFlatMover()
	c := newTestController(t, DefaultSettings(), m)
	settle(t, c, tick)

	steps(c, 60, Input{Move: mgl64.Vec3{0, 0, 5}}, tick)

	approxEqual(t, c.Velocity().Z(), 3, 1e-6, "velocity.z")
	before := m.pos
	c.FixedUpdate(Input{Move: mgl64.Vec3{0, 0, 1}}, tick)
	approxEqual(t, m.pos.Z()-before.Z(), 3*tick, 1e-6, "distance per tick")
}

func TestFixedUpdate_SpeedFollowsCharacterRotation(t *testing.T) {
	m := newFlatMover()
	// Facing +X: a world +X input is local forward.
	m.rot = mgl64.QuatRotate(math.Pi/2, up)
	c := newTestController(t, DefaultSettings(), m)
	settle(t, c, tick)

	steps(c, 60, Input{Move: mgl64.Vec3{1, 0, 0}}, tick)
	approxEqual(t, c.Velocity().X(), 3, 1e-6, "forward velocity.x")

	steps(c, 60, Input{Move: mgl64.Vec3{0, 0, 1}}, tick)
	approxEqual(t, c.Velocity().Z(), 2, 1e-6, "sideways velocity.z")
	approxEqual(t, c.Velocity().X(), 0, 1e-6, "sideways velocity.x")
}

func TestFixedUpdate_JumpLaunchAndFirstAirborneTick(t *testing.T) {
	c := newTestController(t, DefaultSettings(), newFlatMover())
	settle(t, c, tick)

	var jumps []JumpEvent
	c.OnJump(func(evt JumpEvent) { jumps = append(jumps, evt) })

	c.FixedUpdate(Input{Jump: true}, tick)

	launch := math.Sqrt(2 * 9.81 * 1.0)
	approxEqual(t, launch, 4.429, 1e-3, "launch speed")
	approxEqual(t, c.Velocity().Y(), launch, 1e-9, "velocity.y after launch")
	if !c.Jumping() || c.Grounded() {
		t.Fatalf("jumping=%v grounded=%v, want true/false", c.Jumping(), c.Grounded())
	}
	if len(jumps) != 1 {
		t.Fatalf("jump events = %d, want 1", len(jumps))
	}
	approxVec(t, jumps[0].Direction, up, 1e-12, "jump direction")
	if jumps[0].Material != DefaultMaterial {
		t.Fatalf("jump material = %v, want default", jumps[0].Material)
	}

	c.FixedUpdate(Input{}, tick)
	approxEqual(t, c.Velocity().Y(), launch-9.81*tick, 1e-9, "velocity.y one tick after launch")
}

func jumpApex(t *testing.T, s Settings, hold bool, dt float64) float64 {
	t.Helper()
	m := newFlatMover()
	c := newTestController(t, s, m)
	settle(t, c, dt)

	c.FixedUpdate(Input{Jump: true}, dt)
	apex := m.pos.Y()
	for i := 0; i < 100000 && c.Velocity().Y() > 0; i++ {
		c.FixedUpdate(Input{Jump: hold}, dt)
		apex = max(apex, m.pos.Y())
	}
	return apex
}

func TestFixedUpdate_JumpApexMatchesBaseHeight(t *testing.T) {
	s := DefaultSettings()
	apex := jumpApex(t, s, false, 1.0/600)
	approxEqual(t, apex, s.Jumping.BaseHeight, 0.01, "apex")
}

func TestFixedUpdate_HeldJumpAddsExtraHeight(t *testing.T) {
	s := DefaultSettings()
	apex := jumpApex(t, s, true, 1.0/600)
	approxEqual(t, apex, s.Jumping.BaseHeight+s.Jumping.ExtraHeight, 0.03, "apex")
}

func TestFixedUpdate_ZeroBaseHeightStaysFinite(t *testing.T) {
	s := DefaultSettings()
	s.Jumping.BaseHeight = 0
	m := newFlatMover()
	c := newTestController(t, s, m)
	settle(t, c, tick)

	for i := 0; i < 30; i++ {
		c.FixedUpdate(Input{Jump: true}, tick)
		v := c.Velocity()
		if !finite(v.X()) || !finite(v.Y()) || !finite(v.Z()) || !finite(m.pos.Y()) {
			t.Fatalf("tick %d: velocity=%v position=%v", i, v, m.pos)
		}
	}
	if m.pos.Y() > 1e-9 {
		t.Fatalf("position.y = %v, want no lift-off", m.pos.Y())
	}
}

func TestFixedUpdate_FallSpeedIsClamped(t *testing.T) {
	c := newTestController(t, DefaultSettings(), newAirMover(1000))

	for i := 0; i < 600; i++ {
		c.FixedUpdate(Input{}, tick)
		if vy := c.Velocity().Y(); vy < -20-1e-9 {
			t.Fatalf("tick %d: velocity.y = %v, below -max fall speed", i, vy)
		}
	}
	approxEqual(t, c.Velocity().Y(), -20, 1e-9, "terminal velocity.y")
}

func TestFixedUpdate_RestingEquilibrium(t *testing.T) {
	m := newFlatMover()
	c := newTestController(t, DefaultSettings(), m)

	for i := 0; i < 300; i++ {
		c.FixedUpdate(Input{}, tick)
		if v := c.Velocity(); v != (mgl64.Vec3{}) {
			t.Fatalf("tick %d: velocity = %v, want zero", i, v)
		}
	}
	if !c.Grounded() {
		t.Fatal("grounded = false at rest")
	}
	approxEqual(t, m.pos.Y(), 0, 1e-12, "position.y")
}

func TestFixedUpdate_SteepSlope(t *testing.T) {
	t.Run("sliding disabled", func(t *testing.T) {
		s := DefaultSettings()
		s.Sliding.Enabled = false
		c := newTestController(t, s, newSlopeMover(0.3))
		landed := 0
		c.OnLand(func(LandEvent) { landed++ })

		steps(c, 30, Input{Move: mgl64.Vec3{0, 0, 1}}, tick)

		if c.Grounded() || c.Sliding() || landed != 0 {
			t.Fatalf("grounded=%v sliding=%v landed=%d, want false/false/0", c.Grounded(), c.Sliding(), landed)
		}
		c.FixedUpdate(Input{Jump: true}, tick)
		if c.Jumping() {
			t.Fatal("jumped from too-steep ground")
		}
	})

	t.Run("sliding enabled", func(t *testing.T) {
		m := newSlopeMover(0.3)
		c := newTestController(t, DefaultSettings(), m)

		steps(c, 30, Input{}, tick)

		if c.Grounded() {
			t.Fatal("grounded = true on a 0.3 normal")
		}
		if !c.Sliding() {
			t.Fatal("sliding = false on a 0.3 normal")
		}
		if c.GroundNormal().Y() <= 0 {
			t.Fatalf("ground normal = %v, want a contact", c.GroundNormal())
		}
		// Downhill is -Z on this plane.
		if c.Velocity().Z() >= 0 {
			t.Fatalf("velocity = %v, want sliding downhill", c.Velocity())
		}
	})

	t.Run("walkable slope", func(t *testing.T) {
		c := newTestController(t, DefaultSettings(), newSlopeMover(0.9))
		steps(c, 10, Input{}, tick)
		if !c.Grounded() || c.Sliding() {
			t.Fatalf("grounded=%v sliding=%v, want true/false", c.Grounded(), c.Sliding())
		}
	})
}

func TestFixedUpdate_SteepJumpBlendsTowardNormal(t *testing.T) {
	m := newSlopeMover(0.3)
	c := newTestController(t, DefaultSettings(), m)
	steps(c, 30, Input{}, tick)

	c.FixedUpdate(Input{Jump: true}, tick)

	if !c.Jumping() {
		t.Fatal("no jump while sliding")
	}
	want := slerpDirection(up, m.normal, 0.5)
	approxVec(t, c.JumpState().JumpDir, want, 1e-9, "jump direction")
}

func TestFixedUpdate_InvalidTimeStepIsNoop(t *testing.T) {
	m := newFlatMover()
	c := newTestController(t, DefaultSettings(), m)
	settle(t, c, tick)
	c.FixedUpdate(Input{Move: mgl64.Vec3{0, 0, 1}}, tick)

	motion, jump, now, pos, moves := c.Motion(), c.JumpState(), c.Now(), m.pos, len(m.moves)
	for _, dt := range []float64{0, -tick, math.NaN(), math.Inf(1)} {
		c.FixedUpdate(Input{Move: mgl64.Vec3{1, 0, 0}, Jump: true}, dt)
	}

	if c.Motion() != motion || c.JumpState() != jump || c.Now() != now || m.pos != pos || len(m.moves) != moves {
		t.Fatal("state changed for a non-positive time step")
	}
}

func TestFixedUpdate_NonFiniteInputIsIgnored(t *testing.T) {
	c := newTestController(t, DefaultSettings(), newFlatMover())
	settle(t, c, tick)

	c.FixedUpdate(Input{Move: mgl64.Vec3{math.NaN(), 0, math.Inf(1)}}, tick)

	if c.Velocity() != (mgl64.Vec3{}) {
		t.Fatalf("velocity = %v, want zero", c.Velocity())
	}
}

func TestFixedUpdate_JumpPressBeforeLanding(t *testing.T) {
	t.Run("fresh press jumps on landing", func(t *testing.T) {
		m := newFlatMover()
		m.pos = mgl64.Vec3{0, 0.05, 0}
		c := newTestController(t, DefaultSettings(), m)
		jumps := 0
		c.OnJump(func(JumpEvent) { jumps++ })

		steps(c, 10, Input{Jump: true}, tick)

		if jumps != 1 {
			t.Fatalf("jumps = %d, want 1", jumps)
		}
	})

	t.Run("stale press does not", func(t *testing.T) {
		m := newFlatMover()
		m.pos = mgl64.Vec3{0, 1, 0}
		c := newTestController(t, DefaultSettings(), m)
		jumps := 0
		c.OnJump(func(JumpEvent) { jumps++ })

		steps(c, 60, Input{Jump: true}, tick)

		if jumps != 0 || !c.Grounded() {
			t.Fatalf("jumps=%d grounded=%v, want 0/true", jumps, c.Grounded())
		}
	})
}

func TestFixedUpdate_WithoutControl(t *testing.T) {
	c := newTestController(t, DefaultSettings(), newFlatMover())
	settle(t, c, tick)
	steps(c, 30, Input{Move: mgl64.Vec3{0, 0, 1}}, tick)

	c.SetControllable(false)
	if c.Controllable() {
		t.Fatal("Controllable() = true after disabling")
	}
	steps(c, 30, Input{Move: mgl64.Vec3{0, 0, 1}, Jump: true}, tick)

	if c.Jumping() {
		t.Fatal("jumped without control")
	}
	// Ground friction still brings the character to a stop.
	approxEqual(t, c.Velocity().Z(), 0, 1e-9, "velocity.z")
}

func TestFixedUpdate_WalkOffEdge(t *testing.T) {
	m := newFlatMover()
	c := newTestController(t, DefaultSettings(), m)
	settle(t, c, tick)

	var falls []FallEvent
	c.OnFall(func(evt FallEvent) { falls = append(falls, evt) })
	m.hasFloor = false

	c.FixedUpdate(Input{}, tick)

	if len(falls) != 1 || c.Grounded() {
		t.Fatalf("falls=%d grounded=%v, want 1/false", len(falls), c.Grounded())
	}
	// The ground push-down is undone when nothing was found.
	approxEqual(t, m.pos.Y(), -9.81*tick*tick, 1e-9, "position.y")
	approxEqual(t, c.Velocity().Y(), -9.81*tick, 1e-9, "velocity.y")
}

func TestFixedUpdate_EventsCarryMaterial(t *testing.T) {
	m := newFlatMover()
	m.pos = mgl64.Vec3{0, 0.5, 0}
	m.surface = materialPlatform{fakePlatform: newFakePlatform(), mat: Material{Name: "grass"}}
	c := newTestController(t, DefaultSettings(), m)

	var lands []LandEvent
	var footsteps []FootstepEvent
	c.OnLand(func(evt LandEvent) { lands = append(lands, evt) })
	c.OnFootstep(func(evt FootstepEvent) { footsteps = append(footsteps, evt) })

	steps(c, 30, Input{}, tick)
	steps(c, 120, Input{Move: mgl64.Vec3{0, 0, 1}}, tick)

	if len(lands) != 1 || lands[0].Material.Name != "grass" {
		t.Fatalf("lands = %+v, want one on grass", lands)
	}
	// About 5.8m walked with a footstep every metre.
	if len(footsteps) < 4 || len(footsteps) > 6 {
		t.Fatalf("footsteps = %d, want 4..6", len(footsteps))
	}
	for _, f := range footsteps {
		if f.Material.Name != "grass" {
			t.Fatalf("footstep material = %q, want grass", f.Material.Name)
		}
	}
}

func TestMeasureVelocity(t *testing.T) {
	c := newTestController(t, DefaultSettings(), newFlatMover())

	t.Run("sideways slide adds nothing", func(t *testing.T) {
		got := c.measureVelocity(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{2, 0, 1}.Mul(tick), tick)
		approxVec(t, got, mgl64.Vec3{1, 0, 0}, 1e-9, "velocity")
	})
	t.Run("blocked horizontal", func(t *testing.T) {
		got := c.measureVelocity(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{-1, 0, 0}.Mul(tick), tick)
		approxVec(t, got, mgl64.Vec3{}, 1e-9, "velocity")
	})
	t.Run("no intended horizontal", func(t *testing.T) {
		got := c.measureVelocity(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{1, -1, 1}.Mul(tick), tick)
		approxVec(t, got, mgl64.Vec3{0, -1, 0}, 1e-9, "velocity")
	})
	t.Run("forced descent keeps intended", func(t *testing.T) {
		got := c.measureVelocity(mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, -5, 0}.Mul(tick), tick)
		approxEqual(t, got.Y(), -1, 1e-9, "velocity.y")
	})
	t.Run("ceiling stops held jump", func(t *testing.T) {
		c.jump.HoldingJumpButton = true
		got := c.measureVelocity(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{}, tick)
		approxEqual(t, got.Y(), 0, 1e-12, "velocity.y")
		if c.jump.HoldingJumpButton {
			t.Fatal("holding jump after hitting a ceiling")
		}
	})
}

func TestMaxSpeedInDirection(t *testing.T) {
	m := DefaultSettings().Movement
	diag := mgl64.Vec3{1, 0, 1}.Normalize()
	tests := []struct {
		name string
		dir  mgl64.Vec3
		want float64
	}{
		{"forward", mgl64.Vec3{0, 0, 1}, 3},
		{"backwards", mgl64.Vec3{0, 0, -1}, 2},
		{"sideways", mgl64.Vec3{-1, 0, 0}, 2},
		{"diagonal", diag, 1 / math.Sqrt(0.5/4+0.5/9)},
		{"zero", mgl64.Vec3{}, 0},
		{"vertical only", mgl64.Vec3{0, 1, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxEqual(t, maxSpeedInDirection(m, tt.dir), tt.want, 1e-12, "max speed")
		})
	}
}

func TestAdjustGroundVelocityToNormal(t *testing.T) {
	n := mgl64.Vec3{0, 1, -1}.Normalize()
	got := adjustGroundVelocityToNormal(mgl64.Vec3{0, 0, 2}, n)
	approxEqual(t, got.Len(), 2, 1e-12, "length")
	approxEqual(t, got.Dot(n), 0, 1e-12, "normal component")
	if got.Y() <= 0 {
		t.Fatalf("velocity = %v, want uphill", got)
	}

	if got := adjustGroundVelocityToNormal(mgl64.Vec3{}, up); got != (mgl64.Vec3{}) {
		t.Fatalf("zero velocity adjusted to %v", got)
	}
}

func TestSlerpDirection(t *testing.T) {
	got := slerpDirection(up, mgl64.Vec3{1, 0, 0}, 0.5)
	approxVec(t, got, mgl64.Vec3{1, 1, 0}.Normalize(), 1e-9, "half way")

	approxVec(t, slerpDirection(up, mgl64.Vec3{1, 0, 0}, 0), up, 1e-9, "no blend")
	approxVec(t, slerpDirection(up, mgl64.Vec3{}, 1), up, 1e-12, "zero target")
}
