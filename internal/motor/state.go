package motor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// noButtonPress marks JumpState.LastButtonDownTime when no press is pending.
const noButtonPress = -100.0

// freshPressWindow is how long a jump press stays usable, so a press made
// just before landing still jumps.
const freshPressWindow = 0.2

// hitPointEpsilonSqr is the squared distance a contact point must move
// before a new ground normal replaces the previous one.
const hitPointEpsilonSqr = 0.001

// groundedMinNormalY is the upward normal component above which the
// character counts as standing on something.
const groundedMinNormalY = 0.01

// pushMinMoveY rejects pushes while the character is mostly moving down
// onto the body, e.g. when landing on a crate.
const pushMinMoveY = -0.3

// settleTicks is how many fixed steps a newly touched platform needs before
// its velocity is known.
const settleTicks = 2

// MotionState is the per-step movement state of the character.
type MotionState struct {
	Velocity mgl64.Vec3
	// FrameVelocity is the platform velocity carried while airborne.
	FrameVelocity mgl64.Vec3
	Grounded      bool
	GroundNormal  mgl64.Vec3
	// LastGroundNormal is the ground normal of the previous step.
	LastGroundNormal mgl64.Vec3
	HitPoint         mgl64.Vec3
	LastHitPoint     mgl64.Vec3
	CollisionFlags   CollisionFlags
	HitMaterial      *Material
}

func newMotionState() MotionState {
	return MotionState{LastHitPoint: mgl64.Vec3{math.Inf(1), 0, 0}}
}

type JumpState struct {
	// Jumping is true from take-off until the next landing.
	Jumping            bool
	HoldingJumpButton  bool
	LastStartTime      float64
	LastButtonDownTime float64
	JumpDir            mgl64.Vec3
}

func newJumpState() JumpState {
	return JumpState{LastButtonDownTime: noButtonPress, JumpDir: up}
}

// PlatformState tracks the ground object the character stands on.
type PlatformState struct {
	// Hit is the ground surface touched during the latest move.
	Hit Surface
	// HitGround is set when the latest move touched ground at all, even
	// ground without a Surface.
	HitGround bool
	// Active is the platform the character is attached to.
	Active               Surface
	ActiveLocalPoint     mgl64.Vec3
	ActiveGlobalPoint    mgl64.Vec3
	ActiveLocalRotation  mgl64.Quat
	ActiveGlobalRotation mgl64.Quat
	LastTransform        Transform
	Velocity             mgl64.Vec3
	NewPlatform          bool

	pending pendingSubtract
}

// pendingSubtract is the deferred removal of a new platform's velocity from
// the character velocity after landing.
type pendingSubtract struct {
	surface Surface
	ticks   int
}

func (p pendingSubtract) armed() bool {
	return p.ticks > 0
}

func (s *PlatformState) reset() {
	*s = PlatformState{}
}
