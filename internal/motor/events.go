package motor

import (
	"log/slog"

	"github.com/Versifine/stride/internal/event"
	"github.com/go-gl/mathgl/mgl64"
)

// JumpEvent is published when the character leaves the ground by jumping.
type JumpEvent struct {
	Position  mgl64.Vec3
	Direction mgl64.Vec3
	// Material is the material of the surface jumped from.
	Material Material
}

// LandEvent is published when the character touches supporting ground
// after being airborne.
type LandEvent struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Material Material
}

// FallEvent is published when the character loses ground without jumping.
type FallEvent struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

type FootstepEvent struct {
	Position mgl64.Vec3
	Material Material
}

type events struct {
	jump     *event.Topic[JumpEvent]
	land     *event.Topic[LandEvent]
	fall     *event.Topic[FallEvent]
	footstep *event.Topic[FootstepEvent]
}

func newEvents(lg *slog.Logger) events {
	return events{
		jump:     event.NewTopic[JumpEvent]("motor.jump", lg),
		land:     event.NewTopic[LandEvent]("motor.land", lg),
		fall:     event.NewTopic[FallEvent]("motor.fall", lg),
		footstep: event.NewTopic[FootstepEvent]("motor.footstep", lg),
	}
}

// OnJump registers h for jump take-offs and returns a function that
// removes it.
func (c *Controller) OnJump(h func(JumpEvent)) (cancel func()) {
	return c.events.jump.Subscribe(h)
}

func (c *Controller) OnLand(h func(LandEvent)) (cancel func()) {
	return c.events.land.Subscribe(h)
}

func (c *Controller) OnFall(h func(FallEvent)) (cancel func()) {
	return c.events.fall.Subscribe(h)
}

func (c *Controller) OnFootstep(h func(FootstepEvent)) (cancel func()) {
	return c.events.footstep.Subscribe(h)
}

// materialOf asks the surface for its material when it has one.
func materialOf(s Surface) *Material {
	ms, ok := s.(MaterialSurface)
	if !ok || !ms.Valid() {
		return nil
	}
	m := ms.Material()
	return &m
}

func (c *Controller) hitMaterial() Material {
	if c.motion.HitMaterial != nil {
		return *c.motion.HitMaterial
	}
	return DefaultMaterial
}
