package world

import (
	"math"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/motor"
	"github.com/Versifine/stride/internal/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	// wanderInterval is how long a wandering character keeps its heading.
	wanderInterval        = 1.5
	defaultNearDistance   = 0.9
	defaultFollowDistance = 3.0
	minFacingInput        = 0.1
)

// updatePlatforms moves every platform along its path and spins it by its
// yaw rate, then drops the ones whose lifetime ran out.
func (w *World) updatePlatforms(e *ecs.ECS) {
	now := w.time + w.dt
	var expired []*donburi.Entry
	Platform.Each(e.World, func(entry *donburi.Entry) {
		p := Platform.Get(entry)
		if p.ExpiresAt > 0 && now >= p.ExpiresAt {
			expired = append(expired, entry)
			return
		}
		if p.Path[0] != nil {
			var base mgl64.Vec3
			for axis, seq := range p.Path {
				v, _, done := seq.Update(float32(w.dt))
				if done {
					seq.Reset()
				}
				base[axis] = float64(v)
			}
			w.space.SetBounds(p.Solid, physics.BoxAt(base, p.Size))
		}
		if p.YawRate != 0 {
			p.Yaw = math.Mod(p.Yaw+p.YawRate*w.dt, 2*math.Pi)
			p.Solid.SetRotation(mgl64.QuatRotate(p.Yaw, mgl64.Vec3{0, 1, 0}))
		}
	})
	for _, entry := range expired {
		w.removePlatform(entry)
	}
}

// updateScripts picks the intent for the coming tick.
func (w *World) updateScripts(e *ecs.ECS) {
	Script.Each(e.World, func(entry *donburi.Entry) {
		s := Script.Get(entry)
		c := Character.Get(entry)
		if s.Wander != nil {
			c.Input = wander(s, w.time)
			return
		}
		in, ok := current(s, w.time)
		if !ok {
			c.Input = motor.Input{}
			return
		}
		c.Input = w.resolve(c, in)
	})
}

// current advances the cursor to the last intent that has started.
func current(s *ScriptData, now float64) (config.IntentConfig, bool) {
	for s.Cursor+1 < len(s.Timeline) && s.Timeline[s.Cursor+1].At <= now {
		s.Cursor++
	}
	if len(s.Timeline) == 0 || s.Timeline[s.Cursor].At > now {
		return config.IntentConfig{}, false
	}
	return s.Timeline[s.Cursor], true
}

// resolve turns an intent into controller input. A jump is held for as long
// as its entry is current.
func (w *World) resolve(c *CharacterData, in config.IntentConfig) motor.Input {
	input := motor.Input{Move: in.Move, Jump: in.Jump}
	switch {
	case in.Follow != "":
		input.Move = mgl64.Vec3{}
		if other := w.Character(in.Follow); other != nil && other.Name != c.Name {
			input.Move = seek(c.Body.Position(), other.Body.Position(), nearOr(in.Near, defaultFollowDistance))
		}
	case in.Target != nil:
		input.Move = seek(c.Body.Position(), *in.Target, nearOr(in.Near, defaultNearDistance))
	}
	return input
}

// seek is the horizontal unit direction from pos to target, or zero within
// near of it.
func seek(pos, target mgl64.Vec3, near float64) mgl64.Vec3 {
	d := target.Sub(pos)
	d[1] = 0
	l := d.Len()
	if l <= near {
		return mgl64.Vec3{}
	}
	return d.Mul(1 / l)
}

func nearOr(near, fallback float64) float64 {
	if near > 0 {
		return near
	}
	return fallback
}

func wander(s *ScriptData, now float64) motor.Input {
	if now >= s.NextTurn {
		angle := s.Wander.Float64() * 2 * math.Pi
		s.Heading = mgl64.Vec3{math.Sin(angle), 0, math.Cos(angle)}
		s.NextTurn = now + wanderInterval
	}
	return motor.Input{Move: s.Heading}
}

// faceHeading turns the character so its forward axis (+Z) points along the
// horizontal move direction. Idle characters keep their rotation, which lets
// a turning platform carry it.
func faceHeading(body *physics.Character, move mgl64.Vec3) {
	if math.Hypot(move.X(), move.Z()) < minFacingInput {
		return
	}
	yaw := math.Atan2(move.X(), move.Z())
	body.SetRotation(mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0}))
}

func (w *World) updateCharacters(e *ecs.ECS) {
	var bodies []*physics.Character
	Character.Each(e.World, func(entry *donburi.Entry) {
		c := Character.Get(entry)
		if c.Controller.Controllable() {
			faceHeading(c.Body, c.Input.Move)
		}
		c.Controller.FixedUpdate(c.Input, w.dt)
		bodies = append(bodies, c.Body)
	})
	if len(bodies) > 1 {
		physics.Separate(bodies)
	}
}

func (w *World) updateCrates(e *ecs.ECS) {
	Crate.Each(e.World, func(entry *donburi.Entry) {
		Crate.Get(entry).Body.Step(w.space, w.dt)
	})
}
