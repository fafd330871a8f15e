package world

import (
	"fmt"
	"math/rand/v2"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/motor"
	"github.com/Versifine/stride/internal/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func (w *World) spawnBox(b config.BoxConfig) *donburi.Entry {
	solid := physics.NewSolid(physics.BoxAt(b.Position, b.Size), motor.Material{Name: b.Material})
	w.space.Add(solid)

	entry := w.ecs.World.Entry(w.ecs.World.Create(Box))
	Box.SetValue(entry, BoxData{Solid: solid})
	return entry
}

func (w *World) spawnCrate(c config.CrateConfig) *donburi.Entry {
	solid := physics.NewSolid(physics.BoxAt(c.Position, c.Size), motor.Material{Name: c.Material})
	body := physics.NewBody(solid, c.Kinematic)
	w.space.Add(solid)

	entry := w.ecs.World.Entry(w.ecs.World.Create(Crate))
	Crate.SetValue(entry, CrateData{Body: body})
	return entry
}

func (w *World) spawnPlatform(p config.PlatformConfig) *donburi.Entry {
	solid := physics.NewSolid(physics.BoxAt(p.Position, p.Size), motor.Material{Name: p.Material})
	w.space.Add(solid)

	entry := w.ecs.World.Entry(w.ecs.World.Create(Platform))
	data := PlatformData{
		Name:      p.Name,
		Solid:     solid,
		Origin:    p.Position,
		Size:      p.Size,
		YawRate:   mgl64.DegToRad(p.YawRate),
		ExpiresAt: expiry(p.Lifetime),
	}
	if len(p.Path) > 0 {
		data.Path = pathSequences(p.Position, p.Path, p.SegmentDuration)
	}
	Platform.SetValue(entry, data)
	return entry
}

// pathSequences tweens each axis from origin through the waypoints and back
// to origin, one segment per SegmentDuration.
func pathSequences(origin mgl64.Vec3, path []mgl64.Vec3, segment float64) [3]*gween.Sequence {
	points := make([]mgl64.Vec3, 0, len(path)+2)
	points = append(points, origin)
	for _, p := range path {
		points = append(points, origin.Add(p))
	}
	points = append(points, origin)

	var seqs [3]*gween.Sequence
	for axis := range seqs {
		seq := gween.NewSequence()
		for i := 1; i < len(points); i++ {
			seq.Add(gween.New(
				float32(points[i-1][axis]),
				float32(points[i][axis]),
				float32(segment),
				ease.Linear,
			))
		}
		seqs[axis] = seq
	}
	return seqs
}

func (w *World) spawnCharacter(index int, c config.CharacterConfig) (*donburi.Entry, error) {
	body := physics.NewCharacter(w.space, c.Position, physics.DefaultCapsule())
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("character-%d", index)
	}
	ctrl, err := motor.New(w.settings, body, motor.WithLogger(w.lg.With("character", name)))
	if err != nil {
		return nil, err
	}

	entry := w.ecs.World.Entry(w.ecs.World.Create(Character, Script))
	Character.SetValue(entry, CharacterData{
		Name:       name,
		Controller: ctrl,
		Body:       body,
	})
	script := ScriptData{Timeline: c.Script}
	if len(c.Script) == 0 {
		script.Wander = rand.New(rand.NewPCG(w.seed, uint64(index)))
	}
	Script.SetValue(entry, script)

	w.observe(Character.Get(entry))
	return entry, nil
}

// observe counts the controller events into the character and the world.
// CharacterData lives in donburi storage, so the handlers look it up again
// instead of holding the pointer.
func (w *World) observe(c *CharacterData) {
	name := c.Name
	bump := func(f func(*Counters)) {
		f(&w.counters)
		if ch := w.Character(name); ch != nil {
			f(&ch.Counters)
		}
	}
	c.Controller.OnJump(func(motor.JumpEvent) { bump(func(n *Counters) { n.Jumps++ }) })
	c.Controller.OnLand(func(motor.LandEvent) { bump(func(n *Counters) { n.Landings++ }) })
	c.Controller.OnFall(func(motor.FallEvent) { bump(func(n *Counters) { n.Falls++ }) })
	c.Controller.OnFootstep(func(motor.FootstepEvent) { bump(func(n *Counters) { n.Footsteps++ }) })
}
