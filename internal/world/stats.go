package world

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// Counters tallies controller events.
type Counters struct {
	Jumps     int
	Landings  int
	Falls     int
	Footsteps int
}

type CharacterStats struct {
	Name     string
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
	Counters Counters
}

// Stats is a snapshot of a run.
type Stats struct {
	RunID            uuid.UUID
	Ticks            int
	Time             float64
	Counters         Counters
	PlatformsRemoved int
	Characters       []CharacterStats
}

func (w *World) Stats() Stats {
	s := Stats{
		RunID:            w.runID,
		Ticks:            w.ticks,
		Time:             w.time,
		Counters:         w.counters,
		PlatformsRemoved: w.removed,
	}
	Character.Each(w.ecs.World, func(e *donburi.Entry) {
		c := Character.Get(e)
		s.Characters = append(s.Characters, CharacterStats{
			Name:     c.Name,
			Position: c.Body.Position(),
			Velocity: c.Controller.Velocity(),
			Grounded: c.Controller.Grounded(),
			Counters: c.Counters,
		})
	})
	return s
}

func (s Stats) String() string {
	var chars []string
	for _, c := range s.Characters {
		p := c.Position
		chars = append(chars, fmt.Sprintf("%s (%.2f, %.2f, %.2f) grounded:%t jumps:%d steps:%d",
			c.Name, p.X(), p.Y(), p.Z(), c.Grounded, c.Counters.Jumps, c.Counters.Footsteps))
	}
	return fmt.Sprintf("run %s ticks:%d time:%.2fs jumps:%d landings:%d falls:%d footsteps:%d [%s]",
		s.RunID, s.Ticks, s.Time,
		s.Counters.Jumps, s.Counters.Landings, s.Counters.Falls, s.Counters.Footsteps,
		strings.Join(chars, ", "))
}
