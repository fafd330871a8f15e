package world

import (
	"math/rand/v2"

	"github.com/Versifine/stride/internal/config"
	"github.com/Versifine/stride/internal/motor"
	"github.com/Versifine/stride/internal/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Name       string
	Controller *motor.Controller
	Body       *physics.Character
	Input      motor.Input
	Counters   Counters
}

type PlatformData struct {
	Name   string
	Solid  *physics.Solid
	Origin mgl64.Vec3
	Size   mgl64.Vec3
	// Path holds one looping sequence per axis, nil for a fixed platform.
	Path    [3]*gween.Sequence
	YawRate float64
	Yaw     float64
	// ExpiresAt is the world time the platform is removed at, 0 for never.
	ExpiresAt float64
}

type CrateData struct {
	Body *physics.Body
}

type BoxData struct {
	Solid *physics.Solid
}

// ScriptData feeds a character its intents. Without a timeline the character
// wanders, picking a new heading every wanderInterval.
type ScriptData struct {
	Timeline []config.IntentConfig
	Cursor   int
	Wander   *rand.Rand
	Heading  mgl64.Vec3
	NextTurn float64
}

var (
	Character = donburi.NewComponentType[CharacterData]()
	Platform  = donburi.NewComponentType[PlatformData]()
	Crate     = donburi.NewComponentType[CrateData]()
	Box       = donburi.NewComponentType[BoxData]()
	Script    = donburi.NewComponentType[ScriptData]()
)
