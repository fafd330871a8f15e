package physics

const (
	CollisionAxisTolerance = 1e-9

	BodyGravity            = 9.81
	BodyGroundFriction     = 6.0
	BodyAirDrag            = 0.2
	BodyMaxFallSpeed       = 30.0
	GroundProbeDistance    = 0.001
	MinimumResidualSpeed   = 1e-4
	DefaultCellSize        = 2
	DefaultSpaceSize       = 256.0
	DefaultCharacterRadius = 0.5
	DefaultCharacterHeight = 2.0
	DefaultStepOffset      = 0.3
)
