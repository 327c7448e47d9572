package parameter

import "time"

// World geometry in world units (pixels of the reference 800x600 stage)
const (
	WorldWidth  = 800
	WorldHeight = 600

	// MapCenterX, MapCenterY is the converge/diverge reference point
	MapCenterX = WorldWidth / 2
	MapCenterY = WorldHeight / 2
)

// Culling bounds, entity removed when strictly outside
const (
	PlayerBulletMargin = 10
	EnemyBulletMargin  = 50
	SandboxMargin      = 20

	// EnemyExitY removes enemies that drifted below the stage
	EnemyExitY = WorldHeight + 10
)

// Simulation clock
const (
	// DefaultTickRate is fixed steps per second driven by Game.Advance
	DefaultTickRate = 60

	// DefaultMaxDelta caps real elapsed time accepted per Advance call
	DefaultMaxDelta = 250 * time.Millisecond

	// MinTimerInterval floors repeating timer intervals so a loop cannot spin
	MinTimerInterval = time.Millisecond
)
