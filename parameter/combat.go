package parameter

import "time"

// Player
const (
	PlayerStartX = 400.0
	PlayerStartY = 550.0
	PlayerSize   = 30.0

	// PlayerFireCooldown is minimum time between shots
	PlayerFireCooldown = 200 * time.Millisecond

	PlayerBulletSpeed  = 500.0
	PlayerBulletRadius = 5.0

	// PlayerMuzzleOffset spawns bullets above the player center
	PlayerMuzzleOffset = 20.0

	// PlayerMoveSpeed is horizontal intent speed in units per second
	PlayerMoveSpeed = 300.0

	// PlayerTweenMsPerUnit scales move-towards duration by distance
	PlayerTweenMsPerUnit = 2.0
)

// Enemy
const (
	EnemySize = 30.0

	EnemySpawnInterval = 1000 * time.Millisecond
	EnemySpawnY        = -20.0
	EnemySpawnMinX     = 50
	EnemySpawnMaxX     = 750

	// EnemyDriftMin, EnemyDriftMax bound downward velocity in units per second
	EnemyDriftMin = 100
	EnemyDriftMax = 200

	EnemyFireIntervalMin = 800 * time.Millisecond
	EnemyFireIntervalMax = 1500 * time.Millisecond
)

// Enemy aimed fan
const (
	EnemyFanCount  = 5
	EnemyFanSpread = 0.3
	EnemyFanSpeed  = 200.0
	EnemyFanRadius = 4.0
	EnemyFanColor  = 0xff4444
)

// Scoring
const (
	ScorePerEnemy = 10
)

// Sandbox emitter
const (
	SandboxOriginX = 400.0
	SandboxOriginY = 160.0
)

// Pattern bullet defaults
const (
	DefaultBulletColor    = 0xffff00
	DefaultBulletSize     = 5.0
	DefaultBulletLifespan = 4000 * time.Millisecond
)
