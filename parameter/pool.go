package parameter

// Pool capacities per entity kind
const (
	PlayerBulletCapacity = 30
	EnemyBulletCapacity  = 400
	EnemyCapacity        = 32

	// EmissionCapacity bounds concurrently running staged patterns
	EmissionCapacity = 64

	// SandboxBulletCapacity is the bullet pool used by the pattern sandbox
	SandboxBulletCapacity = 400
)
