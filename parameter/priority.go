package parameter

// System update priorities, lower runs first
const (
	PriorityGravity   = 10
	PriorityTimer     = 20
	PriorityEnemy     = 25
	PriorityPlayer    = 30
	PriorityBehavior  = 40
	PriorityMovement  = 50
	PriorityCull      = 60
	PriorityCollision = 70
	PriorityScore     = 80
	PriorityState     = 90
)
