package system

import (
	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

// MovementSystem integrates projectile and enemy positions
type MovementSystem struct {
	world *engine.World
}

// NewMovementSystem creates a new movement system
func NewMovementSystem(world *engine.World) engine.System {
	s := &MovementSystem{world: world}
	s.Init()
	return s
}

// Init
func (s *MovementSystem) Init() {}

// Name returns the system's name
func (s *MovementSystem) Name() string { return "movement" }

// Priority returns the system's priority (highest value = runs last)
func (s *MovementSystem) Priority() int { return parameter.PriorityMovement }

// Update integrates bullets and enemies over the tick
func (s *MovementSystem) Update() {
	dt := s.world.Time.DeltaSeconds()
	if dt == 0 {
		return
	}
	bullets := func(_ core.Handle, p *component.ProjectileComponent) {
		p.Integrate(dt)
	}
	s.world.PlayerBullets.ForEach(bullets)
	s.world.EnemyBullets.ForEach(bullets)
	s.world.Enemies.ForEach(func(_ core.Handle, e *component.EnemyComponent) {
		e.Integrate(dt)
	})
}
