package system

import (
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

// GravitySystem moves the gravity sources along their orbits
type GravitySystem struct {
	world *engine.World
}

// NewGravitySystem creates a new gravity system
func NewGravitySystem(world *engine.World) engine.System {
	s := &GravitySystem{world: world}
	s.Init()
	return s
}

// Init
func (s *GravitySystem) Init() {}

// Name returns the system's name
func (s *GravitySystem) Name() string { return "gravity" }

// Priority returns the system's priority (highest value = runs last)
func (s *GravitySystem) Priority() int { return parameter.PriorityGravity }

// Update orbits the sources and pulls every bullet toward them
func (s *GravitySystem) Update() {
	if s.world.State.GameOver {
		return
	}
	s.world.Gravity.Update(s.world.Time.DeltaSeconds())
}
