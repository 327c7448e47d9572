package system

import (
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

// TimerSystem advances the scheduler, running due enemy and pattern callbacks
type TimerSystem struct {
	world *engine.World
	fired int
}

// NewTimerSystem creates a new timer system
func NewTimerSystem(world *engine.World) engine.System {
	s := &TimerSystem{world: world}
	s.Init()
	return s
}

// Init resets per-session counters
func (s *TimerSystem) Init() {
	s.fired = 0
}

// Name returns the system's name
func (s *TimerSystem) Name() string { return "timer" }

// Priority returns the system's priority (highest value = runs last)
func (s *TimerSystem) Priority() int { return parameter.PriorityTimer }

// Update fires due scheduler callbacks
func (s *TimerSystem) Update() {
	s.fired += s.world.Scheduler.Advance(s.world.Time.Delta)
}

// Fired returns callbacks run since the last Init
func (s *TimerSystem) Fired() int {
	return s.fired
}
