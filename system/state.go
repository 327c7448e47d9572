package system

import (
	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

// StateSystem evaluates the terminal condition
// GameOver is sticky; only a world reset clears it
type StateSystem struct {
	world *engine.World
}

// NewStateSystem creates a new state system
func NewStateSystem(world *engine.World) engine.System {
	s := &StateSystem{world: world}
	s.Init()
	return s
}

// Init
func (s *StateSystem) Init() {}

// Name returns the system's name
func (s *StateSystem) Name() string { return "state" }

// Priority returns the system's priority (highest value = runs last)
func (s *StateSystem) Priority() int { return parameter.PriorityState }

// Update publishes counters and enters game over on a player hit
func (s *StateSystem) Update() {
	w := s.world
	if !w.Frame.PlayerHit || w.State.GameOver {
		return
	}
	EnterGameOver(w)
}

// EnterGameOver freezes spawning and cancels every outstanding callback
// Enemies and bullets already in flight remain and keep moving
func EnterGameOver(w *engine.World) {
	if w.State.GameOver {
		return
	}
	w.State.GameOver = true
	w.Frame.Entered = true

	p := &w.Player
	p.VX, p.VY = 0, 0
	p.Intent = 0
	p.StopMove()
	p.Alive = false

	w.RetireOwner(w.State.Spawner)
	w.Enemies.ForEach(func(_ core.Handle, e *component.EnemyComponent) {
		w.RetireOwner(e.Owner)
		e.FireTimer = 0
	})
	w.Emissions.ForEach(func(h core.Handle, _ *component.EmissionComponent) {
		w.ReleaseEmission(h)
	})

	w.Logger.Info("game over", "session", w.State.Session, "score", w.State.Score)
}
