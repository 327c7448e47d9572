package system

import (
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

// ScoreSystem folds the tick's score delta into the running score
type ScoreSystem struct {
	world *engine.World
}

// NewScoreSystem creates a new score system
func NewScoreSystem(world *engine.World) engine.System {
	s := &ScoreSystem{world: world}
	s.Init()
	return s
}

// Init
func (s *ScoreSystem) Init() {}

// Name returns the system's name
func (s *ScoreSystem) Name() string { return "score" }

// Priority returns the system's priority (highest value = runs last)
func (s *ScoreSystem) Priority() int { return parameter.PriorityScore }

// Update credits this tick's kills
func (s *ScoreSystem) Update() {
	if d := s.world.Frame.ScoreDelta; d > 0 {
		s.world.State.Score += d
	}
}
