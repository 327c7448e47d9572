package system

import (
	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/physics"
)

// CollisionSystem resolves bullet×enemy, player×enemy and player×bullet overlaps
// A player bullet consumes at most one enemy per tick
type CollisionSystem struct {
	world *engine.World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	s := &CollisionSystem{world: world}
	s.Init()
	return s
}

// Init
func (s *CollisionSystem) Init() {}

// Name returns the system's name
func (s *CollisionSystem) Name() string { return "collision" }

// Priority returns the system's priority (highest value = runs last)
func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

// Update resolves bullet-enemy hits, then player hits
func (s *CollisionSystem) Update() {
	w := s.world
	if w.State.GameOver {
		return
	}
	s.bulletsVersusEnemies()
	if w.Player.Alive && s.playerHit() {
		w.Frame.PlayerHit = true
	}
}

func (s *CollisionSystem) bulletsVersusEnemies() {
	w := s.world
	if w.Enemies.Len() == 0 {
		return
	}
	w.PlayerBullets.ForEach(func(bh core.Handle, b *component.ProjectileComponent) {
		eh, e, ok := w.Enemies.Find(func(e *component.EnemyComponent) bool {
			return physics.CircleRect(b.X, b.Y, b.Radius, physics.BoxAround(e.X, e.Y, e.Width, e.Height))
		})
		if !ok {
			return
		}
		x, y := e.X, e.Y
		w.PlayerBullets.Release(bh)
		if w.DestroyEnemy(eh) {
			w.Frame.ScoreDelta += parameter.ScorePerEnemy
			w.Frame.Kills = append(w.Frame.Kills, engine.Kill{X: x, Y: y})
		}
	})
}

func (s *CollisionSystem) playerHit() bool {
	w := s.world
	p := &w.Player
	box := physics.BoxAround(p.X, p.Y, p.Width, p.Height)

	if _, _, ok := w.Enemies.Find(func(e *component.EnemyComponent) bool {
		return physics.RectOverlap(box, physics.BoxAround(e.X, e.Y, e.Width, e.Height))
	}); ok {
		return true
	}
	_, _, ok := w.EnemyBullets.Find(func(b *component.ProjectileComponent) bool {
		return physics.CircleRect(b.X, b.Y, b.Radius, box)
	})
	return ok
}
