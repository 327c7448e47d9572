package system

import (
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

// CullSystem reaps entities past their lifespan or outside their bounds
// Reaped enemies take their fire loop and running patterns with them
type CullSystem struct {
	world  *engine.World
	reaped int
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	s := &CullSystem{world: world}
	s.Init()
	return s
}

// Init resets per-session counters
func (s *CullSystem) Init() {
	s.reaped = 0
}

// Name returns the system's name
func (s *CullSystem) Name() string { return "cull" }

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int { return parameter.PriorityCull }

// Update reaps out-of-bounds and expired bullets and departed enemies
func (s *CullSystem) Update() {
	w := s.world
	now := w.Time.Now

	s.reapBullets(w.PlayerBullets, w.Bounds.PlayerBullets, now)
	s.reapBullets(w.EnemyBullets, w.Bounds.EnemyBullets, now)

	var toDestroy []core.Handle
	w.Enemies.ForEach(func(h core.Handle, e *component.EnemyComponent) {
		if e.Y > parameter.EnemyExitY {
			toDestroy = append(toDestroy, h)
		}
	})
	for _, h := range toDestroy {
		if w.DestroyEnemy(h) {
			s.reaped++
		}
	}
}

func (s *CullSystem) reapBullets(pool *engine.Pool[component.ProjectileComponent], bounds core.Rect, now time.Duration) {
	pool.ForEach(func(h core.Handle, p *component.ProjectileComponent) {
		if bounds.Outside(p.X, p.Y) || p.Expired(now) {
			pool.Release(h)
			s.reaped++
		}
	})
}

// Reaped returns entities removed since the last Init
func (s *CullSystem) Reaped() int {
	return s.reaped
}
