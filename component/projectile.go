package component

import (
	"time"

	"github.com/kako-jun/yatagarrage/core"
)

// ProjectileComponent is one pooled bullet of either faction
type ProjectileComponent struct {
	core.Kinetic
	Radius  float64
	Color   uint32
	Faction core.Faction

	SpawnedAt time.Duration
	// Lifespan of zero means the bullet lives until culled by bounds or collision
	Lifespan time.Duration

	Behaviors BehaviorMask
	Behavior  BehaviorState
}

// Age returns time alive at now
func (p *ProjectileComponent) Age(now time.Duration) time.Duration {
	return now - p.SpawnedAt
}

// Expired reports whether the lifespan elapsed strictly before now
func (p *ProjectileComponent) Expired(now time.Duration) bool {
	return p.Lifespan > 0 && p.Age(now) > p.Lifespan
}
