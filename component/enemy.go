package component

import "github.com/kako-jun/yatagarrage/core"

// EnemyComponent is a drifting emitter
type EnemyComponent struct {
	core.Kinetic
	Width, Height float64

	// PatternID is fixed for the enemy's lifetime
	PatternID string

	// Owner scopes the fire loop and every emission this enemy started
	Owner     core.Owner
	FireTimer core.TimerID

	Volleys int
}
