package component

import (
	"time"

	"github.com/tanema/gween"
)

// PlayerComponent is the single player ship
type PlayerComponent struct {
	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Alive         bool

	// Intent is -1, 0 or 1 for horizontal steering
	Intent int
	// NextFire is the earliest time the next shot is accepted
	NextFire time.Duration

	// Move tween, nil when idle
	TweenX, TweenY *gween.Tween
}

// Moving reports whether a move-towards tween is running
func (p *PlayerComponent) Moving() bool {
	return p.TweenX != nil
}

// StopMove drops any running tween
func (p *PlayerComponent) StopMove() {
	p.TweenX, p.TweenY = nil, nil
}
