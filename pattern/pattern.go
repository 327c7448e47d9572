// Package pattern holds the bullet choreography catalog and the emitter that
// runs it against a world
package pattern

import (
	"math"
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/vmath"
)

// Random is the draw source a script consumes, one value per call
type Random interface {
	Float64() float64
}

// NoLifespan keeps a bullet until bounds or a collision remove it
const NoLifespan time.Duration = -1

// Bullet describes one spawn request
// Zero Color, Size and Lifespan take the package defaults
type Bullet struct {
	X, Y      float64
	VX, VY    float64
	Color     uint32
	Size      float64
	Lifespan  time.Duration
	Behaviors component.BehaviorMask
}

// Context is what a script sees while firing
type Context struct {
	X, Y             float64
	TargetX, TargetY float64
	Rand             Random

	spawn   func(Bullet) bool
	spawned int
	dropped int
}

// NewContext binds a firing to an origin and a spawn sink
func NewContext(x, y float64, rng Random, spawn func(Bullet) bool) *Context {
	return &Context{X: x, Y: y, Rand: rng, spawn: spawn}
}

// Spawn fills defaults and forwards b to the sink
func (c *Context) Spawn(b Bullet) {
	if b.Color == 0 {
		b.Color = parameter.DefaultBulletColor
	}
	if b.Size == 0 {
		b.Size = parameter.DefaultBulletSize
	}
	switch {
	case b.Lifespan == 0:
		b.Lifespan = parameter.DefaultBulletLifespan
	case b.Lifespan < 0:
		b.Lifespan = 0
	}
	if c.spawn(b) {
		c.spawned++
	} else {
		c.dropped++
	}
}

// Shoot spawns at the origin heading angleDeg at speed
func (c *Context) Shoot(angleDeg, speed float64, color uint32) {
	c.ShootWith(Bullet{Color: color}, angleDeg, speed)
}

// ShootWith spawns b at the origin heading angleDeg at speed
func (c *Context) ShootWith(b Bullet, angleDeg, speed float64) {
	rad := vmath.DegToRad(angleDeg)
	b.X, b.Y = c.X, c.Y
	// Explicit conversions keep the products from fusing into FMA
	b.VX = float64(math.Cos(rad) * speed)
	b.VY = float64(math.Sin(rad) * speed)
	c.Spawn(b)
}

// Spawned returns accepted spawns so far
func (c *Context) Spawned() int { return c.spawned }

// Dropped returns spawns refused by the sink
func (c *Context) Dropped() int { return c.dropped }

// Stage is a timed script: Step runs Repeat+1 times, Delay apart
type Stage struct {
	Delay  time.Duration
	Repeat int
	// Start seeds the per-instance state
	Start component.EmissionState
	Step  func(c *Context, st *component.EmissionState)
}

// Firings returns the total number of steps
func (s *Stage) Firings() int {
	return s.Repeat + 1
}

// Pattern is one catalog entry; exactly one of Burst and Stage is set
type Pattern struct {
	ID          string
	Label       string
	Description string

	Burst func(c *Context)
	Stage *Stage
}

// Staged reports whether the pattern fires over time
func (p *Pattern) Staged() bool {
	return p.Stage != nil
}
