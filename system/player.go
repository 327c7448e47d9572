package system

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/vmath"
)

// PlayerSettings tunes the ship
type PlayerSettings struct {
	FireCooldown time.Duration
	BulletSpeed  float64
	MoveSpeed    float64
}

// DefaultPlayerSettings returns the reference tuning
func DefaultPlayerSettings() PlayerSettings {
	return PlayerSettings{
		FireCooldown: parameter.PlayerFireCooldown,
		BulletSpeed:  parameter.PlayerBulletSpeed,
		MoveSpeed:    parameter.PlayerMoveSpeed,
	}
}

// PlayerSystem applies fire and movement commands and advances the move tween
type PlayerSystem struct {
	world    *engine.World
	settings PlayerSettings
}

// NewPlayerSystem creates a new player system
func NewPlayerSystem(world *engine.World, settings PlayerSettings) *PlayerSystem {
	s := &PlayerSystem{world: world, settings: settings}
	s.Init()
	return s
}

// Init
func (s *PlayerSystem) Init() {}

// Name returns the system's name
func (s *PlayerSystem) Name() string { return "player" }

// Priority returns the system's priority (highest value = runs last)
func (s *PlayerSystem) Priority() int { return parameter.PriorityPlayer }

// Update advances the move tween or horizontal intent and clamps the ship
func (s *PlayerSystem) Update() {
	w := s.world
	p := &w.Player
	if !p.Alive {
		return
	}
	dt := w.Time.DeltaSeconds()

	if p.Moving() {
		x, doneX := p.TweenX.Update(float32(dt))
		y, doneY := p.TweenY.Update(float32(dt))
		p.X, p.Y = float64(x), float64(y)
		if doneX && doneY {
			p.StopMove()
		}
	} else {
		p.X += p.VX * dt
		p.Y += p.VY * dt
	}
	p.X, p.Y = w.Bounds.Player.Clamp(p.X, p.Y)
}

// Fire shoots toward (x, y) if the cooldown elapsed
func (s *PlayerSystem) Fire(x, y float64) bool {
	w := s.world
	p := &w.Player
	if !p.Alive || !w.Spawnable() {
		return false
	}
	now := w.Time.Now
	if now < p.NextFire {
		return false
	}
	p.NextFire = now + s.settings.FireCooldown

	vx, vy := vmath.Polar(vmath.Heading(x-p.X, y-p.Y), s.settings.BulletSpeed)
	return w.SpawnProjectile(component.ProjectileComponent{
		Kinetic: core.Kinetic{X: p.X, Y: p.Y - parameter.PlayerMuzzleOffset, VX: vx, VY: vy},
		Radius:  parameter.PlayerBulletRadius,
		Color:   parameter.DefaultBulletColor,
		Faction: core.FactionPlayer,
	})
}

// MoveTowards tweens the ship linearly to (x, y) over distance×2 ms
func (s *PlayerSystem) MoveTowards(x, y float64) {
	p := &s.world.Player
	if !p.Alive {
		return
	}
	x, y = s.world.Bounds.Player.Clamp(x, y)
	dist := math.Hypot(x-p.X, y-p.Y)
	p.Intent = 0
	p.VX, p.VY = 0, 0
	if dist == 0 {
		p.StopMove()
		return
	}
	seconds := float32(dist * parameter.PlayerTweenMsPerUnit / 1000)
	p.TweenX = gween.New(float32(p.X), float32(x), seconds, ease.Linear)
	p.TweenY = gween.New(float32(p.Y), float32(y), seconds, ease.Linear)
}

// SetHorizontalIntent steers left (-1), right (1) or stops (0), cancelling any tween
func (s *PlayerSystem) SetHorizontalIntent(dir int) {
	p := &s.world.Player
	if !p.Alive {
		return
	}
	dir = max(-1, min(dir, 1))
	p.StopMove()
	p.Intent = dir
	p.VX = float64(dir) * s.settings.MoveSpeed
	p.VY = 0
}
