package game

import (
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/physics"
	"github.com/kako-jun/yatagarrage/status"
)

// Kind tags an entity transform for drawing
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlayerBullet
	KindEnemyBullet
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlayerBullet:
		return "player_bullet"
	case KindEnemyBullet:
		return "enemy_bullet"
	default:
		return "unknown"
	}
}

// Transform is the drawable state of one entity
// Bullets carry Radius and Color, ships carry Width and Height
type Transform struct {
	Kind    Kind
	Faction core.Faction
	X, Y    float64
	Radius  float64
	Width   float64
	Height  float64
	Color   uint32
}

// Counters is the debug overlay snapshot
type Counters struct {
	Tick          uint64
	Score         int
	PlayerBullets int
	EnemyBullets  int
	Enemies       int
	Emissions     int
	Timers        int
	Dropped       uint64
	Stale         uint64
	GravityActive int
	GameOver      bool
	Session       string
}

// Mode returns the simulation mode
func (g *Game) Mode() core.Mode { return g.world.Mode }

// Score returns the current score
func (g *Game) Score() int { return g.world.State.Score }

// GameOver reports the sticky terminal state
func (g *Game) GameOver() bool { return g.world.State.GameOver }

// Session returns the id of the current play session
func (g *Game) Session() string { return g.world.State.Session }

// Now returns simulated time since the last restart
func (g *Game) Now() time.Duration { return g.world.Time.Now }

// TickLength returns the fixed step used by Advance
func (g *Game) TickLength() time.Duration { return g.step }

// Origin returns the on-demand pattern origin
func (g *Game) Origin() (float64, float64) { return g.originX, g.originY }

// ActivePattern returns the label of the last pattern fired on demand
func (g *Game) ActivePattern() string { return g.world.State.Pattern }

// GravityEnabled reports whether the field is applied
func (g *Game) GravityEnabled() bool { return g.world.Gravity.Enabled() }

// GravitySources returns a copy of the live sources
func (g *Game) GravitySources() []physics.Source { return g.world.Gravity.Sources() }

// Status returns the atomic counter registry, readable from any goroutine
func (g *Game) Status() *status.Registry { return g.world.Status }

// Entities returns every drawable entity
func (g *Game) Entities() []Transform {
	return g.AppendEntities(nil)
}

// AppendEntities appends every drawable entity to dst: player, enemies, player bullets, enemy bullets
func (g *Game) AppendEntities(dst []Transform) []Transform {
	w := g.world
	if w.Mode == core.ModeGame {
		p := &w.Player
		dst = append(dst, Transform{
			Kind: KindPlayer, Faction: core.FactionPlayer,
			X: p.X, Y: p.Y, Width: p.Width, Height: p.Height,
		})
	}
	w.Enemies.ForEach(func(_ core.Handle, e *component.EnemyComponent) {
		dst = append(dst, Transform{
			Kind: KindEnemy, Faction: core.FactionEnemy,
			X: e.X, Y: e.Y, Width: e.Width, Height: e.Height,
		})
	})
	bullets := func(kind Kind) func(core.Handle, *component.ProjectileComponent) {
		return func(_ core.Handle, b *component.ProjectileComponent) {
			dst = append(dst, Transform{
				Kind: kind, Faction: b.Faction,
				X: b.X, Y: b.Y, Radius: b.Radius, Color: b.Color,
			})
		}
	}
	w.PlayerBullets.ForEach(bullets(KindPlayerBullet))
	w.EnemyBullets.ForEach(bullets(KindEnemyBullet))
	return dst
}

// Counters returns the debug counters as of the last tick or command
func (g *Game) Counters() Counters {
	w := g.world
	return Counters{
		Tick:          w.Time.Tick,
		Score:         w.State.Score,
		PlayerBullets: w.PlayerBullets.Len(),
		EnemyBullets:  w.EnemyBullets.Len(),
		Enemies:       w.Enemies.Len(),
		Emissions:     w.Emissions.Len(),
		Timers:        w.Scheduler.Pending(),
		Dropped:       w.Drops(),
		Stale:         w.Scheduler.Stale(),
		GravityActive: w.Gravity.ActiveCount(),
		GameOver:      w.State.GameOver,
		Session:       w.State.Session,
	}
}
