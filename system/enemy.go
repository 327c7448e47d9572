package system

import (
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/pattern"
)

// Pattern selection modes for spawned enemies
const (
	SelectAimed  = "aimed"
	SelectRandom = "random"
)

// EnemySettings tunes spawning and firing
type EnemySettings struct {
	SpawnInterval   time.Duration
	FireIntervalMin time.Duration
	FireIntervalMax time.Duration
	// Pattern is SelectAimed, SelectRandom or a catalog id
	Pattern string
}

// DefaultEnemySettings returns the reference tuning
func DefaultEnemySettings() EnemySettings {
	return EnemySettings{
		SpawnInterval:   parameter.EnemySpawnInterval,
		FireIntervalMin: parameter.EnemyFireIntervalMin,
		FireIntervalMax: parameter.EnemyFireIntervalMax,
		Pattern:         SelectAimed,
	}
}

// EnemySystem owns the spawn loop and gives each enemy a pattern and a fire loop
type EnemySystem struct {
	world    *engine.World
	emitter  *pattern.Emitter
	settings EnemySettings
	spawned  int
}

// NewEnemySystem creates a new enemy system
func NewEnemySystem(world *engine.World, emitter *pattern.Emitter, settings EnemySettings) engine.System {
	if settings.Pattern != SelectAimed && settings.Pattern != SelectRandom {
		if _, ok := pattern.Find(settings.Pattern); !ok {
			world.Logger.Warn("unknown enemy pattern, using aimed fan", "pattern", settings.Pattern)
			settings.Pattern = SelectAimed
		}
	}
	s := &EnemySystem{world: world, emitter: emitter, settings: settings}
	s.Init()
	return s
}

// Init resets per-session counters
func (s *EnemySystem) Init() {
	s.spawned = 0
}

// Name returns the system's name
func (s *EnemySystem) Name() string { return "enemy" }

// Priority returns the system's priority (highest value = runs last)
func (s *EnemySystem) Priority() int { return parameter.PriorityEnemy }

// Update arms the spawn loop once per session
func (s *EnemySystem) Update() {
	w := s.world
	if w.Mode != core.ModeGame || w.State.GameOver {
		return
	}
	if w.State.Spawner != core.NoOwner && w.Scheduler.Alive(w.State.Spawner) {
		return
	}
	w.State.Spawner = w.Scheduler.NewOwner()
	w.Scheduler.Loop(w.State.Spawner, s.settings.SpawnInterval, s.spawn)
}

func (s *EnemySystem) spawn(time.Duration) {
	w := s.world
	if !w.Spawnable() {
		return
	}
	h, e, ok := w.Enemies.Acquire()
	if !ok {
		w.Logger.Debug("pool exhausted", "pool", w.Enemies.Name(), "capacity", w.Enemies.Cap())
		return
	}

	x := float64(w.Rand.Between(parameter.EnemySpawnMinX, parameter.EnemySpawnMaxX))
	vy := float64(w.Rand.Between(parameter.EnemyDriftMin, parameter.EnemyDriftMax))
	*e = component.EnemyComponent{
		Kinetic:   core.Kinetic{X: x, Y: parameter.EnemySpawnY, VY: vy},
		Width:     parameter.EnemySize,
		Height:    parameter.EnemySize,
		PatternID: s.choose(),
		Owner:     w.Scheduler.NewOwner(),
	}
	interval := w.Rand.Duration(s.settings.FireIntervalMin, s.settings.FireIntervalMax)
	e.FireTimer = w.Scheduler.Loop(e.Owner, interval, s.fire(h))
	s.spawned++
}

func (s *EnemySystem) choose() string {
	switch s.settings.Pattern {
	case SelectAimed:
		return pattern.EnemyAimedFanID
	case SelectRandom:
		return pattern.Pick(s.world.Rand).ID
	default:
		return s.settings.Pattern
	}
}

func (s *EnemySystem) fire(h core.Handle) engine.Callback {
	return func(time.Duration) {
		w := s.world
		e, ok := w.Enemies.Get(h)
		if !ok || !w.Spawnable() {
			return
		}
		e.Volleys++
		s.emitter.Fire(e.PatternID, e.X, e.Y, e.Owner)
	}
}

// Spawned returns enemies created since the last Init
func (s *EnemySystem) Spawned() int {
	return s.spawned
}
