package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/physics"
	"github.com/kako-jun/yatagarrage/status"
)

// WorldConfig is the static sizing and tuning of a world
type WorldConfig struct {
	Mode core.Mode
	Seed uint64

	PlayerBullets int
	EnemyBullets  int
	Enemies       int
	Emissions     int

	GravityEnabled   bool
	GravityCenterX   float64
	GravityCenterY   float64
	GravityMinDistSq float64
	GravitySources   []physics.SourceConfig
}

// DefaultWorldConfig returns reference sizing for mode
func DefaultWorldConfig(mode core.Mode) WorldConfig {
	sources := make([]physics.SourceConfig, len(parameter.GravitySourceDefaults))
	for i, d := range parameter.GravitySourceDefaults {
		sources[i] = physics.SourceConfig{
			ID: d.ID, Radius: d.Radius, Speed: d.Speed, Strength: d.Strength,
			Size: d.Size, Color: d.Color, Angle: d.Angle,
		}
	}
	cfg := WorldConfig{
		Mode:             mode,
		PlayerBullets:    parameter.PlayerBulletCapacity,
		EnemyBullets:     parameter.EnemyBulletCapacity,
		Enemies:          parameter.EnemyCapacity,
		Emissions:        parameter.EmissionCapacity,
		GravityEnabled:   true,
		GravityCenterX:   parameter.GravityCenterX,
		GravityCenterY:   parameter.GravityCenterY,
		GravityMinDistSq: parameter.GravityMinDistSq,
		GravitySources:   sources,
	}
	if mode == core.ModeSandbox {
		cfg.EnemyBullets = parameter.SandboxBulletCapacity
	}
	return cfg
}

// TimeResource is the clock view systems read during Update
type TimeResource struct {
	Now   time.Duration
	Delta time.Duration
	Tick  uint64
}

// DeltaSeconds returns Delta as float seconds for physics
func (t TimeResource) DeltaSeconds() float64 {
	return t.Delta.Seconds()
}

// GameState survives across ticks until restart
type GameState struct {
	Score    int
	GameOver bool
	Session  string
	// Pattern is the label last fired on demand
	Pattern string
	// Spawner owns the enemy spawn loop
	Spawner core.Owner
}

// Kill records where an enemy was destroyed
type Kill struct {
	X, Y float64
}

// FrameState collects outcomes of the current tick, cleared at tick start
type FrameState struct {
	ScoreDelta int
	Kills      []Kill
	PlayerHit  bool
	// Entered is set on the tick GameOver begins
	Entered bool
}

// Bounds are culling rectangles per kind
type Bounds struct {
	PlayerBullets core.Rect
	EnemyBullets  core.Rect
	Player        core.Rect
}

// World owns every pool, the scheduler, the gravity field and the ordered systems
type World struct {
	Mode   core.Mode
	Config WorldConfig
	Bounds Bounds

	PlayerBullets *Pool[component.ProjectileComponent]
	EnemyBullets  *Pool[component.ProjectileComponent]
	Enemies       *Pool[component.EnemyComponent]
	Emissions     *Pool[component.EmissionComponent]
	Player        component.PlayerComponent

	Gravity   *physics.GravityField
	Scheduler *Scheduler
	Rand      *Rand

	Time  TimeResource
	State GameState
	Frame FrameState

	Status *status.Registry
	Logger *slog.Logger

	systems []System
}

// NewWorld validates sizing and allocates every pool
func NewWorld(cfg WorldConfig, logger *slog.Logger) (*World, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w := &World{
		Mode:      cfg.Mode,
		Config:    cfg,
		Scheduler: NewScheduler(),
		Rand:      NewRand(cfg.Seed),
		Status:    status.NewRegistry(),
		Logger:    logger,
	}
	w.Scheduler.SetLogger(logger)

	var err error
	if w.PlayerBullets, err = NewPool[component.ProjectileComponent]("player_bullets", cfg.PlayerBullets); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if w.EnemyBullets, err = NewPool[component.ProjectileComponent]("enemy_bullets", cfg.EnemyBullets); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if w.Enemies, err = NewPool[component.EnemyComponent]("enemies", cfg.Enemies); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	if w.Emissions, err = NewPool[component.EmissionComponent]("emissions", cfg.Emissions); err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}

	w.Gravity = physics.NewGravityField(cfg.GravityCenterX, cfg.GravityCenterY, cfg.GravityMinDistSq, cfg.GravitySources)
	w.Gravity.SetEnabled(cfg.GravityEnabled)

	pm := float64(parameter.PlayerBulletMargin)
	em := float64(parameter.EnemyBulletMargin)
	if cfg.Mode == core.ModeSandbox {
		em = parameter.SandboxMargin
	}
	w.Bounds = Bounds{
		PlayerBullets: core.Rect{MinX: -pm, MinY: -pm, MaxX: parameter.WorldWidth + pm, MaxY: parameter.WorldHeight + pm},
		EnemyBullets:  core.Rect{MinX: -em, MinY: -em, MaxX: parameter.WorldWidth + em, MaxY: parameter.WorldHeight + em},
		Player: core.Rect{
			MinX: parameter.PlayerSize / 2, MinY: parameter.PlayerSize / 2,
			MaxX: parameter.WorldWidth - parameter.PlayerSize/2, MaxY: parameter.WorldHeight - parameter.PlayerSize/2,
		},
	}

	w.resetPlayer()
	return w, nil
}

func (w *World) resetPlayer() {
	w.Player = component.PlayerComponent{
		X:      parameter.PlayerStartX,
		Y:      parameter.PlayerStartY,
		Width:  parameter.PlayerSize,
		Height: parameter.PlayerSize,
		Alive:  w.Mode == core.ModeGame,
	}
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)

	// Insertion keeps registration order for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs one tick of length dt through every system
func (w *World) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	w.Time.Delta = dt
	w.Time.Now += dt
	w.Time.Tick++
	w.Frame = FrameState{Kills: w.Frame.Kills[:0]}

	for _, s := range w.systems {
		s.Update()
	}
	w.publish()
}

// Reset returns the world to its initial state and re-initializes systems
func (w *World) Reset() {
	w.Scheduler.Reset()
	w.PlayerBullets.Clear()
	w.EnemyBullets.Clear()
	w.Enemies.Clear()
	w.Emissions.Clear()
	w.Gravity.Reset()
	w.Gravity.SetEnabled(w.Config.GravityEnabled)

	session := w.State.Session
	w.State = GameState{Session: session}
	w.Frame = FrameState{}
	w.Time = TimeResource{}
	w.resetPlayer()

	for _, s := range w.systems {
		s.Init()
	}
	w.publish()
}

// Target returns the point homing and aimed fire steer toward
func (w *World) Target() (float64, float64) {
	return w.Player.X, w.Player.Y
}

// Spawnable reports whether new projectiles or enemies may enter the world
func (w *World) Spawnable() bool {
	return !w.State.GameOver
}

// SpawnProjectile acquires a bullet from the faction's pool
// Exhaustion drops the request and returns false
func (w *World) SpawnProjectile(p component.ProjectileComponent) bool {
	if !w.Spawnable() {
		return false
	}
	pool := w.EnemyBullets
	if p.Faction == core.FactionPlayer {
		pool = w.PlayerBullets
	}
	_, slot, ok := pool.Acquire()
	if !ok {
		w.Logger.Debug("pool exhausted", "pool", pool.Name(), "capacity", pool.Cap())
		return false
	}

	p.SpawnedAt = w.Scheduler.Now()
	if p.Behaviors.Has(component.BehaviorHoming) {
		p.Behavior.HomingAt = p.SpawnedAt + w.Rand.Duration(parameter.HomingDelayMin, parameter.HomingDelayMax)
	}
	if p.Behaviors.Has(component.BehaviorTwoStage) {
		p.Behavior.StageAt = p.SpawnedAt + parameter.TwoStageDelay
	}
	*slot = p
	return true
}

// ReleaseEmission cancels a staged pattern's timer and frees its record
func (w *World) ReleaseEmission(h core.Handle) bool {
	e, ok := w.Emissions.Get(h)
	if !ok {
		return false
	}
	w.Scheduler.Cancel(e.Timer)
	return w.Emissions.Release(h)
}

// RetireOwner cancels every timer of owner and frees its emissions
func (w *World) RetireOwner(o core.Owner) int {
	if o == core.NoOwner {
		return 0
	}
	n := w.Scheduler.Retire(o)
	w.Emissions.ForEach(func(h core.Handle, e *component.EmissionComponent) {
		if e.Owner == o {
			w.Emissions.Release(h)
		}
	})
	return n
}

// DestroyEnemy frees the enemy and everything it scheduled
func (w *World) DestroyEnemy(h core.Handle) bool {
	e, ok := w.Enemies.Get(h)
	if !ok {
		return false
	}
	w.RetireOwner(e.Owner)
	return w.Enemies.Release(h)
}

// ClearBullets frees every projectile and cancels every running emission
func (w *World) ClearBullets() {
	w.Emissions.ForEach(func(h core.Handle, _ *component.EmissionComponent) {
		w.ReleaseEmission(h)
	})
	w.PlayerBullets.Clear()
	w.EnemyBullets.Clear()
}

// Drops sums exhaustion counters over all pools
func (w *World) Drops() uint64 {
	return w.PlayerBullets.Drops() + w.EnemyBullets.Drops() + w.Enemies.Drops() + w.Emissions.Drops()
}

func (w *World) publish() {
	r := w.Status
	r.Ints.Get(status.KeyTick).Store(int64(w.Time.Tick))
	r.Ints.Get(status.KeyScore).Store(int64(w.State.Score))
	r.Ints.Get(status.KeyPlayerBullets).Store(int64(w.PlayerBullets.Len()))
	r.Ints.Get(status.KeyEnemyBullets).Store(int64(w.EnemyBullets.Len()))
	r.Ints.Get(status.KeyEnemies).Store(int64(w.Enemies.Len()))
	r.Ints.Get(status.KeyEmissions).Store(int64(w.Emissions.Len()))
	r.Ints.Get(status.KeyTimers).Store(int64(w.Scheduler.Pending()))
	r.Ints.Get(status.KeyDropped).Store(int64(w.Drops()))
	r.Ints.Get(status.KeyStale).Store(int64(w.Scheduler.Stale()))
	r.Ints.Get(status.KeyGravity).Store(int64(w.Gravity.ActiveCount()))
	r.Flags.Get(status.KeyGameOver).Store(w.State.GameOver)
	r.Labels.Get(status.KeySession).Store(w.State.Session)
	r.Labels.Get(status.KeyPattern).Store(w.State.Pattern)
}
