// Package game is the loop orchestrator: it queues commands between ticks,
// steps the world at a fixed rate and exposes what a renderer needs
//
// Command methods are safe to call from any goroutine; they take effect
// atomically at the start of the next tick. Step, Advance and the output
// accessors belong to the goroutine driving the loop.
package game

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kako-jun/yatagarrage/config"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/pattern"
	"github.com/kako-jun/yatagarrage/system"
)

// Option customizes New
type Option func(*Game)

// WithLogger routes diagnostics to l instead of slog.Default
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithObserver registers o for kill, hit and restart events
func WithObserver(o Observer) Option {
	return func(g *Game) { g.observer = o }
}

// WithSeed overrides the configured random seed
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.seed = seed
		g.seeded = true
	}
}

type command func(g *Game)

// Game owns one world and drives it
type Game struct {
	cfg      config.Config
	world    *engine.World
	emitter  *pattern.Emitter
	player   *system.PlayerSystem
	logger   *slog.Logger
	observer Observer

	seed   uint64
	seeded bool

	mu    sync.Mutex
	queue []command

	step     time.Duration
	maxDelta time.Duration
	acc      time.Duration

	originX, originY float64
}

// New validates cfg, builds the world and registers the systems for its mode
func New(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		cfg:      cfg,
		step:     cfg.Step(),
		maxDelta: cfg.Simulation.MaxDelta,
		originX:  parameter.SandboxOriginX,
		originY:  parameter.SandboxOriginY,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}

	wc := cfg.World()
	if g.seeded {
		wc.Seed = g.seed
	}
	w, err := engine.NewWorld(wc, g.logger)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g.world = w
	g.emitter = pattern.NewEmitter(w)

	w.AddSystem(system.NewGravitySystem(w))
	w.AddSystem(system.NewTimerSystem(w))
	w.AddSystem(system.NewBehaviorSystem(w))
	w.AddSystem(system.NewMovementSystem(w))
	w.AddSystem(system.NewCullSystem(w))
	if w.Mode == core.ModeGame {
		g.player = system.NewPlayerSystem(w, cfg.PlayerSettings())
		w.AddSystem(system.NewEnemySystem(w, g.emitter, cfg.EnemySettings()))
		w.AddSystem(g.player)
		w.AddSystem(system.NewCollisionSystem(w))
		w.AddSystem(system.NewScoreSystem(w))
		w.AddSystem(system.NewStateSystem(w))
	}

	w.State.Session = uuid.NewString()
	w.Reset()
	g.logger.Info("game created", "mode", w.Mode, "seed", w.Rand.Seed(), "session", w.State.Session)
	return g, nil
}

func (g *Game) enqueue(c command) {
	g.mu.Lock()
	g.queue = append(g.queue, c)
	g.mu.Unlock()
}

func (g *Game) drain() {
	g.mu.Lock()
	q := g.queue
	g.queue = nil
	g.mu.Unlock()

	for _, c := range q {
		c(g)
	}
}

// Step applies queued commands, runs one tick of dt and dispatches events
func (g *Game) Step(dt time.Duration) {
	g.drain()
	g.world.Update(dt)
	g.notify()
}

// Advance feeds real elapsed time into fixed steps
// elapsed is capped at the configured max delta; returns ticks run
func (g *Game) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > g.maxDelta {
		elapsed = g.maxDelta
	}
	g.acc += elapsed

	n := 0
	for g.acc >= g.step {
		g.Step(g.step)
		g.acc -= g.step
		n++
	}
	return n
}

func (g *Game) notify() {
	if g.observer == nil {
		return
	}
	f := &g.world.Frame
	score := g.world.State.Score
	for _, k := range f.Kills {
		g.observer.EnemyDestroyed(k.X, k.Y, score)
	}
	if f.Entered {
		g.observer.PlayerHit(score)
	}
}

func (g *Game) restart() {
	w := g.world
	prev := w.State.Score
	w.State.Session = uuid.NewString()
	w.Reset()
	g.logger.Info("restart", "session", w.State.Session, "previous_score", prev)
	if g.observer != nil {
		g.observer.Restarted(w.State.Session)
	}
}

// input runs fn unless the game is over, in which case the input restarts instead
func (g *Game) input(fn func(p *system.PlayerSystem)) command {
	return func(g *Game) {
		if g.world.State.GameOver {
			g.restart()
			return
		}
		if g.player == nil {
			return
		}
		fn(g.player)
	}
}

// Fire shoots from the player toward (x, y)
func (g *Game) Fire(x, y float64) {
	g.enqueue(g.input(func(p *system.PlayerSystem) { p.Fire(x, y) }))
}

// MoveTowards glides the player to (x, y)
func (g *Game) MoveTowards(x, y float64) {
	g.enqueue(g.input(func(p *system.PlayerSystem) { p.MoveTowards(x, y) }))
}

// SetHorizontalIntent steers the player: -1 left, 0 stop, 1 right
func (g *Game) SetHorizontalIntent(dir int) {
	g.enqueue(g.input(func(p *system.PlayerSystem) { p.SetHorizontalIntent(dir) }))
}

// Restart resets the whole simulation under a new session
func (g *Game) Restart() {
	g.enqueue(func(g *Game) { g.restart() })
}

// SetGravityEnabled gates every gravity update and force application
func (g *Game) SetGravityEnabled(enabled bool) {
	g.enqueue(func(g *Game) {
		g.world.Gravity.SetEnabled(enabled)
		g.logger.Debug("gravity toggled", "enabled", enabled)
	})
}

// SetActiveGravitySourceCount keeps the first k sources active, clamped to the source count
func (g *Game) SetActiveGravitySourceCount(k int) {
	g.enqueue(func(g *Game) {
		if got := g.world.Gravity.SetActiveSourceCount(k); got != k {
			g.logger.Debug("gravity source count clamped", "requested", k, "applied", got)
		}
	})
}

// SetGravitySourceStrength sets source i's strength, clamping the index and negative values
func (g *Game) SetGravitySourceStrength(i int, v float64) {
	g.enqueue(func(g *Game) {
		got, applied := g.world.Gravity.SetSourceStrength(i, v)
		if got < 0 {
			g.logger.Debug("gravity strength ignored, no sources", "index", i)
			return
		}
		if got != i {
			g.logger.Debug("gravity source index clamped", "requested", i, "applied", got)
		}
		// NaN never equals itself, so it is logged here as well
		if applied != v {
			g.logger.Debug("gravity source strength clamped", "index", got, "requested", v, "applied", applied)
		}
	})
}

// FirePattern validates id now and fires it at the next tick from the origin
// Sandbox clears the stage first; unknown ids return false and change nothing
func (g *Game) FirePattern(id string) bool {
	p, ok := pattern.Find(id)
	if !ok {
		g.logger.Warn("invalid pattern id", "pattern", id)
		return false
	}
	g.enqueue(func(g *Game) {
		if g.world.Mode == core.ModeSandbox {
			g.emitter.Clear()
		}
		if g.emitter.Run(p, g.originX, g.originY, core.NoOwner) {
			g.world.State.Pattern = p.Label
		}
	})
	return true
}

// ClearAllBullets removes every projectile and cancels every running pattern
func (g *Game) ClearAllBullets() {
	g.enqueue(func(g *Game) { g.emitter.Clear() })
}

// SetOrigin moves the on-demand pattern origin, clamped to the stage
func (g *Game) SetOrigin(x, y float64) {
	g.enqueue(func(g *Game) {
		stage := core.Rect{MaxX: parameter.WorldWidth, MaxY: parameter.WorldHeight}
		g.originX, g.originY = stage.Clamp(x, y)
	})
}
