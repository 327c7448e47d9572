package pattern

import (
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
)

// Emitter runs patterns against a world
// Staged patterns keep their state in the world's emission pool
type Emitter struct {
	world *engine.World
}

// NewEmitter binds an emitter to w
func NewEmitter(w *engine.World) *Emitter {
	return &Emitter{world: w}
}

// Fire looks up id and runs it from (x, y) on behalf of owner
// Unknown ids are logged and ignored
func (e *Emitter) Fire(id string, x, y float64, owner core.Owner) bool {
	p, ok := Find(id)
	if !ok {
		e.world.Logger.Warn("invalid pattern id", "pattern", id)
		return false
	}
	return e.Run(p, x, y, owner)
}

// Run fires p immediately or registers its staged timer
// Returns false when nothing was started
func (e *Emitter) Run(p *Pattern, x, y float64, owner core.Owner) bool {
	w := e.world
	if !w.Spawnable() {
		return false
	}

	if !p.Staged() {
		p.Burst(e.context(x, y))
		return true
	}

	h, rec, ok := w.Emissions.Acquire()
	if !ok {
		w.Logger.Debug("pool exhausted", "pool", w.Emissions.Name(), "capacity", w.Emissions.Cap(), "pattern", p.ID)
		return false
	}
	*rec = component.EmissionComponent{
		PatternID: p.ID,
		OriginX:   x,
		OriginY:   y,
		Owner:     owner,
		State:     p.Stage.Start,
		Total:     p.Stage.Firings(),
	}
	rec.Timer = w.Scheduler.Repeat(owner, p.Stage.Delay, p.Stage.Repeat, e.step(h, p))
	if rec.Timer == 0 {
		w.Emissions.Release(h)
		return false
	}
	return true
}

func (e *Emitter) step(h core.Handle, p *Pattern) engine.Callback {
	return func(time.Duration) {
		w := e.world
		rec, ok := w.Emissions.Get(h)
		if !ok {
			w.Logger.Debug("stale emission", "pattern", p.ID)
			return
		}
		// Terminal state consumes the step without spawning
		if w.Spawnable() {
			p.Stage.Step(e.context(rec.OriginX, rec.OriginY), &rec.State)
		}
		rec.Fired++
		if rec.Done() {
			w.Emissions.Release(h)
		}
	}
}

func (e *Emitter) context(x, y float64) *Context {
	w := e.world
	c := NewContext(x, y, w.Rand, e.spawn)
	c.TargetX, c.TargetY = w.Target()
	return c
}

func (e *Emitter) spawn(b Bullet) bool {
	return e.world.SpawnProjectile(component.ProjectileComponent{
		Kinetic:   core.Kinetic{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY},
		Radius:    b.Size,
		Color:     b.Color,
		Faction:   core.FactionEnemy,
		Lifespan:  b.Lifespan,
		Behaviors: b.Behaviors,
	})
}

// Active returns running staged patterns
func (e *Emitter) Active() int {
	return e.world.Emissions.Len()
}

// Clear cancels every running pattern and removes every bullet
func (e *Emitter) Clear() {
	e.world.ClearBullets()
}
