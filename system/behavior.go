package system

import (
	"math"
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/physics"
)

// BehaviorSystem applies tagged continuous behaviors, then gravity, to every projectile
// Behaviors compose in a fixed order: homing, wave, converge, diverge, two-stage, accel, decel
type BehaviorSystem struct {
	world *engine.World
}

// NewBehaviorSystem creates a new behavior system
func NewBehaviorSystem(world *engine.World) engine.System {
	s := &BehaviorSystem{world: world}
	s.Init()
	return s
}

// Init
func (s *BehaviorSystem) Init() {}

// Name returns the system's name
func (s *BehaviorSystem) Name() string { return "behavior" }

// Priority returns the system's priority (highest value = runs last)
func (s *BehaviorSystem) Priority() int { return parameter.PriorityBehavior }

// Update steers every enemy bullet by its tagged behaviors
func (s *BehaviorSystem) Update() {
	w := s.world
	now := w.Time.Now
	dt := w.Time.DeltaSeconds()
	tx, ty := w.Target()
	gravity := !w.State.GameOver && w.Gravity.Enabled()

	visit := func(_ core.Handle, p *component.ProjectileComponent) {
		if p.Behaviors != component.BehaviorNone {
			ApplyBehaviors(p, now, tx, ty)
		}
		if gravity {
			w.Gravity.ApplyTo(&p.Kinetic, dt)
		}
	}
	w.PlayerBullets.ForEach(visit)
	w.EnemyBullets.ForEach(visit)
}

// ApplyBehaviors runs one tick of every behavior tagged on p
func ApplyBehaviors(p *component.ProjectileComponent, now time.Duration, targetX, targetY float64) {
	k := &p.Kinetic
	st := &p.Behavior
	m := p.Behaviors

	if m.Has(component.BehaviorHoming) && now >= st.HomingAt {
		physics.TurnTowardPoint(k, targetX, targetY, parameter.HomingTurnRate)
	}
	if m.Has(component.BehaviorWave) {
		physics.Perturb(k, math.Sin(st.Phase)*parameter.WaveAmplitude)
		st.Phase += parameter.WavePhaseStep
	}
	if m.Has(component.BehaviorConverge) {
		physics.TurnTowardPoint(k, parameter.MapCenterX, parameter.MapCenterY, parameter.ConvergeTurnRate)
	}
	if m.Has(component.BehaviorDiverge) {
		physics.TurnAwayFromPoint(k, parameter.MapCenterX, parameter.MapCenterY, parameter.DivergeTurnRate)
		physics.Scale(k, parameter.DivergeSpeedFactor)
	}
	if m.Has(component.BehaviorTwoStage) && !st.Retargeted && now >= st.StageAt {
		physics.Aim(k, targetX, targetY, parameter.TwoStageSpeed)
		st.Retargeted = true
	}
	if m.Has(component.BehaviorAccel) {
		physics.Scale(k, parameter.AccelFactor)
	}
	if m.Has(component.BehaviorDecel) {
		physics.Scale(k, parameter.DecelFactor)
	}
}
