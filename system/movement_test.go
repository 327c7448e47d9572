package system

import (
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/vmath"
)

func TestMovementIntegrates(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	w.AddSystem(NewMovementSystem(w))
	w.SpawnProjectile(component.ProjectileComponent{
		Kinetic: core.Kinetic{X: 100, Y: 100, VX: 60, VY: -120},
		Faction: core.FactionEnemy,
	})
	h := addEnemy(t, w, 200, 0)
	e, _ := w.Enemies.Get(h)
	e.VY = 150

	w.Update(500 * time.Millisecond)
	_, b, _ := w.EnemyBullets.Find(func(*component.ProjectileComponent) bool { return true })
	if b.X != 130 || b.Y != 40 {
		t.Errorf("bullet = (%v, %v), want (130, 40)", b.X, b.Y)
	}
	if e.Y != 75 {
		t.Errorf("enemy y = %v, want 75", e.Y)
	}
}

func TestGravitySystemFreezesOnGameOver(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	w.AddSystem(NewGravitySystem(w))

	before := w.Gravity.Sources()
	w.Update(time.Second)
	moved := w.Gravity.Sources()
	if moved[0].Angle == before[0].Angle {
		t.Fatal("sources did not orbit")
	}

	w.State.GameOver = true
	w.Update(time.Second)
	after := w.Gravity.Sources()
	for i := range after {
		if after[i].Angle != moved[i].Angle {
			t.Errorf("source %d orbited during game over", i)
		}
	}
}

// Bullets released anywhere in the field, including on top of a source, stay finite
func TestGravityFieldKeepsBulletsFinite(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		w := newTestWorld(t, core.ModeSandbox)
		w.AddSystem(NewGravitySystem(w))
		w.AddSystem(NewBehaviorSystem(w))
		w.AddSystem(NewMovementSystem(w))

		n := rapid.IntRange(1, 20).Draw(rt, "bullets")
		for i := range n {
			x := rapid.Float64Range(0, 800).Draw(rt, "x")
			y := rapid.Float64Range(0, 600).Draw(rt, "y")
			if i == 0 {
				src := w.Gravity.Sources()[0]
				x, y = src.X, src.Y
			}
			w.SpawnProjectile(component.ProjectileComponent{
				Kinetic: core.Kinetic{X: x, Y: y},
				Faction: core.FactionEnemy,
			})
		}

		ticks := rapid.IntRange(1, 240).Draw(rt, "ticks")
		for range ticks {
			w.Update(time.Second / 60)
		}
		w.EnemyBullets.ForEach(func(_ core.Handle, p *component.ProjectileComponent) {
			if !vmath.Finite(p.X, p.Y, p.VX, p.VY) {
				rt.Fatalf("non-finite bullet %+v", p.Kinetic)
			}
		})
	})
}
