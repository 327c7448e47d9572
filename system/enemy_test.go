package system

import (
	"testing"
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/parameter"
	"github.com/kako-jun/yatagarrage/pattern"
)

func TestEnemySpawnTiming(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	w.AddSystem(NewTimerSystem(w))
	enemies := NewEnemySystem(w, pattern.NewEmitter(w), DefaultEnemySettings()).(*EnemySystem)
	w.AddSystem(enemies)

	// The loop arms on the first tick, so the first spawn lands one interval later
	step := 100 * time.Millisecond
	for range 10 {
		w.Update(step)
	}
	if enemies.Spawned() != 0 {
		t.Fatalf("spawned %d before the interval elapsed", enemies.Spawned())
	}
	w.Update(step)
	if enemies.Spawned() != 1 || w.Enemies.Len() != 1 {
		t.Fatalf("spawned = %d, enemies = %d, want 1", enemies.Spawned(), w.Enemies.Len())
	}

	_, e, _ := w.Enemies.Find(func(*component.EnemyComponent) bool { return true })
	if e.X < parameter.EnemySpawnMinX || e.X > parameter.EnemySpawnMaxX || e.X != float64(int(e.X)) {
		t.Errorf("spawn x = %v, want integer in [%d, %d]", e.X, parameter.EnemySpawnMinX, parameter.EnemySpawnMaxX)
	}
	if e.Y != parameter.EnemySpawnY {
		t.Errorf("spawn y = %v, want %v", e.Y, parameter.EnemySpawnY)
	}
	if e.VY < parameter.EnemyDriftMin || e.VY > parameter.EnemyDriftMax {
		t.Errorf("drift = %v, want in [%d, %d]", e.VY, parameter.EnemyDriftMin, parameter.EnemyDriftMax)
	}
	if e.PatternID != pattern.EnemyAimedFanID {
		t.Errorf("pattern = %q, want %q", e.PatternID, pattern.EnemyAimedFanID)
	}
}

func TestEnemyFireStopsOnDeath(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	w.AddSystem(NewTimerSystem(w))
	enemies := NewEnemySystem(w, pattern.NewEmitter(w), DefaultEnemySettings()).(*EnemySystem)

	enemies.spawn(0)
	h := w.Enemies.Handles()[0]

	// One fire interval is at most the upper bound, the next at least twice the lower
	w.Update(parameter.EnemyFireIntervalMax)
	if got := w.EnemyBullets.Len(); got != parameter.EnemyFanCount {
		t.Fatalf("enemy bullets = %d, want %d", got, parameter.EnemyFanCount)
	}
	e, _ := w.Enemies.Get(h)
	if e.Volleys != 1 {
		t.Errorf("volleys = %d, want 1", e.Volleys)
	}

	w.DestroyEnemy(h)
	w.Update(10 * time.Second)
	if got := w.EnemyBullets.Len(); got != parameter.EnemyFanCount {
		t.Errorf("enemy bullets after death = %d, want %d", got, parameter.EnemyFanCount)
	}
	if w.Scheduler.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", w.Scheduler.Pending())
	}
}

func TestEnemyRandomPatternFixedForLifetime(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	settings := DefaultEnemySettings()
	settings.Pattern = SelectRandom
	enemies := NewEnemySystem(w, pattern.NewEmitter(w), settings).(*EnemySystem)

	for range 8 {
		enemies.spawn(0)
	}
	w.Enemies.ForEach(func(_ core.Handle, e *component.EnemyComponent) {
		p, ok := pattern.Find(e.PatternID)
		if !ok {
			t.Errorf("unknown pattern %q", e.PatternID)
			return
		}
		if p.ID == pattern.EnemyAimedFanID {
			t.Errorf("random draw returned the aimed fan")
		}
	})
}

func TestEnemyUnknownPatternFallsBack(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	settings := DefaultEnemySettings()
	settings.Pattern = "999-nothing"
	enemies := NewEnemySystem(w, pattern.NewEmitter(w), settings).(*EnemySystem)
	if enemies.choose() != pattern.EnemyAimedFanID {
		t.Errorf("choose = %q, want %q", enemies.choose(), pattern.EnemyAimedFanID)
	}
}

func TestEnemySpawnerStopsOnGameOver(t *testing.T) {
	w := newTestWorld(t, core.ModeGame)
	w.AddSystem(NewTimerSystem(w))
	enemies := NewEnemySystem(w, pattern.NewEmitter(w), DefaultEnemySettings()).(*EnemySystem)
	w.AddSystem(enemies)

	w.Update(time.Millisecond)
	EnterGameOver(w)
	w.Update(5 * time.Second)
	if enemies.Spawned() != 0 {
		t.Errorf("spawned %d after game over", enemies.Spawned())
	}
	if w.Scheduler.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", w.Scheduler.Pending())
	}
}

func TestSandboxHasNoEnemies(t *testing.T) {
	w := newTestWorld(t, core.ModeSandbox)
	w.AddSystem(NewTimerSystem(w))
	enemies := NewEnemySystem(w, pattern.NewEmitter(w), DefaultEnemySettings()).(*EnemySystem)
	w.AddSystem(enemies)
	for range 30 {
		w.Update(100 * time.Millisecond)
	}
	if enemies.Spawned() != 0 || w.Scheduler.Pending() != 0 {
		t.Errorf("sandbox spawned %d, pending %d", enemies.Spawned(), w.Scheduler.Pending())
	}
}
