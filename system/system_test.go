package system

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/kako-jun/yatagarrage/component"
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/engine"
	"github.com/kako-jun/yatagarrage/parameter"
)

func newTestWorld(t *testing.T, mode core.Mode) *engine.World {
	t.Helper()
	cfg := engine.DefaultWorldConfig(mode)
	cfg.Seed = 7
	w, err := engine.NewWorld(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

// addEnemy places a stationary enemy with a live owner and fire loop
func addEnemy(t *testing.T, w *engine.World, x, y float64) core.Handle {
	t.Helper()
	h, e, ok := w.Enemies.Acquire()
	if !ok {
		t.Fatal("enemy pool exhausted")
	}
	*e = component.EnemyComponent{
		Kinetic: core.Kinetic{X: x, Y: y},
		Width:   parameter.EnemySize,
		Height:  parameter.EnemySize,
		Owner:   w.Scheduler.NewOwner(),
	}
	e.FireTimer = w.Scheduler.Loop(e.Owner, parameter.EnemyFireIntervalMin, func(time.Duration) {})
	return h
}
