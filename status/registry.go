package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Counter keys published by the simulation
const (
	KeyTick          = "tick"
	KeyScore         = "score"
	KeyPlayerBullets = "bullets.player"
	KeyEnemyBullets  = "bullets.enemy"
	KeyEnemies       = "enemies"
	KeyEmissions     = "emissions"
	KeyTimers        = "timers"
	KeyDropped       = "dropped"
	KeyStale         = "stale"
	KeyGravity       = "gravity.active"
	KeyGameOver      = "game_over"
	KeySession       = "session"
	KeyPattern       = "pattern"
)

// Registry holds debug counters written by the tick loop and read by an overlay
// Safe for a reader goroutine concurrent with the writer
type Registry struct {
	Ints   *Metrics[atomic.Int64]
	Floats *Metrics[Float]
	Flags  *Metrics[atomic.Bool]
	Labels *Metrics[Label]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   newMetrics[atomic.Int64](),
		Floats: newMetrics[Float](),
		Flags:  newMetrics[atomic.Bool](),
		Labels: newMetrics[Label](),
	}
}

// Len returns metrics across all kinds
func (r *Registry) Len() int {
	return r.Ints.Len() + r.Floats.Len() + r.Flags.Len() + r.Labels.Len()
}

// Entry is one formatted metric for display
type Entry struct {
	Key   string
	Value string
}

// Snapshot formats every metric, grouped by kind and sorted by key
func (r *Registry) Snapshot() []Entry {
	out := make([]Entry, 0, r.Len())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out = append(out, Entry{k, strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(k string, v *Float) {
		out = append(out, Entry{k, fmt.Sprintf("%.2f", v.Load())})
	})
	r.Flags.Range(func(k string, v *atomic.Bool) {
		out = append(out, Entry{k, strconv.FormatBool(v.Load())})
	})
	r.Labels.Range(func(k string, v *Label) {
		out = append(out, Entry{k, v.Load()})
	})
	return out
}
