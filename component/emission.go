package component

import "github.com/kako-jun/yatagarrage/core"

// EmissionState is the mutable per-instance record a staged pattern advances
// between firings
type EmissionState struct {
	Angle  float64
	Phase  float64
	Offset float64
	Count  int
}

// EmissionComponent tracks one running staged pattern
type EmissionComponent struct {
	PatternID        string
	OriginX, OriginY float64

	Owner core.Owner
	Timer core.TimerID

	State EmissionState
	// Fired counts completed steps; Total is the number scheduled
	Fired int
	Total int
}

// Done reports whether every scheduled step has run
func (e *EmissionComponent) Done() bool {
	return e.Fired >= e.Total
}
