package parameter

import "time"

// Homing
const (
	// HomingTurnRate is max heading change per tick in radians
	HomingTurnRate = 0.05

	// HomingDelayMin, HomingDelayMax bound the per-bullet activation delay
	HomingDelayMin = 200 * time.Millisecond
	HomingDelayMax = 600 * time.Millisecond
)

// Geometric speed change per tick
const (
	AccelFactor = 1.02
	DecelFactor = 0.98
)

// Wave perturbation
const (
	// WaveAmplitude is radians added per tick scaled by sin(phase)
	WaveAmplitude = 0.05
	// WavePhaseStep advances the phase each tick
	WavePhaseStep = 0.2
)

// Converge / diverge around the map center
const (
	ConvergeTurnRate = 0.03
	DivergeTurnRate  = 0.03
	// DivergeSpeedFactor scales diverging bullets every tick
	DivergeSpeedFactor = 1.01
)

// Two-stage retarget
const (
	TwoStageDelay = 800 * time.Millisecond
	TwoStageSpeed = 250.0
)
