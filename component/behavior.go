package component

import (
	"strings"
	"time"
)

// BehaviorMask is a set of orthogonal continuous projectile behaviors
type BehaviorMask uint8

const (
	BehaviorHoming BehaviorMask = 1 << iota
	BehaviorWave
	BehaviorAccel
	BehaviorDecel
	BehaviorConverge
	BehaviorDiverge
	BehaviorTwoStage

	BehaviorNone BehaviorMask = 0
)

var behaviorNames = [...]string{"homing", "wave", "accel", "decel", "converge", "diverge", "two-stage"}

// Has reports whether every bit of b is set
func (m BehaviorMask) Has(b BehaviorMask) bool {
	return m&b == b
}

func (m BehaviorMask) String() string {
	if m == BehaviorNone {
		return "none"
	}
	var parts []string
	for i, name := range behaviorNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// BehaviorState is scratch shared by the behavior components of one bullet
type BehaviorState struct {
	// Phase drives the wave perturbation
	Phase float64
	// HomingAt is the absolute time homing begins
	HomingAt time.Duration
	// StageAt is the absolute time the two-stage retarget fires
	StageAt time.Duration
	// Retargeted latches after the two-stage turn
	Retargeted bool
}
