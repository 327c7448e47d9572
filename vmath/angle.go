package vmath

import "math"

const (
	// TwoPi is a full rotation in radians
	TwoPi = 2 * math.Pi
	// degToRad divides the float64-rounded π, as a runtime division would
	degToRad = float64(math.Pi) / 180
)

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * degToRad
}

// Linear interpolates from a to b by t, evaluated as (b-a)*t + a
// Evaluation order is fixed so catalog angles reproduce bit-for-bit;
// the conversion stops the product fusing into an FMA
func Linear(a, b, t float64) float64 {
	return float64((b-a)*t) + a
}

// WrapAngle maps any angle into [0, 2π)
func WrapAngle(a float64) float64 {
	if a >= 0 && a < TwoPi {
		return a
	}
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -tiny + 2π can round up to exactly 2π
	if a >= TwoPi {
		a = 0
	}
	return a
}

// NormalizeAngle maps any angle into [-π, π)
func NormalizeAngle(a float64) float64 {
	a = WrapAngle(a + math.Pi)
	return a - math.Pi
}

// AngleDiff returns the signed shortest rotation from a to b in [-π, π)
func AngleDiff(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// RotateToward turns heading toward target by at most maxTurn radians
// Never overshoots: when the remaining difference is within maxTurn the target is returned
func RotateToward(heading, target, maxTurn float64) float64 {
	if maxTurn <= 0 {
		return heading
	}
	d := AngleDiff(heading, target)
	if math.Abs(d) <= maxTurn {
		return heading + d
	}
	if d > 0 {
		return heading + maxTurn
	}
	return heading - maxTurn
}
