package vmath

import (
	"math"
	"math/big"
	"testing"

	"pgregory.net/rapid"
)

const eps = 1e-9

func TestDegToRad(t *testing.T) {
	if got := DegToRad(180); math.Abs(got-math.Pi) > eps {
		t.Errorf("DegToRad(180) = %v, want π", got)
	}
}

func TestLinear(t *testing.T) {
	tests := []struct {
		a, b, t, want float64
	}{
		{-70, 70, 0, -70},
		{-70, 70, 1, 70},
		{-70, 70, 0.5, 0},
		{60, 120, 0.25, 75},
	}
	for _, tt := range tests {
		if got := Linear(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > eps {
			t.Errorf("Linear(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}

// Linear rounds the product before adding, on every architecture
func TestLinearRoundsEachStep(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1e3, 1e3).Draw(t, "a")
		b := rapid.Float64Range(-1e3, 1e3).Draw(t, "b")
		f := rapid.Float64Range(0, 1).Draw(t, "t")

		prod := new(big.Float).SetPrec(53).Mul(big.NewFloat(b-a), big.NewFloat(f))
		sum := new(big.Float).SetPrec(53).Add(prod, big.NewFloat(a))
		want, _ := sum.Float64()
		if got := Linear(a, b, f); got != want {
			t.Fatalf("Linear(%v, %v, %v) = %v, want %v", a, b, f, got, want)
		}
	})
}

func TestWrapAngleRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Float64Range(-1e6, 1e6).Draw(t, "a")
		w := WrapAngle(a)
		if w < 0 || w >= TwoPi {
			t.Fatalf("WrapAngle(%v) = %v outside [0, 2π)", a, w)
		}
		if d := math.Abs(math.Sin(w) - math.Sin(a)); d > 1e-6 {
			t.Fatalf("WrapAngle(%v) changed direction, sin diff %v", a, d)
		}
	})
}

func TestWrapAngleTinyNegative(t *testing.T) {
	if w := WrapAngle(-1e-300); w < 0 || w >= TwoPi {
		t.Errorf("WrapAngle(-tiny) = %v", w)
	}
}

func TestNormalizeAngle(t *testing.T) {
	if got := NormalizeAngle(3 * math.Pi / 2); math.Abs(got+math.Pi/2) > eps {
		t.Errorf("NormalizeAngle(3π/2) = %v, want -π/2", got)
	}
}

func TestRotateTowardNeverOvershoots(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "heading")
		target := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "target")
		turn := rapid.Float64Range(0.001, math.Pi).Draw(t, "turn")

		before := math.Abs(AngleDiff(h, target))
		next := RotateToward(h, target, turn)
		after := math.Abs(AngleDiff(next, target))

		if after > before+1e-9 {
			t.Fatalf("moved away: before %v after %v", before, after)
		}
		if math.Abs(AngleDiff(h, next)) > turn+1e-9 {
			t.Fatalf("turned %v, limit %v", AngleDiff(h, next), turn)
		}
		if before > turn && math.Abs(before-after-turn) > 1e-6 {
			t.Fatalf("expected full turn step: before %v after %v turn %v", before, after, turn)
		}
	})
}

func TestPolarMagnitude(t *testing.T) {
	x, y := Polar(DegToRad(30), 200)
	if got := Magnitude(x, y); math.Abs(got-200) > 1e-9 {
		t.Errorf("Magnitude = %v, want 200", got)
	}
	if got := Heading(x, y); math.Abs(got-DegToRad(30)) > 1e-12 {
		t.Errorf("Heading = %v, want %v", got, DegToRad(30))
	}
}

func TestFinite(t *testing.T) {
	if !Finite(1, 2, 3) {
		t.Error("Expected finite")
	}
	if Finite(1, math.NaN()) || Finite(math.Inf(1)) {
		t.Error("Expected non-finite detection")
	}
}
