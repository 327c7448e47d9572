package physics

import (
	"math"
	"testing"

	"pgregory.net/rapid"

	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/vmath"
)

func testSources() []SourceConfig {
	return []SourceConfig{
		{ID: "alpha", Radius: 170, Speed: 0.4, Strength: 1600000, Angle: 0},
		{ID: "beta", Radius: 240, Speed: -0.28, Strength: 1200000, Angle: math.Pi * 0.6},
		{ID: "gamma", Radius: 120, Speed: 0.65, Strength: 900000, Angle: math.Pi * 1.3},
	}
}

func TestGravityUpdateWrapsAngle(t *testing.T) {
	f := NewGravityField(400, 300, 64, testSources())
	for i := 0; i < 10000; i++ {
		f.Update(0.1)
	}
	for _, s := range f.Sources() {
		if s.Angle < 0 || s.Angle >= vmath.TwoPi {
			t.Errorf("source %s angle %v outside [0, 2π)", s.ID, s.Angle)
		}
		d := math.Hypot(s.X-400, s.Y-300)
		if math.Abs(d-s.Radius) > 1e-6 {
			t.Errorf("source %s orbit distance %v, want %v", s.ID, d, s.Radius)
		}
	}
}

func TestGravityApplyInverseSquare(t *testing.T) {
	f := NewGravityField(0, 0, 64, []SourceConfig{{ID: "a", Radius: 100, Strength: 10000}})
	k := core.Kinetic{X: 0, Y: 0}
	f.ApplyTo(&k, 0.5)

	// source at (100, 0): acc = 10000/10000*0.5 along +x
	if math.Abs(k.VX-0.5) > 1e-12 || math.Abs(k.VY) > 1e-12 {
		t.Errorf("velocity = (%v, %v), want (0.5, 0)", k.VX, k.VY)
	}
}

func TestGravitySkipsNearSource(t *testing.T) {
	f := NewGravityField(0, 0, 64, []SourceConfig{{ID: "a", Radius: 100, Strength: 1e9}})
	k := core.Kinetic{X: 95, Y: 3} // distSq = 34
	f.ApplyTo(&k, 1)
	if k.VX != 0 || k.VY != 0 {
		t.Errorf("Expected source skipped inside clamp, got (%v, %v)", k.VX, k.VY)
	}

	k = core.Kinetic{X: 100, Y: 0}
	f.ApplyTo(&k, 1)
	if k.VX != 0 || k.VY != 0 {
		t.Errorf("Expected no force at singularity, got (%v, %v)", k.VX, k.VY)
	}
}

func TestGravityDisabled(t *testing.T) {
	f := NewGravityField(400, 300, 64, testSources())
	f.SetEnabled(false)
	before := f.Sources()
	f.Update(1)
	after := f.Sources()
	for i := range before {
		if before[i].Angle != after[i].Angle {
			t.Errorf("source %d moved while disabled", i)
		}
	}
	k := core.Kinetic{X: 10, Y: 10}
	f.ApplyTo(&k, 1)
	if k.VX != 0 || k.VY != 0 {
		t.Errorf("Expected no force while disabled, got (%v, %v)", k.VX, k.VY)
	}
}

func TestGravityStaysFinite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := NewGravityField(400, 300, 64, testSources())
		k := core.Kinetic{
			X:  rapid.Float64Range(-100, 900).Draw(t, "x"),
			Y:  rapid.Float64Range(-100, 700).Draw(t, "y"),
			VX: rapid.Float64Range(-500, 500).Draw(t, "vx"),
			VY: rapid.Float64Range(-500, 500).Draw(t, "vy"),
		}
		steps := rapid.IntRange(1, 600).Draw(t, "steps")
		dt := 1.0 / 60
		for i := 0; i < steps; i++ {
			f.Update(dt)
			f.ApplyTo(&k, dt)
			k.Integrate(dt)
			if !vmath.Finite(k.X, k.Y, k.VX, k.VY) {
				t.Fatalf("non-finite state at step %d: %+v", i, k)
			}
		}
	})
}

func TestGravityFiniteOnSourceBoundary(t *testing.T) {
	f := NewGravityField(400, 300, 64, testSources())
	s := f.Sources()[0]
	// exactly at the clamp distance, the largest admissible acceleration
	k := core.Kinetic{X: s.X - 8, Y: s.Y}
	for i := 0; i < 1000; i++ {
		f.ApplyTo(&k, 1.0/60)
		k.Integrate(1.0 / 60)
		if !vmath.Finite(k.X, k.Y, k.VX, k.VY) {
			t.Fatalf("non-finite state at step %d: %+v", i, k)
		}
	}
}

func TestSetActiveSourceCountRestores(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := NewGravityField(400, 300, 64, testSources())
		n := f.SourceCount()
		strengths := make([]float64, n)
		for i := range strengths {
			strengths[i] = rapid.Float64Range(1, 5e6).Draw(t, "strength")
			f.SetSourceStrength(i, strengths[i])
		}

		k := rapid.IntRange(-2, n+2).Draw(t, "k")
		applied := f.SetActiveSourceCount(k)
		if applied < 0 || applied > n {
			t.Fatalf("applied count %d outside [0, %d]", applied, n)
		}
		for i := 0; i < n; i++ {
			got := f.SourceStrength(i)
			if i >= applied && got != 0 {
				t.Fatalf("source %d strength %v after deactivation, want 0", i, got)
			}
			if i < applied && got != strengths[i] {
				t.Fatalf("source %d strength %v, want %v", i, got, strengths[i])
			}
		}

		f.SetActiveSourceCount(n)
		for i := 0; i < n; i++ {
			if got := f.SourceStrength(i); got != strengths[i] {
				t.Fatalf("source %d restored to %v, want %v", i, got, strengths[i])
			}
		}
	})
}

func TestSetSourceStrengthClamps(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		value     float64
		wantIndex int
		want      float64
	}{
		{"in range", 1, 5, 1, 5},
		{"index above", 99, 5, 2, 5},
		{"index below", -3, 7, 0, 7},
		{"negative", 0, -10, 0, 0},
		{"nan", 0, math.NaN(), 0, 0},
		{"positive inf", 1, math.Inf(1), 1, 0},
		{"negative inf", 2, math.Inf(-1), 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewGravityField(400, 300, 64, testSources())
			i, v := f.SetSourceStrength(tt.index, tt.value)
			if i != tt.wantIndex || v != tt.want {
				t.Errorf("SetSourceStrength(%d, %v) = (%d, %v), want (%d, %v)", tt.index, tt.value, i, v, tt.wantIndex, tt.want)
			}
			if got := f.SourceStrength(tt.wantIndex); got != tt.want {
				t.Errorf("live strength = %v, want %v", got, tt.want)
			}
			f.SetActiveSourceCount(0)
			f.SetActiveSourceCount(3)
			if got := f.SourceStrength(tt.wantIndex); got != tt.want {
				t.Errorf("restored strength = %v, want %v", got, tt.want)
			}
		})
	}

	empty := NewGravityField(0, 0, 64, nil)
	if i, _ := empty.SetSourceStrength(0, 1); i != -1 {
		t.Errorf("empty field index = %d, want -1", i)
	}
}

func TestNonFiniteStrengthKeepsBodiesFinite(t *testing.T) {
	cfgs := testSources()
	cfgs[1].Strength = math.NaN()
	cfgs[2].Angle = math.Inf(1)
	f := NewGravityField(400, 300, 64, cfgs)
	f.SetSourceStrength(0, math.Inf(1))

	k := core.Kinetic{X: 10, Y: 20}
	for range 60 {
		f.Update(1.0 / 60)
		f.ApplyTo(&k, 1.0/60)
		k.Integrate(1.0 / 60)
	}
	if !vmath.Finite(k.X, k.Y, k.VX, k.VY) {
		t.Errorf("body went non-finite: %+v", k)
	}
	for _, s := range f.Sources() {
		if s.Strength < 0 || !vmath.Finite(s.Strength, s.Base, s.X, s.Y, s.Angle) {
			t.Errorf("source %s not finite: %+v", s.ID, s)
		}
	}
}

func TestGravityReset(t *testing.T) {
	f := NewGravityField(400, 300, 64, testSources())
	f.SetEnabled(false)
	f.SetActiveSourceCount(1)
	f.SetSourceStrength(0, 1)
	f.Update(3)

	f.Reset()
	if !f.Enabled() || f.ActiveCount() != 3 {
		t.Errorf("Expected enabled with 3 active, got %v/%d", f.Enabled(), f.ActiveCount())
	}
	for i, c := range testSources() {
		if got := f.SourceStrength(i); got != c.Strength {
			t.Errorf("source %d strength %v, want %v", i, got, c.Strength)
		}
		if got := f.Sources()[i].Angle; got != c.Angle {
			t.Errorf("source %d angle %v, want %v", i, got, c.Angle)
		}
	}
}
