package physics

import (
	"math"

	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/vmath"
)

// SourceConfig describes one orbiting source at construction
type SourceConfig struct {
	ID       string
	Radius   float64
	Speed    float64
	Strength float64
	Size     float64
	Color    uint32
	Angle    float64
}

// Source is the live state of an orbiting attractor
type Source struct {
	ID     string
	Radius float64
	// Speed is angular velocity in rad/s
	Speed float64
	// Angle stays in [0, 2π)
	Angle float64
	// Strength is the live value, zero while deactivated
	Strength float64
	// Base is the remembered value restored on reactivation
	Base float64

	Size  float64
	Color uint32
	X, Y  float64
}

// GravityField is a set of sources orbiting a fixed center
type GravityField struct {
	centerX, centerY float64
	minDistSq        float64

	defaults []SourceConfig
	sources  []Source
	active   int
	enabled  bool
}

// NewGravityField builds the field with every source active and enabled
func NewGravityField(centerX, centerY, minDistSq float64, configs []SourceConfig) *GravityField {
	f := &GravityField{
		centerX:   centerX,
		centerY:   centerY,
		minDistSq: minDistSq,
		defaults:  append([]SourceConfig(nil), configs...),
		sources:   make([]Source, len(configs)),
	}
	f.Reset()
	return f
}

// Reset restores construction-time sources, count and enabled flag
func (f *GravityField) Reset() {
	for i, c := range f.defaults {
		strength := clampStrength(c.Strength)
		f.sources[i] = Source{
			ID:       c.ID,
			Radius:   finiteOr(c.Radius, 0),
			Speed:    finiteOr(c.Speed, 0),
			Angle:    vmath.WrapAngle(finiteOr(c.Angle, 0)),
			Strength: strength,
			Base:     strength,
			Size:     c.Size,
			Color:    c.Color,
		}
		f.place(&f.sources[i])
	}
	f.active = len(f.sources)
	f.enabled = true
}

// clampStrength maps negative and non-finite strengths to zero
func clampStrength(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func (f *GravityField) place(s *Source) {
	s.X = f.centerX + math.Cos(s.Angle)*s.Radius
	s.Y = f.centerY + math.Sin(s.Angle)*s.Radius
}

// Enabled reports the global gate
func (f *GravityField) Enabled() bool { return f.enabled }

// SetEnabled gates Update and ApplyTo
func (f *GravityField) SetEnabled(v bool) { f.enabled = v }

// SourceCount returns the number of configured sources
func (f *GravityField) SourceCount() int { return len(f.sources) }

// ActiveCount returns how many leading sources are active
func (f *GravityField) ActiveCount() int { return f.active }

// SetActiveSourceCount activates sources [0,k) and zeroes the rest
// k is clamped to [0, SourceCount]; returns the applied count
func (f *GravityField) SetActiveSourceCount(k int) int {
	k = max(0, min(k, len(f.sources)))
	for i := range f.sources {
		s := &f.sources[i]
		if i < k {
			s.Strength = s.Base
		} else {
			s.Strength = 0
		}
	}
	f.active = k
	return k
}

// SetSourceStrength sets live and remembered strength
// Index is clamped to a valid source, negative and non-finite values to zero
// Returns the index and strength written, index -1 when there are no sources
func (f *GravityField) SetSourceStrength(i int, v float64) (int, float64) {
	if len(f.sources) == 0 {
		return -1, 0
	}
	i = max(0, min(i, len(f.sources)-1))
	v = clampStrength(v)
	f.sources[i].Strength = v
	f.sources[i].Base = v
	return i, v
}

// SourceStrength returns live strength, 0 for an unknown index
func (f *GravityField) SourceStrength(i int) float64 {
	if i < 0 || i >= len(f.sources) {
		return 0
	}
	return f.sources[i].Strength
}

// Sources returns a copy of the source list
func (f *GravityField) Sources() []Source {
	return append([]Source(nil), f.sources...)
}

// Update advances every source along its orbit
func (f *GravityField) Update(dt float64) {
	if !f.enabled {
		return
	}
	for i := range f.sources {
		s := &f.sources[i]
		s.Angle = vmath.WrapAngle(s.Angle + s.Speed*dt)
		f.place(s)
	}
}

// ApplyTo adds inverse-square attraction from every source to k's velocity
// Sources closer than the minimum distance are skipped for this body
func (f *GravityField) ApplyTo(k *core.Kinetic, dt float64) {
	if !f.enabled {
		return
	}
	for i := range f.sources {
		s := &f.sources[i]
		if s.Strength == 0 {
			continue
		}
		dx := s.X - k.X
		dy := s.Y - k.Y
		distSq := dx*dx + dy*dy
		if distSq < f.minDistSq || distSq == 0 {
			continue
		}
		dist := math.Sqrt(distSq)
		acc := s.Strength / distSq * dt
		k.VX += dx / dist * acc
		k.VY += dy / dist * acc
	}
}
