package parameter

import "math"

// Gravity field geometry
const (
	GravityCenterX = 400.0
	GravityCenterY = 300.0

	// GravityMinDistSq skips a source when the body is closer than 8 units
	GravityMinDistSq = 64.0
)

// GravitySourceDefault is a compile-time gravity source description
type GravitySourceDefault struct {
	ID       string
	Radius   float64
	Speed    float64 // rad/s, negative orbits clockwise on screen
	Strength float64
	Size     float64
	Color    uint32
	Angle    float64
}

// GravitySourceDefaults are the three reference orbiters
var GravitySourceDefaults = [...]GravitySourceDefault{
	{ID: "alpha", Radius: 170, Speed: 0.4, Strength: 1600000, Size: 10, Color: 0x66d9ff, Angle: 0},
	{ID: "beta", Radius: 240, Speed: -0.28, Strength: 1200000, Size: 12, Color: 0xff8ad9, Angle: math.Pi * 0.6},
	{ID: "gamma", Radius: 120, Speed: 0.65, Strength: 900000, Size: 8, Color: 0x86ffad, Angle: math.Pi * 1.3},
}
