package physics

import (
	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/vmath"
)

// TurnToward rotates velocity toward targetAngle by at most maxTurn, keeping speed
func TurnToward(k *core.Kinetic, targetAngle, maxTurn float64) {
	speed := vmath.Magnitude(k.VX, k.VY)
	if speed == 0 {
		return
	}
	heading := vmath.RotateToward(vmath.Heading(k.VX, k.VY), targetAngle, maxTurn)
	k.VX, k.VY = vmath.Polar(heading, speed)
}

// TurnTowardPoint steers toward (x, y)
func TurnTowardPoint(k *core.Kinetic, x, y, maxTurn float64) {
	TurnToward(k, vmath.Heading(x-k.X, y-k.Y), maxTurn)
}

// TurnAwayFromPoint steers directly away from (x, y)
func TurnAwayFromPoint(k *core.Kinetic, x, y, maxTurn float64) {
	TurnToward(k, vmath.Heading(k.X-x, k.Y-y), maxTurn)
}

// Perturb adds delta radians to the heading, keeping speed
func Perturb(k *core.Kinetic, delta float64) {
	if delta == 0 {
		return
	}
	k.VX, k.VY = vmath.Rotate(k.VX, k.VY, delta)
}

// Scale multiplies velocity
func Scale(k *core.Kinetic, factor float64) {
	k.VX *= factor
	k.VY *= factor
}

// Aim sets velocity toward (x, y) at speed
// A target on top of the body leaves velocity pointing along +x
func Aim(k *core.Kinetic, x, y, speed float64) {
	k.VX, k.VY = vmath.Polar(vmath.Heading(x-k.X, y-k.Y), speed)
}
