package core

// Kinetic holds float position and velocity in world units
// Velocity is units per second
type Kinetic struct {
	X, Y   float64
	VX, VY float64
}

// Integrate advances position by velocity over dt seconds
func (k *Kinetic) Integrate(dt float64) {
	k.X += k.VX * dt
	k.Y += k.VY * dt
}

// Stop zeroes velocity
func (k *Kinetic) Stop() {
	k.VX, k.VY = 0, 0
}
