package physics

import (
	"math"

	"github.com/lixenwraith/projectile/constant"
)

// State is the live position and velocity of the animated projectile
type State struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// Reset places a fresh projectile at the origin with the launch velocity
func Reset(l Launch) State {
	vx, vy := l.Velocity()
	return State{VX: vx, VY: vy}
}

// Step performs semi-implicit Euler integration: v = v - g*dt; p = p + v*dt
// Velocity is updated before position. Crossing the ground clamps y and stops vertical motion;
// horizontal motion is not grounded and keeps advancing on later steps.
// dt is applied as given, callers decide what a non-positive dt means
func Step(s State, dt float64) State {
	s.VY -= constant.Gravity * dt
	s.X += s.VX * dt
	s.Y += s.VY * dt

	if s.Y < 0 {
		s.Y = 0
		s.VY = 0
	}
	return s
}

// Grounded reports whether the projectile rests on the ground with no vertical velocity
func (s State) Grounded() bool {
	return s.Y == 0 && s.VY == 0
}

// Speed returns the velocity magnitude
func (s State) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Position returns the state's position as a sample
func (s State) Position() Sample {
	return Sample{X: s.X, Y: s.Y}
}
