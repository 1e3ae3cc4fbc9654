package physics

import (
	"math"

	"github.com/lixenwraith/projectile/constant"
)

// Launch holds the parameters of a single flight, fixed once the flight begins
type Launch struct {
	Speed float64 `json:"speed"` // m/s
	Angle float64 `json:"angle"` // radians above horizontal
}

// NewLaunch creates launch parameters from a speed and an angle in radians
func NewLaunch(speed, angle float64) Launch {
	return Launch{Speed: speed, Angle: angle}
}

// LaunchDegrees creates launch parameters from a speed and an angle in degrees
func LaunchDegrees(speed, deg float64) Launch {
	return Launch{Speed: speed, Angle: Radians(deg)}
}

// DefaultLaunch returns the 25 m/s, 45 degree launch used when nothing is configured
func DefaultLaunch() Launch {
	return Launch{Speed: constant.DefaultLaunchSpeed, Angle: constant.DefaultLaunchAngle}
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleDegrees returns the launch angle in degrees
func (l Launch) AngleDegrees() float64 {
	return Degrees(l.Angle)
}

// Velocity decomposes the launch speed into horizontal and vertical components
func (l Launch) Velocity() (vx, vy float64) {
	return l.Speed * math.Cos(l.Angle), l.Speed * math.Sin(l.Angle)
}

// Valid reports whether the launch is usable by a front end: finite angle, finite non-negative speed
// The physics functions accept any input; this is for boundary validation only
func (l Launch) Valid() bool {
	if math.IsNaN(l.Speed) || math.IsInf(l.Speed, 0) || l.Speed < 0 {
		return false
	}
	return !math.IsNaN(l.Angle) && !math.IsInf(l.Angle, 0)
}

// Trajectory samples the closed-form flight path at the given interval
func (l Launch) Trajectory(timeStep float64) Trajectory {
	return ComputeTrajectory(l.Speed, l.Angle, timeStep)
}

// Closed-form flight figures over flat ground. A launch without upward velocity has zero flight time

// TimeOfFlight returns 2·vy/g
func (l Launch) TimeOfFlight() float64 {
	_, vy := l.Velocity()
	if vy <= 0 {
		return 0
	}
	return 2 * vy / constant.Gravity
}

// PeakTime returns vy/g, the elapsed time at maximum height
func (l Launch) PeakTime() float64 {
	_, vy := l.Velocity()
	if vy <= 0 {
		return 0
	}
	return vy / constant.Gravity
}

// MaxHeight returns vy²/2g
func (l Launch) MaxHeight() float64 {
	_, vy := l.Velocity()
	if vy <= 0 {
		return 0
	}
	return vy * vy / (2 * constant.Gravity)
}

// RangeDistance returns the horizontal distance covered by the time the projectile returns to launch height
func (l Launch) RangeDistance() float64 {
	vx, _ := l.Velocity()
	return vx * l.TimeOfFlight()
}
