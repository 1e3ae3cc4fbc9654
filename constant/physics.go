package constant

import "math"

// Gravity is the downward acceleration applied to every projectile, m/s²
const Gravity = 9.81

// Trajectory sampling
const (
	// DefaultTimeStep is the sampling interval of the analytical trajectory, seconds
	DefaultTimeStep = 0.02

	// MaxTrajectorySamples bounds a single trajectory regardless of launch speed
	MaxTrajectorySamples = 1 << 20
)

// Launch defaults: 25 m/s at 45 degrees
const (
	DefaultLaunchSpeed    = 25.0
	DefaultLaunchAngleDeg = 45.0
	DefaultLaunchAngle    = DefaultLaunchAngleDeg * math.Pi / 180
)

// Interactive adjustment steps
const (
	SpeedAdjustStep = 2.0 // m/s per Up/Down press
	MinAdjustSpeed  = 2.0 // Down never goes below this
	AngleAdjustStep = 1.0 // degrees per Left/Right press
	MinAngleDeg     = 0.0
	MaxAngleDeg     = 180.0
)
