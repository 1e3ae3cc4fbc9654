package engine

import (
	"math"

	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/physics"
)

// AdjustSpeed changes the launch speed by delta and relaunches
// Speed never drops below constant.MinAdjustSpeed through adjustment
func (s *Session) AdjustSpeed(delta float64) {
	l := s.launch
	l.Speed = math.Max(l.Speed+delta, constant.MinAdjustSpeed)
	s.Apply(l)
}

// AdjustAngle changes the launch angle by deltaDeg degrees, clamped to [MinAngleDeg, MaxAngleDeg], and relaunches
func (s *Session) AdjustAngle(deltaDeg float64) {
	deg := s.launch.AngleDegrees() + deltaDeg
	deg = math.Max(constant.MinAngleDeg, math.Min(constant.MaxAngleDeg, deg))
	s.Apply(physics.LaunchDegrees(s.launch.Speed, deg))
}
