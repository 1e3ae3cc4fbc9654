package physics

import (
	"math"

	"github.com/lixenwraith/projectile/constant"
)

// Sample is the displacement from the launch point at one elapsed time
type Sample struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trajectory is a sampled flight path ordered by elapsed time
// A new trajectory replaces the old one on parameter change; it is never edited in place
type Trajectory []Sample

// ComputeTrajectory samples x(t) = vx·t, y(t) = vy·t - g·t²/2 every timeStep seconds from t = 0
// Sampling stops at the first negative y; that sample is dropped, not clamped to the ground.
// The t = 0 sample is always present, so a zero speed or non-upward launch yields only the origin.
//
// Inputs are not validated. A NaN sample is emitted once and ends the path, a timeStep that is not a
// positive finite number falls back to constant.DefaultTimeStep, and the path never exceeds
// constant.MaxTrajectorySamples samples.
func ComputeTrajectory(speed, angle, timeStep float64) Trajectory {
	if !(timeStep > 0) || math.IsInf(timeStep, 1) {
		timeStep = constant.DefaultTimeStep
	}

	vx := speed * math.Cos(angle)
	vy := speed * math.Sin(angle)

	var points Trajectory
	t := 0.0
	for len(points) < constant.MaxTrajectorySamples {
		x := vx * t
		y := vy*t - 0.5*constant.Gravity*t*t

		if y < 0 {
			break
		}

		points = append(points, Sample{X: x, Y: y})
		if math.IsNaN(x) || math.IsNaN(y) {
			break
		}
		t += timeStep
	}

	return points
}

// Peak returns the highest sample; the earliest wins on ties
func (tr Trajectory) Peak() (Sample, bool) {
	if len(tr) == 0 {
		return Sample{}, false
	}
	peak := tr[0]
	for _, p := range tr[1:] {
		if p.Y > peak.Y {
			peak = p
		}
	}
	return peak, true
}

// PeakIndex returns the index of the highest sample, -1 for an empty trajectory
func (tr Trajectory) PeakIndex() int {
	if len(tr) == 0 {
		return -1
	}
	idx := 0
	for i := 1; i < len(tr); i++ {
		if tr[i].Y > tr[idx].Y {
			idx = i
		}
	}
	return idx
}

// Range returns the last sample, the furthest point before the ground crossing
func (tr Trajectory) Range() (Sample, bool) {
	if len(tr) == 0 {
		return Sample{}, false
	}
	return tr[len(tr)-1], true
}

// Duration returns the elapsed time of the last sample for a path sampled at timeStep
func (tr Trajectory) Duration(timeStep float64) float64 {
	if len(tr) == 0 {
		return 0
	}
	return float64(len(tr)-1) * timeStep
}

// Bounds returns the largest x and y reached
func (tr Trajectory) Bounds() (maxX, maxY float64) {
	for _, p := range tr {
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return maxX, maxY
}
