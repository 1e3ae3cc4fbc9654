// Package plot exports a computed trajectory as an image, a text chart or a summary record.
package plot

import (
	"github.com/lixenwraith/projectile/physics"
)

// Summary describes a trajectory the way the graph labels it, next to the closed-form figures
type Summary struct {
	Speed    float64 `json:"speed"`
	AngleDeg float64 `json:"angle_deg"`
	TimeStep float64 `json:"time_step"`
	Samples  int     `json:"samples"`

	Peak       physics.Sample `json:"peak"`
	Range      physics.Sample `json:"range"`
	FlightTime float64        `json:"flight_time"` // elapsed time of the last sample

	AnalyticFlightTime float64 `json:"analytic_flight_time"`
	AnalyticPeakTime   float64 `json:"analytic_peak_time"`
	AnalyticMaxHeight  float64 `json:"analytic_max_height"`
	AnalyticRange      float64 `json:"analytic_range"`
}

// Summarize builds the summary of tr, sampled from l every timeStep seconds
func Summarize(l physics.Launch, timeStep float64, tr physics.Trajectory) Summary {
	peak, _ := tr.Peak()
	last, _ := tr.Range()
	return Summary{
		Speed:              l.Speed,
		AngleDeg:           l.AngleDegrees(),
		TimeStep:           timeStep,
		Samples:            len(tr),
		Peak:               peak,
		Range:              last,
		FlightTime:         tr.Duration(timeStep),
		AnalyticFlightTime: l.TimeOfFlight(),
		AnalyticPeakTime:   l.PeakTime(),
		AnalyticMaxHeight:  l.MaxHeight(),
		AnalyticRange:      l.RangeDistance(),
	}
}
