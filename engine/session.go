package engine

import (
	"math"

	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/physics"
)

// Session owns one simulation run: its launch parameters, the analytical trajectory computed from
// them, and the single live projectile state advanced frame by frame.
// A Session is not safe for concurrent use; exactly one driving loop steps and resets it
type Session struct {
	launch     physics.Launch
	timeStep   float64
	trajectory physics.Trajectory

	state   physics.State
	elapsed float64
	landed  bool

	// Positions visited while airborne, oldest first, bounded by trailCap
	trail    []physics.Sample
	trailCap int

	onLaunch []func(physics.Launch)
	onLand   []func(physics.State)
}

// NewSession creates a session and computes its trajectory
// A non-positive timeStep selects constant.DefaultTimeStep
func NewSession(l physics.Launch, timeStep float64) *Session {
	if !(timeStep > 0) || math.IsInf(timeStep, 1) {
		timeStep = constant.DefaultTimeStep
	}
	s := &Session{
		timeStep: timeStep,
		trailCap: constant.TrailCapacity,
		trail:    make([]physics.Sample, 0, constant.TrailCapacity),
	}
	s.Apply(l)
	return s
}

// Apply replaces the launch parameters, recomputes the trajectory wholesale and resets the projectile
func (s *Session) Apply(l physics.Launch) {
	s.launch = l
	s.trajectory = l.Trajectory(s.timeStep)
	s.Replay()
}

// Replay discards the live state and relaunches with the current parameters
func (s *Session) Replay() {
	s.state = physics.Reset(s.launch)
	s.elapsed = 0
	s.landed = false
	s.trail = append(s.trail[:0], s.state.Position())

	for _, fn := range s.onLaunch {
		fn(s.launch)
	}
}

// Step advances the projectile by dt seconds
// Non-positive or non-finite dt is a no-op. Returns true on the step that first touches the ground
func (s *Session) Step(dt float64) bool {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return false
	}

	s.state = physics.Step(s.state, dt)
	s.elapsed += dt

	if s.landed {
		return false
	}

	s.pushTrail(s.state.Position())
	if !s.state.Grounded() {
		return false
	}

	s.landed = true
	for _, fn := range s.onLand {
		fn(s.state)
	}
	return true
}

func (s *Session) pushTrail(p physics.Sample) {
	if len(s.trail) >= s.trailCap {
		copy(s.trail, s.trail[1:])
		s.trail = s.trail[:len(s.trail)-1]
	}
	s.trail = append(s.trail, p)
}

// OnLaunch registers fn to run on every Apply and Replay
func (s *Session) OnLaunch(fn func(physics.Launch)) {
	s.onLaunch = append(s.onLaunch, fn)
}

// OnLand registers fn to run once per flight, at first ground contact
func (s *Session) OnLand(fn func(physics.State)) {
	s.onLand = append(s.onLand, fn)
}

// Launch returns the current launch parameters
func (s *Session) Launch() physics.Launch {
	return s.launch
}

// State returns a copy of the live projectile state
func (s *Session) State() physics.State {
	return s.state
}

// Trajectory returns the analytical path for the current launch
// The slice is replaced, never modified, on Apply
func (s *Session) Trajectory() physics.Trajectory {
	return s.trajectory
}

// TimeStep returns the trajectory sampling interval
func (s *Session) TimeStep() float64 {
	return s.timeStep
}

// Elapsed returns the simulated seconds since the last launch
func (s *Session) Elapsed() float64 {
	return s.elapsed
}

// Landed reports whether the current flight has touched the ground
func (s *Session) Landed() bool {
	return s.landed
}

// Trail returns a copy of the airborne positions, oldest first
func (s *Session) Trail() []physics.Sample {
	out := make([]physics.Sample, len(s.trail))
	copy(out, s.trail)
	return out
}
