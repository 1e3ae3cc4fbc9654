package engine

import (
	"context"
	"time"

	"github.com/lixenwraith/projectile/constant"
)

// Command mutates a session between frames
type Command func(*Session)

// commandQueueSize bounds pending commands submitted from other goroutines
const commandQueueSize = 16

// Driver owns the frame clock and steps a Session with the real time elapsed between frames
// The first frame only records a timestamp; frames with no elapsed time are skipped
type Driver struct {
	session  *Session
	clock    TimeProvider
	last     time.Time
	frames   uint64
	commands chan Command
}

// NewDriver creates a driver for s reading clock, or the system clock when clock is nil
func NewDriver(s *Session, clock TimeProvider) *Driver {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Driver{
		session:  s,
		clock:    clock,
		commands: make(chan Command, commandQueueSize),
	}
}

// Session returns the driven session
func (d *Driver) Session() *Session {
	return d.session
}

// Frames returns the number of frames that advanced the session
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Tick reads the clock and steps the session by the time since the previous tick
// Returns the dt applied, 0 when the frame was skipped
func (d *Driver) Tick() float64 {
	now := d.clock.Now()
	if d.last.IsZero() {
		d.last = now
		return 0
	}

	dt := now.Sub(d.last).Seconds()
	d.last = now
	if dt <= 0 {
		return 0
	}

	d.session.Step(dt)
	d.frames++
	return dt
}

// Advance steps the session through a synthetic dt sequence without reading the clock
func (d *Driver) Advance(dts ...float64) {
	for _, dt := range dts {
		if dt <= 0 {
			continue
		}
		d.session.Step(dt)
		d.frames++
	}
}

// Rebase forgets the previous timestamp so the next Tick starts a fresh interval
func (d *Driver) Rebase() {
	d.last = time.Time{}
}

// Submit queues cmd to run on the driving goroutine before the next frame
// Returns false if the queue is full
func (d *Driver) Submit(cmd Command) bool {
	select {
	case d.commands <- cmd:
		return true
	default:
		return false
	}
}

// Run ticks the session every interval until ctx is cancelled, calling frame after each tick
// Submitted commands run between frames on the same goroutine
func (d *Driver) Run(ctx context.Context, interval time.Duration, frame func(*Session)) error {
	if interval <= 0 {
		interval = constant.FrameInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case cmd := <-d.commands:
			cmd(d.session)

		case <-ticker.C:
			d.Tick()
			if frame != nil {
				frame(d.session)
			}
		}
	}
}
