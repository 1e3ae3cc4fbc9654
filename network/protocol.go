package network

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lixenwraith/projectile/physics"
)

// MessageType identifies the semantic meaning of a message
type MessageType string

const (
	// Client -> server
	MsgApply  MessageType = "apply"  // New launch parameters
	MsgReplay MessageType = "replay" // Relaunch with current parameters
	MsgPause  MessageType = "pause"
	MsgResume MessageType = "resume"

	// Server -> client
	MsgHello      MessageType = "hello"      // Session greeting
	MsgTrajectory MessageType = "trajectory" // Full analytical path
	MsgFrame      MessageType = "frame"      // Live projectile state
	MsgError      MessageType = "error"      // Rejected client message
)

// Sentinel errors
var (
	ErrMalformedMessage = errors.New("malformed message")
	ErrUnknownMessage   = errors.New("unknown message type")
	ErrInvalidLaunch    = errors.New("invalid launch parameters")
)

// ClientMessage is any message a client sends
// Speed and AngleDeg are only read for apply; a missing field keeps the current value
type ClientMessage struct {
	Type     MessageType `json:"type" jsonschema:"required,enum=apply,enum=replay,enum=pause,enum=resume"`
	Speed    *float64    `json:"speed,omitempty" jsonschema:"description=launch speed in m/s"`
	AngleDeg *float64    `json:"angle_deg,omitempty" jsonschema:"description=launch angle in degrees above horizontal"`
}

// HelloMessage opens every session
type HelloMessage struct {
	Type      MessageType `json:"type" jsonschema:"required"`
	Session   string      `json:"session" jsonschema:"required"`
	TimeStep  float64     `json:"time_step" jsonschema:"required"`
	FrameRate float64     `json:"frame_rate" jsonschema:"required"`
}

// TrajectoryMessage carries the analytical path of the current launch
type TrajectoryMessage struct {
	Type     MessageType      `json:"type" jsonschema:"required"`
	Speed    float64          `json:"speed" jsonschema:"required"`
	AngleDeg float64          `json:"angle_deg" jsonschema:"required"`
	Samples  []physics.Sample `json:"samples" jsonschema:"required"`
	Peak     physics.Sample   `json:"peak"`
	Range    physics.Sample   `json:"range"`
}

// FrameMessage carries the live projectile state after one driver tick
type FrameMessage struct {
	Type    MessageType   `json:"type" jsonschema:"required"`
	Seq     uint64        `json:"seq" jsonschema:"required"`
	Elapsed float64       `json:"t" jsonschema:"required"`
	State   physics.State `json:"state" jsonschema:"required"`
	Landed  bool          `json:"landed"`
	Paused  bool          `json:"paused"`
}

// ErrorMessage reports a rejected client message; the session continues
type ErrorMessage struct {
	Type    MessageType `json:"type" jsonschema:"required"`
	Message string      `json:"message" jsonschema:"required"`
}

// DecodeClient parses and checks a client message
func DecodeClient(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}

	switch msg.Type {
	case MsgApply:
		if msg.Speed == nil && msg.AngleDeg == nil {
			return ClientMessage{}, fmt.Errorf("%w: apply needs speed or angle_deg", ErrInvalidLaunch)
		}
	case MsgReplay, MsgPause, MsgResume:
	default:
		return ClientMessage{}, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
	return msg, nil
}

// Launch merges an apply message into the current launch and validates the result
func (m ClientMessage) Launch(current physics.Launch) (physics.Launch, error) {
	next := current
	if m.Speed != nil {
		next.Speed = *m.Speed
	}
	if m.AngleDeg != nil {
		next.Angle = physics.Radians(*m.AngleDeg)
	}
	if !next.Valid() {
		return current, fmt.Errorf("%w: speed=%v angle=%v", ErrInvalidLaunch, next.Speed, next.AngleDegrees())
	}
	return next, nil
}

// NewTrajectoryMessage describes the trajectory of l
func NewTrajectoryMessage(l physics.Launch, tr physics.Trajectory) TrajectoryMessage {
	peak, _ := tr.Peak()
	last, _ := tr.Range()
	samples := tr
	if samples == nil {
		samples = physics.Trajectory{}
	}
	return TrajectoryMessage{
		Type:     MsgTrajectory,
		Speed:    l.Speed,
		AngleDeg: l.AngleDegrees(),
		Samples:  samples,
		Peak:     peak,
		Range:    last,
	}
}
