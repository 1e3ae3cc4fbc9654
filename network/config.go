package network

import (
	"time"

	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/physics"
)

// Config holds streaming server configuration
type Config struct {
	// Address to bind
	Address string

	// Launch every new session starts with
	Launch   physics.Launch
	TimeStep float64

	// Launches above MaxSpeed are rejected; the path would not fit a message
	MaxSpeed float64

	// Connection limits
	MaxSessions int
	ReadLimit   int64 // bytes per client message

	// Timing
	FrameInterval time.Duration
	WriteTimeout  time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
}

// DefaultConfig returns production-safe defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         ":8080",
		Launch:          physics.DefaultLaunch(),
		TimeStep:        constant.DefaultTimeStep,
		MaxSpeed:        1000,
		MaxSessions:     64,
		ReadLimit:       4 * 1024,
		FrameInterval:   constant.FrameInterval,
		WriteTimeout:    5 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
	}
}
