// Package config resolves launch and front-end settings from the environment and command-line flags.
// Environment values are read first; flags registered with RegisterFlags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/physics"
)

// Environment variables
const (
	EnvSpeed    = "PROJECTILE_SPEED"    // m/s
	EnvAngle    = "PROJECTILE_ANGLE"    // degrees
	EnvTimeStep = "PROJECTILE_TIMESTEP" // seconds
	EnvAddr     = "PROJECTILE_ADDR"
	EnvDebug    = "PROJECTILE_DEBUG"
)

// DefaultAddr is the listen address of the streaming server
const DefaultAddr = ":8080"

// Sentinel errors
var (
	ErrInvalidSpeed    = errors.New("speed must be a finite number >= 0")
	ErrInvalidAngle    = errors.New("angle must be a finite number")
	ErrInvalidTimeStep = errors.New("time step must be a finite number > 0")
)

// Config holds the settings shared by the front ends
type Config struct {
	Speed    float64 // m/s
	AngleDeg float64 // degrees above horizontal
	TimeStep float64 // trajectory sampling interval, seconds
	Addr     string  // server listen address
	Debug    bool    // enables file logging
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Speed:    constant.DefaultLaunchSpeed,
		AngleDeg: constant.DefaultLaunchAngleDeg,
		TimeStep: constant.DefaultTimeStep,
		Addr:     DefaultAddr,
	}
}

// Load returns the defaults overridden by any parseable environment variables
// Unparseable values are ignored and keep the default
func Load() *Config {
	cfg := Default()

	if v := os.Getenv(EnvSpeed); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Speed = val
		}
	}

	if v := os.Getenv(EnvAngle); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.AngleDeg = val
		}
	}

	if v := os.Getenv(EnvTimeStep); v != "" {
		if val, err := strconv.ParseFloat(v, 64); err == nil && val > 0 {
			cfg.TimeStep = val
		}
	}

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}

	if v := os.Getenv(EnvDebug); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = val
		}
	}

	return cfg
}

// RegisterFlags binds the settings to fs, using the current values as flag defaults
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.Speed, "speed", c.Speed, "launch speed, m/s")
	fs.Float64Var(&c.AngleDeg, "angle", c.AngleDeg, "launch angle, degrees above horizontal")
	fs.Float64Var(&c.TimeStep, "dt", c.TimeStep, "trajectory sampling interval, seconds")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "write debug log to file")
}

// RegisterServerFlags binds the server-only settings to fs
func (c *Config) RegisterServerFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Addr, "addr", c.Addr, "listen address")
}

// Validate checks the settings the physics core does not validate itself
func (c *Config) Validate() error {
	if math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) || c.Speed < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, c.Speed)
	}
	if math.IsNaN(c.AngleDeg) || math.IsInf(c.AngleDeg, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidAngle, c.AngleDeg)
	}
	if !(c.TimeStep > 0) || math.IsInf(c.TimeStep, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidTimeStep, c.TimeStep)
	}
	return nil
}

// Launch returns the configured launch parameters with the angle converted to radians
func (c *Config) Launch() physics.Launch {
	return physics.LaunchDegrees(c.Speed, c.AngleDeg)
}
