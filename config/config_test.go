package config

import (
	"errors"
	"flag"
	"math"
	"testing"

	"github.com/lixenwraith/projectile/constant"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Speed != constant.DefaultLaunchSpeed {
		t.Errorf("Expected speed %v, got %v", constant.DefaultLaunchSpeed, cfg.Speed)
	}
	if cfg.AngleDeg != constant.DefaultLaunchAngleDeg {
		t.Errorf("Expected angle %v, got %v", constant.DefaultLaunchAngleDeg, cfg.AngleDeg)
	}
	if cfg.TimeStep != constant.DefaultTimeStep {
		t.Errorf("Expected time step %v, got %v", constant.DefaultTimeStep, cfg.TimeStep)
	}
	if cfg.Addr != DefaultAddr {
		t.Errorf("Expected addr %q, got %q", DefaultAddr, cfg.Addr)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvSpeed, "30.5")
	t.Setenv(EnvAngle, "60")
	t.Setenv(EnvTimeStep, "0.01")
	t.Setenv(EnvAddr, "127.0.0.1:9000")
	t.Setenv(EnvDebug, "true")

	cfg := Load()

	if cfg.Speed != 30.5 {
		t.Errorf("Expected speed 30.5, got %v", cfg.Speed)
	}
	if cfg.AngleDeg != 60 {
		t.Errorf("Expected angle 60, got %v", cfg.AngleDeg)
	}
	if cfg.TimeStep != 0.01 {
		t.Errorf("Expected time step 0.01, got %v", cfg.TimeStep)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("Expected addr override, got %q", cfg.Addr)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled")
	}
}

func TestLoadIgnoresInvalidEnvironment(t *testing.T) {
	t.Setenv(EnvSpeed, "fast")
	t.Setenv(EnvAngle, "")
	t.Setenv(EnvTimeStep, "-0.5")
	t.Setenv(EnvDebug, "maybe")

	cfg := Load()
	def := Default()

	if cfg.Speed != def.Speed {
		t.Errorf("Expected default speed, got %v", cfg.Speed)
	}
	if cfg.AngleDeg != def.AngleDeg {
		t.Errorf("Expected default angle, got %v", cfg.AngleDeg)
	}
	if cfg.TimeStep != def.TimeStep {
		t.Errorf("Expected default time step, got %v", cfg.TimeStep)
	}
	if cfg.Debug {
		t.Error("Expected debug to stay disabled")
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvSpeed, "10")

	cfg := Load()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	cfg.RegisterServerFlags(fs)

	if err := fs.Parse([]string{"-angle", "30", "-addr", ":7000"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}
	if cfg.Speed != 10 {
		t.Errorf("Expected environment speed to survive, got %v", cfg.Speed)
	}
	if cfg.AngleDeg != 30 {
		t.Errorf("Expected angle 30 from flag, got %v", cfg.AngleDeg)
	}
	if cfg.Addr != ":7000" {
		t.Errorf("Expected addr from flag, got %q", cfg.Addr)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"NegativeSpeed", func(c *Config) { c.Speed = -1 }, ErrInvalidSpeed},
		{"NaNSpeed", func(c *Config) { c.Speed = math.NaN() }, ErrInvalidSpeed},
		{"InfAngle", func(c *Config) { c.AngleDeg = math.Inf(1) }, ErrInvalidAngle},
		{"ZeroTimeStep", func(c *Config) { c.TimeStep = 0 }, ErrInvalidTimeStep},
		{"ZeroSpeed", func(c *Config) { c.Speed = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLaunchConvertsDegrees(t *testing.T) {
	cfg := Default()
	cfg.AngleDeg = 90
	l := cfg.Launch()

	if math.Abs(l.Angle-math.Pi/2) > 1e-12 {
		t.Errorf("Expected π/2 radians, got %v", l.Angle)
	}
	if l.Speed != cfg.Speed {
		t.Errorf("Expected speed %v, got %v", cfg.Speed, l.Speed)
	}
}
