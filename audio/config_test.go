package audio

import (
	"testing"

	"github.com/lixenwraith/projectile/constant"
)

// TestDefaultConfig verifies default configuration
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 0.5 {
		t.Errorf("Expected default master volume 0.5, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != constant.AudioSampleRate {
		t.Errorf("Expected default sample rate %d, got %d", constant.AudioSampleRate, cfg.SampleRate)
	}
}

// TestLoadConfig verifies environment overrides and clamping
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name       string
		enabled    string
		volume     string
		sampleRate string
		wantEn     bool
		wantVol    float64
		wantRate   int
	}{
		{"Defaults", "", "", "", true, 0.5, constant.AudioSampleRate},
		{"Disabled", "false", "", "", false, 0.5, constant.AudioSampleRate},
		{"Volume", "", "80", "", true, 0.8, constant.AudioSampleRate},
		{"VolumeClampHigh", "", "150", "", true, 1.0, constant.AudioSampleRate},
		{"VolumeClampLow", "", "-20", "", true, 0, constant.AudioSampleRate},
		{"SampleRate", "", "", "48000", true, 0.5, 48000},
		{"InvalidValues", "nope", "loud", "-1", true, 0.5, constant.AudioSampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAudioEnabled, tt.enabled)
			t.Setenv(EnvMasterVolume, tt.volume)
			t.Setenv(EnvSampleRate, tt.sampleRate)

			cfg := LoadConfig()
			if cfg.Enabled != tt.wantEn {
				t.Errorf("Expected Enabled=%v, got %v", tt.wantEn, cfg.Enabled)
			}
			if cfg.MasterVolume != tt.wantVol {
				t.Errorf("Expected MasterVolume=%f, got %f", tt.wantVol, cfg.MasterVolume)
			}
			if cfg.SampleRate != tt.wantRate {
				t.Errorf("Expected SampleRate=%d, got %d", tt.wantRate, cfg.SampleRate)
			}
		})
	}
}
