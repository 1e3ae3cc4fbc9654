// Package audio plays short synthesized cues for launches and landings.
// A disabled or failed audio device leaves the manager silent; every Play call is then a no-op.
package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/projectile/constant"
)

// SoundManager manages simulation audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; a nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
// Returns nil without touching the device when audio is disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	err := speaker.Init(sm.sampleRate, sm.sampleRate.N(constant.AudioBufferDuration))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds will be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayLaunch plays the rising whoosh of a launch
func (sm *SoundManager) PlayLaunch() {
	sm.play(sm.launchStreamer())
}

// PlayLand plays the thud of a landing
func (sm *SoundManager) PlayLand() {
	sm.play(sm.landStreamer())
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

func (sm *SoundManager) launchStreamer() beep.Streamer {
	return NewSweepGenerator(
		sm.sampleRate,
		constant.LaunchSoundDuration,
		constant.LaunchSoundFreqLow,
		constant.LaunchSoundFreqHigh,
		sm.cfg.MasterVolume,
	)
}

func (sm *SoundManager) landStreamer() beep.Streamer {
	tone, err := generators.SineTone(sm.sampleRate, constant.LandSoundFreq)
	if err != nil {
		return nil
	}
	env := NewEnvelope(tone, sm.sampleRate, constant.LandSoundDecay, 0.8*sm.cfg.MasterVolume)
	return beep.Take(sm.sampleRate.N(constant.LandSoundDuration), env)
}
