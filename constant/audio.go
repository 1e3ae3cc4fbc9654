package constant

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Launch whoosh
const (
	LaunchSoundDuration = 250 * time.Millisecond
	LaunchSoundFreqLow  = 180.0
	LaunchSoundFreqHigh = 520.0
)

// Landing thud
const (
	LandSoundDuration = 180 * time.Millisecond
	LandSoundFreq     = 70.0
	LandSoundDecay    = 18.0 // exponential envelope rate, 1/s
)
