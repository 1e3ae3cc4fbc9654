package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestSweepGeneratorLength verifies the sweep drains after its duration
func TestSweepGeneratorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := NewSweepGenerator(rate, 100*time.Millisecond, 200, 400, 1.0)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := g.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
				t.Fatalf("Sample %d out of range or not mono: %v", i, buf[i])
			}
		}
		if !ok {
			break
		}
	}

	if want := rate.N(100 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
	if g.Err() != nil {
		t.Errorf("Expected no error, got: %v", g.Err())
	}
}

// TestSweepGeneratorSilentAtVolumeZero verifies volume scaling
func TestSweepGeneratorSilentAtVolumeZero(t *testing.T) {
	g := NewSweepGenerator(beep.SampleRate(44100), 50*time.Millisecond, 200, 400, 0)
	buf := make([][2]float64, 256)
	n, _ := g.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", buf[i][0], i)
		}
	}
}

type constStreamer struct{}

func (constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{1, 1}
	}
	return len(samples), true
}

func (constStreamer) Err() error { return nil }

// TestEnvelopeDecays verifies the exponential envelope
func TestEnvelopeDecays(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(constStreamer{}, rate, 10, 0.5)

	buf := make([][2]float64, 200)
	n, ok := env.Stream(buf)
	if n != 200 || !ok {
		t.Fatalf("Expected 200 samples, got %d ok=%v", n, ok)
	}
	if buf[0][0] != 0.5 {
		t.Errorf("Expected initial gain 0.5, got %f", buf[0][0])
	}
	// 100 samples at 1 kHz = 0.1s, e^-1
	if want := 0.5 * math.Exp(-1); math.Abs(buf[100][0]-want) > 1e-12 {
		t.Errorf("Expected %f after 0.1s, got %f", want, buf[100][0])
	}
	for i := 1; i < n; i++ {
		if buf[i][0] >= buf[i-1][0] {
			t.Fatalf("Expected strictly decaying envelope at %d", i)
		}
	}
}
