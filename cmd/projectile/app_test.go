package main

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/projectile/engine"
	"github.com/lixenwraith/projectile/physics"
)

func newTestApp(t *testing.T) (*App, *engine.MockTimeProvider) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(100, 30)
	t.Cleanup(screen.Fini)

	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	return NewApp(screen, physics.LaunchDegrees(25, 45), 0.02, clock, nil), clock
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestHandleEvent_Adjustments(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		speed float64
		angle float64
	}{
		{"up raises speed", key(tcell.KeyUp), 27, 45},
		{"down lowers speed", key(tcell.KeyDown), 23, 45},
		{"right raises angle", key(tcell.KeyRight), 25, 46},
		{"left lowers angle", key(tcell.KeyLeft), 25, 44},
		{"unbound rune", runeKey('x'), 25, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(t)
			if !a.HandleEvent(tt.ev) {
				t.Fatal("Expected app to keep running")
			}
			l := a.session.Launch()
			if l.Speed != tt.speed {
				t.Errorf("Expected speed %v, got %v", tt.speed, l.Speed)
			}
			if math.Abs(l.AngleDegrees()-tt.angle) > 1e-9 {
				t.Errorf("Expected angle %v, got %v", tt.angle, l.AngleDegrees())
			}
		})
	}
}

func TestHandleEvent_SpeedFloor(t *testing.T) {
	a, _ := newTestApp(t)
	for i := 0; i < 20; i++ {
		a.HandleEvent(key(tcell.KeyDown))
	}
	if got := a.session.Launch().Speed; got != 2 {
		t.Errorf("Expected speed floored at 2, got %v", got)
	}
}

func TestHandleEvent_Quit(t *testing.T) {
	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyCtrlC), runeKey('q')} {
		a, _ := newTestApp(t)
		if a.HandleEvent(ev) {
			t.Errorf("Expected %v to quit", ev.Name())
		}
	}
}

func TestReplayAndPause(t *testing.T) {
	a, clock := newTestApp(t)

	a.driver.Tick()
	clock.AdvanceSeconds(0.5)
	a.driver.Tick()
	if a.session.Elapsed() == 0 {
		t.Fatal("Expected session to advance")
	}

	a.HandleEvent(runeKey(' '))
	if a.session.Elapsed() != 0 || a.session.State() != physics.Reset(a.session.Launch()) {
		t.Errorf("Expected replay to reset state, got %+v", a.session.State())
	}

	// First tick after replay only records time
	clock.AdvanceSeconds(0.1)
	a.driver.Tick()
	if a.session.Elapsed() != 0 {
		t.Errorf("Expected no step right after replay, got elapsed %v", a.session.Elapsed())
	}

	clock.AdvanceSeconds(0.1)
	a.driver.Tick()
	before := a.session.State()

	a.HandleEvent(runeKey('p'))
	clock.AdvanceSeconds(1)
	a.driver.Tick()
	if a.session.State() != before {
		t.Errorf("Expected paused session to hold state, got %+v want %+v", a.session.State(), before)
	}

	a.HandleEvent(runeKey('p'))
	clock.AdvanceSeconds(0.1)
	a.driver.Tick()
	if a.session.State() == before {
		t.Error("Expected resumed session to advance")
	}
}

func TestDraw(t *testing.T) {
	a, _ := newTestApp(t)
	a.Draw()
	text := screenText(a.screen)

	for _, want := range []string{"Projectile Trajectory", "Velocity: 25 m/s", "Angle: 45°", "space replay"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected screen to contain %q", want)
		}
	}
	if strings.Contains(text, "[PAUSED]") {
		t.Error("Expected no pause marker while running")
	}

	a.HandleEvent(runeKey('p'))
	a.Draw()
	if !strings.Contains(screenText(a.screen), "[PAUSED]") {
		t.Error("Expected pause marker while paused")
	}
}
