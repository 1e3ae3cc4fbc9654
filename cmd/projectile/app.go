package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/projectile/audio"
	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/engine"
	"github.com/lixenwraith/projectile/physics"
	"github.com/lixenwraith/projectile/render"
)

const helpText = "↑↓ speed  ←→ angle  space replay  p pause  esc quit"

var (
	styleStatus = tcell.StyleDefault.Foreground(render.ColorTitle)
	styleHelp   = tcell.StyleDefault.Foreground(render.ColorLabel)
	stylePaused = tcell.StyleDefault.Foreground(render.ColorPeak).Bold(true)
)

// App wires the terminal, the simulation session and the sound cues
type App struct {
	screen  tcell.Screen
	session *engine.Session
	clock   *engine.PausableClock
	driver  *engine.Driver
	sound   *audio.SoundManager
}

// NewApp creates the app on an initialized screen; sound may be nil
// A nil clock uses the system clock
func NewApp(screen tcell.Screen, l physics.Launch, timeStep float64, clock engine.TimeProvider, sound *audio.SoundManager) *App {
	session := engine.NewSession(l, timeStep)
	pc := engine.NewPausableClock(clock)

	a := &App{
		screen:  screen,
		session: session,
		clock:   pc,
		driver:  engine.NewDriver(session, pc),
		sound:   sound,
	}

	session.OnLand(func(st physics.State) {
		log.Printf("landed at x=%.2f after %.2fs", st.X, session.Elapsed())
	})
	if sound != nil {
		session.OnLaunch(func(physics.Launch) { sound.PlayLaunch() })
		session.OnLand(func(physics.State) { sound.PlayLand() })
	}
	return a
}

// Run drives the simulation and redraws every frame until quit or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Events are polled on their own goroutine and handled on the driver goroutine
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			if !a.driver.Submit(func(*engine.Session) {
				if !a.HandleEvent(ev) {
					cancel()
				}
			}) {
				log.Printf("input queue full, dropping event")
			}
		}
	}()

	a.Draw()
	err := a.driver.Run(ctx, constant.FrameInterval, func(*engine.Session) {
		a.Draw()
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// HandleEvent applies one terminal event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.session.AdjustSpeed(constant.SpeedAdjustStep)
	case tcell.KeyDown:
		a.session.AdjustSpeed(-constant.SpeedAdjustStep)
	case tcell.KeyRight:
		a.session.AdjustAngle(constant.AngleAdjustStep)
	case tcell.KeyLeft:
		a.session.AdjustAngle(-constant.AngleAdjustStep)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			a.session.Replay()
		case 'p', 'P':
			log.Printf("paused=%v", a.clock.Toggle())
			return true
		case 'q':
			return false
		default:
			return true
		}
	default:
		return true
	}

	// Relaunch starts timing from the next frame
	a.driver.Rebase()
	return true
}

// Draw renders the simulation above the graph with a status line at the bottom
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	if w < 1 || h < 2 {
		a.screen.Show()
		return
	}

	tr := a.session.Trajectory()
	bodyH := h - 1
	simH := bodyH / 2

	simArea := render.Rect{X: 0, Y: 0, W: w, H: simH}
	graphArea := render.Rect{X: 0, Y: simH, W: w, H: bodyH - simH}

	render.DrawSimulation(a.screen, render.FitTrajectory(simArea, tr), a.session.State(), a.session.Trail())
	render.DrawGraph(a.screen, render.FitTrajectory(graphArea, tr), tr)
	a.drawStatus(h - 1)

	a.screen.Show()
}

func (a *App) drawStatus(row int) {
	l := a.session.Launch()
	st := a.session.State()
	status := fmt.Sprintf("Velocity: %.0f m/s  Angle: %.0f°  t=%.2fs  x=%.1fm y=%.1fm  ",
		l.Speed, l.AngleDegrees(), a.session.Elapsed(), st.X, st.Y)
	render.DrawText(a.screen, 0, row, status, styleStatus)

	col := len([]rune(status))
	if a.clock.IsPaused() {
		const paused = "[PAUSED]  "
		render.DrawText(a.screen, col, row, paused, stylePaused)
		col += len(paused)
	}
	render.DrawText(a.screen, col, row, helpText, styleHelp)
}
