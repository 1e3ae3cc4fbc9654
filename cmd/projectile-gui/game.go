package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/engine"
	"github.com/lixenwraith/projectile/physics"
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorSky        = color.RGBA{200, 230, 255, 255}
	colorGround     = color.RGBA{100, 80, 60, 255}
	colorTrail      = color.RGBA{255, 255, 255, 255}
	colorShadow     = color.RGBA{50, 50, 50, 255}
	colorBall       = color.RGBA{255, 100, 0, 255}
	colorGrid       = color.RGBA{220, 220, 220, 255}
	colorAxis       = color.RGBA{60, 60, 60, 255}
	colorPath       = color.RGBA{74, 144, 226, 255}
	colorPeak       = color.RGBA{220, 53, 69, 255}
	colorRange      = color.RGBA{40, 167, 69, 255}
)

const (
	groundHeight = 50
	graphGap     = 60
	ballRadius   = 8
	markerRadius = 5
)

// game adapts a simulation session to the ebiten loop
type game struct {
	session *engine.Session
	clock   *engine.PausableClock
	driver  *engine.Driver
}

func newGame(session *engine.Session) *game {
	clock := engine.NewPausableClock(nil)
	return &game{
		session: session,
		clock:   clock,
		driver:  engine.NewDriver(session, clock),
	}
}

func (g *game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.session.AdjustSpeed(constant.SpeedAdjustStep)
		g.driver.Rebase()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.session.AdjustSpeed(-constant.SpeedAdjustStep)
		g.driver.Rebase()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.session.AdjustAngle(constant.AngleAdjustStep)
		g.driver.Rebase()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.session.AdjustAngle(-constant.AngleAdjustStep)
		g.driver.Rebase()
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.session.Replay()
		g.driver.Rebase()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.clock.Toggle()
	}

	g.driver.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawSimulation(screen)
	g.drawGraph(screen)

	l := g.session.Launch()
	status := fmt.Sprintf("Velocity: %.0f m/s | Angle: %.0f° | [SPACE] Replay | [UP/DOWN] Speed | [LEFT/RIGHT] Angle | [P] Pause",
		l.Speed, l.AngleDegrees())
	if g.clock.IsPaused() {
		status += " | PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 20, 20)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return constant.WindowWidth, constant.WindowHeight
}

// toPixel maps world metres onto the simulation panel at a fixed scale
func toPixel(p physics.Sample) (float32, float32) {
	return float32(constant.PixelMargin + p.X*constant.PixelScale),
		float32(constant.SimHeight - p.Y*constant.PixelScale)
}

func (g *game) drawSimulation(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, constant.WindowWidth, constant.SimHeight, colorSky, false)
	vector.DrawFilledRect(screen, 0, constant.SimHeight, constant.WindowWidth, groundHeight, colorGround, false)

	trail := g.session.Trail()
	for i := 1; i < len(trail); i++ {
		x0, y0 := toPixel(trail[i-1])
		x1, y1 := toPixel(trail[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colorTrail, true)
	}

	x, y := toPixel(g.session.State().Position())
	if x < constant.WindowWidth {
		vector.DrawFilledRect(screen, x-5, constant.SimHeight-5, 15, 5, colorShadow, false)
		vector.DrawFilledCircle(screen, x, y, ballRadius, colorBall, true)
	}
}

// drawGraph plots the analytical trajectory below the simulation, fitted to the panel
func (g *game) drawGraph(screen *ebiten.Image) {
	left := float32(constant.PixelMargin)
	top := float32(constant.SimHeight + graphGap)
	w := float32(constant.WindowWidth - 2*constant.PixelMargin)
	h := float32(constant.WindowHeight-constant.PixelMargin) - top
	if w <= 0 || h <= 0 {
		return
	}

	tr := g.session.Trajectory()
	maxX, maxY := tr.Bounds()
	maxX = math.Max(maxX*1.1, 1)
	maxY = math.Max(maxY*1.1, 1)
	toGraph := func(p physics.Sample) (float32, float32) {
		return left + float32(p.X/maxX)*w, top + h - float32(p.Y/maxY)*h
	}

	for i := 1; i < 10; i++ {
		gx := left + w*float32(i)/10
		gy := top + h*float32(i)/10
		vector.StrokeLine(screen, gx, top, gx, top+h, 1, colorGrid, false)
		vector.StrokeLine(screen, left, gy, left+w, gy, 1, colorGrid, false)
	}
	vector.StrokeLine(screen, left, top, left, top+h, 1, colorAxis, false)
	vector.StrokeLine(screen, left, top+h, left+w, top+h, 1, colorAxis, false)
	ebitenutil.DebugPrintAt(screen, "Projectile Trajectory", int(left+w/2)-60, int(top)-18)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f", maxX), int(left+w)-30, int(top+h)+4)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f", maxY), int(left)-30, int(top))

	for i := 1; i < len(tr); i++ {
		x0, y0 := toGraph(tr[i-1])
		x1, y1 := toGraph(tr[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, 2, colorPath, true)
	}

	if peak, ok := tr.Peak(); ok {
		px, py := toGraph(peak)
		vector.DrawFilledCircle(screen, px, py, markerRadius, colorPeak, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Peak: %.1fm", peak.Y), int(px)+8, int(py)-16)
	}
	if last, ok := tr.Range(); ok {
		rx, ry := toGraph(last)
		vector.DrawFilledCircle(screen, rx, ry, markerRadius, colorRange, true)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Range: %.1fm", last.X), int(rx)-90, int(ry)-20)
	}
}
