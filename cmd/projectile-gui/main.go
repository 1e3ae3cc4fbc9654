package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/projectile/audio"
	"github.com/lixenwraith/projectile/config"
	"github.com/lixenwraith/projectile/constant"
	"github.com/lixenwraith/projectile/engine"
	"github.com/lixenwraith/projectile/physics"
)

func main() {
	cfg := config.Load()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	session := engine.NewSession(cfg.Launch(), cfg.TimeStep)

	sound := audio.NewSoundManager(audio.LoadConfig())
	if err := sound.Initialize(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	session.OnLaunch(func(physics.Launch) { sound.PlayLaunch() })
	session.OnLand(func(st physics.State) {
		log.Printf("landed at x=%.2f after %.2fs", st.X, session.Elapsed())
		sound.PlayLand()
	})

	ebiten.SetWindowTitle("Projectile Flight")
	ebiten.SetWindowSize(constant.WindowWidth, constant.WindowHeight)
	ebiten.SetTPS(constant.FrameRate)

	if err := ebiten.RunGame(newGame(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("run: %v", err)
	}
}
