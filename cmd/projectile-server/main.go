package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lixenwraith/projectile/config"
	"github.com/lixenwraith/projectile/network"
)

func main() {
	cfg := config.Load()
	cfg.RegisterFlags(flag.CommandLine)
	cfg.RegisterServerFlags(flag.CommandLine)

	netCfg := network.DefaultConfig()
	flag.IntVar(&netCfg.MaxSessions, "max-sessions", netCfg.MaxSessions, "maximum concurrent sessions, 0 for unlimited")
	flag.DurationVar(&netCfg.FrameInterval, "frame", netCfg.FrameInterval, "interval between streamed frames")
	flag.Float64Var(&netCfg.MaxSpeed, "max-speed", netCfg.MaxSpeed, "largest launch speed a client may apply, m/s")
	flag.Parse()

	logger := log.New(os.Stderr, "projectile-server ", log.LstdFlags|log.Lmicroseconds)

	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}
	if netCfg.FrameInterval < time.Millisecond {
		logger.Fatalf("invalid configuration: frame interval %v below 1ms", netCfg.FrameInterval)
	}

	netCfg.Address = cfg.Addr
	netCfg.Launch = cfg.Launch()
	netCfg.TimeStep = cfg.TimeStep

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := network.NewServer(netCfg, logger)
	if err := srv.ListenAndServe(ctx); err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Printf("stopped")
}
