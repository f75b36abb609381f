package main

import (
	"context"
	"ctchen222/titac/internal/bot"
	"ctchen222/titac/internal/config"
	"ctchen222/titac/internal/logger"
	"ctchen222/titac/internal/room"
	"ctchen222/titac/internal/telemetry"
	"ctchen222/titac/internal/ui"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func init() {
	// raylib must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.Load(config.Path())
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry before the logger so the slog bridge exports.
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(conf.SlogLevel())

	opponent := bot.NewRandom(conf.Opponent.Seed)
	r := room.NewRoom(opponent, conf.Opponent.ThinkDelay)

	ui.Run(ctx, conf.Window, r)

	slog.Info("titac exiting", "session.id", r.ID, "rounds", r.Snapshot().Round)
}
