package main

import (
	"context"
	"os"

	"github.com/phamtrung98/tweet-mirror-reddit-bot/internal/app"
	"github.com/phamtrung98/tweet-mirror-reddit-bot/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	log := logger.New(logger.Opts{})

	application := fx.New(
		fx.Logger(log),
		app.Module,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	// Blocks until an OS signal arrives or a run-once cycle asks to shut down.
	sig := <-application.Wait()

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}

	os.Exit(sig.ExitCode)
}
