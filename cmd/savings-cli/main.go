package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/cjsavings/savings-client/internal/cli"
	"github.com/cjsavings/savings-client/internal/config"
	"github.com/cjsavings/savings-client/internal/logging"
)

func main() {

	cfg := config.LoadConfig()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})
	logger := logging.NewSlogLogger(slog.New(handler))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app.Run(ctx)
}
