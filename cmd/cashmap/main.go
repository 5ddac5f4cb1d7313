package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/SscSPs/cashmap/internal/commands"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := commands.NewRootCommand(commands.DefaultRuntime(logger)).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
