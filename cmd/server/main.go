// Command server runs the Bible study HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. Exit codes: 0 = clean shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/warrenjonahb/bible-study-app/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
