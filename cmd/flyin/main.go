// Command flyin runs the drone routing simulator.
package main

import (
	"log/slog"
	"os"

	"github.com/talgya/flyin/internal/cmd"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
