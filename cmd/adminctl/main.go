package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/jobport/adminctl/internal/buildinfo"
	"github.com/jobport/adminctl/internal/cli"
	"github.com/jobport/adminctl/internal/config"
	"github.com/jobport/adminctl/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)

}
