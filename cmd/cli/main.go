package main

import (
	"context"
	"log"
	"os"

	"github.com/astroerik-coder/agrostock/internal/buildinfo"
	"github.com/astroerik-coder/agrostock/internal/client/cli"
	"github.com/astroerik-coder/agrostock/internal/client/config"
	"github.com/astroerik-coder/agrostock/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
