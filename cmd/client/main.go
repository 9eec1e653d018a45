package main

import (
	"context"
	"log"
	"os"

	"taskhub/internal/buildinfo"
	"taskhub/internal/client/cli"
	"taskhub/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
