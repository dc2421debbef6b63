package main

import (
	"context"

	"github.com/feralgames/go-wolfpack/cmd/wolfpack/command"
	"github.com/pixil98/go-log"
	"github.com/pixil98/go-service"
)

func main() {
	logger := log.NewLogger()

	app, err := service.NewApp(&command.Config{}, command.BuildWorkers)
	if err != nil {
		logger.WithError(err).Fatal("building game service")
	}

	if err := app.Run(context.Background()); err != nil {
		logger.WithError(err).Fatal("running game service")
	}

	logger.Info("shutting down")
}
