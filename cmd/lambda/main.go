package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"github.com/Mr-Jayed/TracON-Project1/internal/api/handler"
	"github.com/Mr-Jayed/TracON-Project1/internal/app"
	"github.com/Mr-Jayed/TracON-Project1/internal/config"
	"github.com/Mr-Jayed/TracON-Project1/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("failed to load config", zap.Error(err))
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	a, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("failed to initialise relay", zap.Error(err))
	}
	defer a.Close()

	h := handler.NewRelayHandler(a.Service, log)
	lambda.Start(h.HandleAPIGateway)
}
