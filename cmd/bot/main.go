package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/clients/backend"
	"max.ks1230/finance-assistant/internal/clients/tg"
	"max.ks1230/finance-assistant/internal/config"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/export"
	"max.ks1230/finance-assistant/internal/model/messages"
	"max.ks1230/finance-assistant/internal/tracing"
	"max.ks1230/finance-assistant/internal/utils"
)

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	client, err := tg.New(conf.Telegram(), conf.App().RequestTimeout())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}

	clock := utils.SystemClock{}
	backendClient := backend.New(conf.HTTP().BackendURL(), conf.App().RequestTimeout())
	exporter := export.NewExporter(conf.App(), clock, backendClient)
	msgService := messages.NewService(client, backendClient, exporter, conf.App(), clock)

	logger.Info("Bot init - end", zap.String("backend", conf.HTTP().BackendURL()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client.ListenUpdates(ctx, msgService)
}
