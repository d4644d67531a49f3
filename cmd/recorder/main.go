package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"max.ks1230/finance-assistant/internal/clients/kafka"
	"max.ks1230/finance-assistant/internal/config"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/storage"
)

const recorderService = "finance_assistant.Recorder"

type journal interface {
	SaveTurn(ctx context.Context, turn expense.Turn) error
	GetExpenses(ctx context.Context, since time.Time) ([]expense.Entry, error)
}

func main() {
	defer logger.Sync()
	logger.Info("Recorder init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}
	if !conf.Kafka().Enabled() {
		logger.Fatal("recorder needs kafka brokers in the config")
	}

	var expenses journal
	if conf.Postgres().Enabled() {
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres:", zap.Error(err))
		}
		defer db.Close()
		expenses = db
	} else {
		logger.Warn("postgres is not configured, turns are kept in memory")
		expenses = storage.NewInMemStorage()
	}

	consumer, err := kafka.NewConsumer(conf.Kafka(), expenses)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", conf.Recorder().GRPCPort()))
	if err != nil {
		logger.Fatal("failed to listen", zap.Error(err))
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	logger.Info("Recorder init - end", zap.String("grpc", lis.Addr().String()))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		healthServer.SetServingStatus(recorderService, healthpb.HealthCheckResponse_SERVING)
		defer healthServer.SetServingStatus(recorderService, healthpb.HealthCheckResponse_NOT_SERVING)
		return consumer.StartConsuming(ctx)
	})
	g.Go(func() error {
		return errors.Wrap(grpcServer.Serve(lis), "serve grpc")
	})
	g.Go(func() error {
		<-ctx.Done()
		healthServer.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	if err = g.Wait(); err != nil {
		logger.Error("recorder stopped with error", zap.Error(err))
	}
	logger.Info("Recorder stopped")
}
