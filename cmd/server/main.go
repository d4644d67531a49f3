package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/api"
	"max.ks1230/finance-assistant/internal/clients/cache"
	"max.ks1230/finance-assistant/internal/clients/gemini"
	"max.ks1230/finance-assistant/internal/clients/kafka"
	"max.ks1230/finance-assistant/internal/config"
	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/assistant"
	"max.ks1230/finance-assistant/internal/model/reports"
	"max.ks1230/finance-assistant/internal/model/spreadsheet"
	"max.ks1230/finance-assistant/internal/model/storage"
	"max.ks1230/finance-assistant/internal/model/tips"
	"max.ks1230/finance-assistant/internal/tracing"
	"max.ks1230/finance-assistant/internal/utils"
)

type generator interface {
	Generate(ctx context.Context, prompt string, cfg chat.GenerationConfig) (string, error)
}

type tipCache interface {
	GetTip(ctx context.Context, key string) (chat.Tip, bool, error)
	SetTip(ctx context.Context, key string, tip chat.Tip, ttl time.Duration) error
}

type journal interface {
	SaveTurn(ctx context.Context, turn expense.Turn) error
	GetExpenses(ctx context.Context, since time.Time) ([]expense.Entry, error)
}

type recorder interface {
	SaveTurn(ctx context.Context, turn expense.Turn) error
}

func main() {
	defer logger.Sync()
	logger.Info("Server init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	closer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer closer.Close()

	clock := utils.SystemClock{}

	var chatGenerator, tipGenerator generator
	if conf.Gemini().Configured() {
		client, err := gemini.New(ctx, conf.Gemini().ApiKey())
		if err != nil {
			logger.Fatal("failed to init gemini:", zap.Error(err))
		}
		defer client.Close()
		chatGenerator = client.Model(conf.Gemini().Model())
		tipGenerator = client.Model(conf.Gemini().TipModel())
	} else {
		logger.Warn("GEMINI_API_KEY is not set, chat is disabled and tips use the fallback list")
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
		expenses = storage.NewInMemStorage()
	}

	var turns recorder = expenses
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		turns = producer
	}

	tipStore, closeTips := newTipCache(ctx, conf, clock)
	defer closeTips()

	server := api.NewServer(
		conf.App(),
		assistant.NewService(conf.App(), chatGenerator, turns, clock),
		spreadsheet.NewRenderer(conf.App()),
		tips.NewService(tipGenerator, tipStore, clock),
		reports.NewGenerator(conf.App(), expenses, clock),
		clock,
	)

	logger.Info("Server init - end")

	if err = server.Run(ctx, conf.HTTP().Address()); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

// newTipCache prefers memcached, then redis, then the in-process map.
// An unreachable backend falls through to the next one.
func newTipCache(ctx context.Context, conf *config.Service, clock utils.SystemClock) (tipCache, func()) {
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err == nil {
			return mc, func() {}
		}
		logger.Warn("memcached unavailable", zap.Error(err))
	}
	if conf.Redis().Enabled() {
		rc, err := cache.NewRedis(ctx, conf.Redis())
		if err == nil {
			return rc, func() {
				if err := rc.Close(); err != nil {
					logger.Warn("close redis", zap.Error(err))
				}
			}
		}
		logger.Warn("redis unavailable", zap.Error(err))
	}
	return cache.NewMemory(clock), func() {}
}
