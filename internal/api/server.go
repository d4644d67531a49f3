package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/reports"
)

const shutdownTimeout = 10 * time.Second

type chatService interface {
	Reply(ctx context.Context, req chat.Request) (chat.Response, error)
	GenerateExpenses(text string) (expense.Payload, error)
	Configured() bool
}

type renderer interface {
	Render(payload expense.Payload, today string) ([]byte, error)
}

type tipService interface {
	Daily(ctx context.Context, category string) (chat.Tip, bool)
}

type reportGenerator interface {
	GenerateReport(ctx context.Context, period string) (reports.Report, error)
}

type config interface {
	BaseCurrency() string
	FilePrefix() string
}

type clock interface {
	Now() time.Time
}

type Server struct {
	chat     chatService
	renderer renderer
	tips     tipService
	reports  reportGenerator
	clock    clock
	currency string
	prefix   string
}

func NewServer(config config, chat chatService, renderer renderer, tips tipService, reports reportGenerator, clock clock) *Server {
	return &Server{
		chat:     chat,
		renderer: renderer,
		tips:     tips,
		reports:  reports,
		clock:    clock,
		currency: config.BaseCurrency(),
		prefix:   config.FilePrefix(),
	}
}

// Router wires every backend route. Browsers reach it from any origin.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/chat", s.handleChat)

	r.Post("/download-excel", s.handleDownloadExcel)
	r.Post("/download-csv", s.handleDownloadCSV)
	r.Get("/download/excel", s.handleSampleExcel)
	r.Get("/download/csv", s.handleSampleCSV)
	r.Post("/generate-excel", s.handleGenerateExcel)
	r.Post("/view-summary", s.handleViewSummary)

	r.Get("/daily-tip", s.handleDailyTip)
	r.Post("/daily-tip", s.handleCategoryTip)

	r.Get("/expenses/report", s.handleReport)

	return cors.AllowAll().Handler(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen and serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	logger.Info("http server stopped")
	return nil
}
