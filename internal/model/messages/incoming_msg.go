package messages

import (
	"context"
	"sync"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/export"
)

type messageSender interface {
	SendMessage(text string, userID int64) error
	SendDocument(ctx context.Context, userID int64, d export.Download) error
}

type backendClient interface {
	Chat(ctx context.Context, req chat.Request) (chat.Response, error)
	Health(ctx context.Context) (chat.Health, error)
	DailyTip(ctx context.Context, category string) (chat.TipResponse, error)
}

type exporter interface {
	ExportCSV(ctx context.Context, payload *expense.Payload, s export.Sink) error
	ExportSpreadsheet(ctx context.Context, payload *expense.Payload, s export.Sink) error
}

type config interface {
	BaseCurrency() string
	MaxTokens() int
	Temperature() float64
}

type clock interface {
	Now() time.Time
}

type Message struct {
	Text   string
	UserID int64
}

type Service struct {
	tgClient messageSender
	handler  *HandlerService
}

func NewService(tgClient messageSender, backend backendClient, exporter exporter, config config, clock clock) *Service {
	return &Service{
		tgClient: tgClient,
		handler:  newHandler(tgClient, backend, exporter, config, clock),
	}
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		logger.Error("handle message", zap.Int64("user", msg.UserID), zap.Error(err))
		if resp == "" {
			resp = somethingWrongMessage
		}
	}
	if resp == "" {
		return err
	}
	if sendErr := s.tgClient.SendMessage(resp, msg.UserID); sendErr != nil {
		return sendErr
	}
	return err
}

// payloads keeps the expenses of each user's latest chat turn. Every turn
// replaces the previous entry, including turns without expenses.
type payloads struct {
	mu   sync.Mutex
	last map[int64]*expense.Payload
}

func newPayloads() *payloads {
	return &payloads{last: make(map[int64]*expense.Payload)}
}

func (p *payloads) replace(userID int64, payload *expense.Payload) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last[userID] = payload
}

func (p *payloads) get(userID int64) *expense.Payload {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last[userID]
}
