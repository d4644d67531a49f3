package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/currency"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/parser"
)

var (
	ErrNotConfigured = errors.New("gemini api key not configured")
	ErrEmptyMessage  = errors.New("message must not be empty")
	ErrNoExpenses    = errors.New("no expenses found in message")
)

type generator interface {
	Generate(ctx context.Context, prompt string, cfg chat.GenerationConfig) (string, error)
}

type recorder interface {
	SaveTurn(ctx context.Context, turn expense.Turn) error
}

type config interface {
	BaseCurrency() string
}

type clock interface {
	Now() time.Time
}

type Service struct {
	generator generator
	recorder  recorder
	parser    *parser.Parser
	clock     clock
	currency  string
}

// NewService builds the chat service. A nil generator means no API key is
// configured; a nil recorder disables journaling.
func NewService(config config, generator generator, recorder recorder, clock clock) *Service {
	return &Service{
		generator: generator,
		recorder:  recorder,
		parser:    parser.New(clock),
		clock:     clock,
		currency:  config.BaseCurrency(),
	}
}

func (s *Service) Configured() bool {
	return s.generator != nil
}

// Reply answers one chat message and attaches the expenses mentioned in it.
func (s *Service) Reply(ctx context.Context, req chat.Request) (resp chat.Response, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "chatReply")
	defer span.Finish()

	start := time.Now()
	defer func() {
		observeResponse(time.Since(start), err != nil)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	if strings.TrimSpace(req.Message) == "" {
		return chat.Response{}, ErrEmptyMessage
	}
	if s.generator == nil {
		return chat.Response{}, ErrNotConfigured
	}

	text, err := s.generator.Generate(ctx, req.Message, req.Generation())
	if err != nil {
		return chat.Response{}, errors.Wrap(err, "generate response")
	}

	hasExpenses := false
	resp = chat.Response{Response: text, Status: chat.StatusSuccess, HasExpenses: &hasExpenses}

	if !parser.HasExpenseKeywords(req.Message) {
		return resp, nil
	}
	payload, ok := s.extract(req.Message)
	if !ok {
		return resp, nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return chat.Response{}, errors.Wrap(err, "encode expenses")
	}
	*resp.HasExpenses = true
	resp.ExcelData = raw
	resp.Response += summary(payload)

	s.record(ctx, req.Message, payload)
	return resp, nil
}

// GenerateExpenses extracts expenses from text without calling the model.
func (s *Service) GenerateExpenses(text string) (expense.Payload, error) {
	payload, ok := s.extract(text)
	if !ok {
		return expense.Payload{}, ErrNoExpenses
	}
	return payload, nil
}

func (s *Service) extract(text string) (expense.Payload, bool) {
	records := s.parser.Parse(text)
	if len(records) == 0 {
		return expense.Payload{}, false
	}
	payload := expense.Payload{Expenses: records, Currency: s.currency}
	total := payload.Sum()
	payload.Total = &total
	return payload, true
}

func (s *Service) record(ctx context.Context, message string, payload expense.Payload) {
	if s.recorder == nil {
		return
	}
	turn := expense.Turn{
		ID:        uuid.NewString(),
		Message:   message,
		Currency:  payload.Currency,
		Records:   payload.Expenses,
		CreatedAt: s.clock.Now().UTC(),
	}
	if err := s.recorder.SaveTurn(ctx, turn); err != nil {
		logger.Error("failed to record turn", zap.String("turn", turn.ID), zap.Error(err))
	}
}

func summary(payload expense.Payload) string {
	var b strings.Builder
	b.WriteString("\n\n📊 **Expense Summary:**\n")
	fmt.Fprintf(&b, "• Total Amount: %s%.2f\n", currency.Symbol(payload.Currency), payload.GrandTotal())
	fmt.Fprintf(&b, "• Number of Items: %d\n", len(payload.Expenses))
	b.WriteString("• Expenses extracted and Excel file generated!\n")
	b.WriteString("Use the download buttons to get your expense report.")
	return b.String()
}
