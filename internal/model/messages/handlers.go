package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/turn"
)

const (
	helloMessage = "Hello! I am your finance assistant 🤖\n" +
		"Tell me what you spent, e.g. \"I bought a headset for 1500 rs\".\n\n" +
		"/csv - download the last expenses as CSV\n" +
		"/xlsx - download the last expenses as Excel\n" +
		"/summary - summarize the last expenses\n" +
		"/tip [category] - daily finance tip\n" +
		"/status - backend connection status"
	dontUnderstandMessage  = "I don't understand you :("
	somethingWrongMessage  = "Sorry, something wrong happened..."
	excelFailedMessage     = "Failed to download Excel file. Please try again."
	csvFailedMessage       = "Failed to download CSV file. Please try again."
	noExpensesMessage      = "No expenses in the last message yet. Tell me what you spent first."
	tipFailedMessage       = "Can't get a tip atm. Try later"
	expensesDetectedSuffix = "\n\nUse /csv or /xlsx to download these expenses."
)

const (
	startCommand   = "/start"
	csvCommand     = "/csv"
	xlsxCommand    = "/xlsx"
	summaryCommand = "/summary"
	tipCommand     = "/tip"
	statusCommand  = "/status"
)

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	sender      messageSender
	backend     backendClient
	exporter    exporter
	config      config
	clock       clock
	payloads    *payloads
}

func newHandler(sender messageSender, backend backendClient, exporter exporter, config config, clock clock) *HandlerService {
	res := &HandlerService{
		sender:   sender,
		backend:  backend,
		exporter: exporter,
		config:   config,
		clock:    clock,
		payloads: newPayloads(),
	}
	res.handlersMap = newMap(res)
	return res
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[csvCommand] = s.handleCSV
	m[xlsxCommand] = s.handleSpreadsheet
	m[summaryCommand] = s.handleSummary
	m[tipCommand] = s.handleTip
	m[statusCommand] = s.handleStatus

	m[""] = s.handleChat

	return m
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleChat(ctx context.Context, text string, userID int64) (string, error) {
	maxTokens, temperature := s.config.MaxTokens(), s.config.Temperature()
	resp, err := s.backend.Chat(ctx, chat.Request{
		Message:     text,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return turn.ErrorText(err), errors.Wrap(err, "handle chat")
	}

	hasExpenses, payload := turn.Interpret(resp, s.today())
	s.payloads.replace(userID, payload)

	reply := resp.Response
	if hasExpenses {
		reply += expensesDetectedSuffix
	}
	return reply, nil
}

func (s *HandlerService) handleCSV(ctx context.Context, _ string, userID int64) (string, error) {
	sink := documentSink{sender: s.sender, userID: userID}
	if err := s.exporter.ExportCSV(ctx, s.payloads.get(userID), sink); err != nil {
		return csvFailedMessage, errors.Wrap(err, "handle csv")
	}
	return "", nil
}

func (s *HandlerService) handleSpreadsheet(ctx context.Context, _ string, userID int64) (string, error) {
	sink := documentSink{sender: s.sender, userID: userID}
	if err := s.exporter.ExportSpreadsheet(ctx, s.payloads.get(userID), sink); err != nil {
		return excelFailedMessage, errors.Wrap(err, "handle xlsx")
	}
	return "", nil
}

func (s *HandlerService) handleSummary(_ context.Context, _ string, userID int64) (string, error) {
	payload := s.payloads.get(userID)
	if payload == nil || len(payload.Expenses) == 0 {
		return noExpensesMessage, nil
	}
	return formatSummary(*payload, s.today(), s.config.BaseCurrency()), nil
}

func (s *HandlerService) handleTip(ctx context.Context, arg string, _ int64) (string, error) {
	resp, err := s.backend.DailyTip(ctx, strings.ToLower(strings.TrimSpace(arg)))
	if err != nil {
		return tipFailedMessage, errors.Wrap(err, "handle tip")
	}
	return fmt.Sprintf("💡 %s", resp.Tip.Tip), nil
}

func (s *HandlerService) handleStatus(ctx context.Context, _ string, _ int64) (string, error) {
	health, err := s.backend.Health(ctx)
	return turn.ConnectionStatus(health, err).Label(), nil
}

func (s *HandlerService) today() string {
	return expense.Today(s.clock.Now())
}
