package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/clients/backend"
	appconfig "max.ks1230/finance-assistant/internal/config"
	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/export"
	"max.ks1230/finance-assistant/internal/model/messages/mock"
	"max.ks1230/finance-assistant/internal/utils"
)

var now = time.Date(2024, 1, 5, 8, 33, 9, 0, time.UTC)

const userID = int64(123)

func newTestService(t *testing.T, sender messageSender, backendClient backendClient, exp exporter) *Service {
	cfg, err := appconfig.Parse(nil)
	require.NoError(t, err)
	clock := utils.FixedClock{T: now}
	if exp == nil {
		exp = export.NewExporter(cfg.App(), clock, nil)
	}
	return NewService(sender, backendClient, exp, cfg.App(), clock)
}

func expenseResponse(t *testing.T) chat.Response {
	has := true
	data, err := json.Marshal(expense.Payload{Expenses: []expense.Record{
		{Date: "2024-01-05", Category: "Food & Dining", Amount: 349, Description: "Swiggy pizza order"},
	}})
	require.NoError(t, err)
	return chat.Response{Response: "Enjoy your pizza!", Status: chat.StatusSuccess, HasExpenses: &has, ExcelData: data}
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	sender.SendMessageMock.Expect(helloMessage, userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/start", UserID: userID})

	assert.NoError(t, err)
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	sender.SendMessageMock.Expect("I don't understand you :(", userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/none", UserID: userID})

	assert.NoError(t, err)
}

func Test_OnExpenseMessage_ShouldReplyAndExportCSV(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	client.ChatMock.
		Inspect(func(_ context.Context, req chat.Request) {
			assert.Equal(m, "pizza for 349", req.Message)
			assert.Equal(m, chat.GenerationConfig{MaxTokens: 1000, Temperature: 0.7}, req.Generation())
		}).
		Return(expenseResponse(t), nil)
	sender.SendMessageMock.
		Expect("Enjoy your pizza!"+expensesDetectedSuffix, userID).
		Return(nil)
	sender.SendDocumentMock.
		Inspect(func(_ context.Context, id int64, d export.Download) {
			assert.Equal(m, userID, id)
			assert.Equal(m, "expenses_2024-01-05T08-33-09.csv", d.Name)
			assert.Equal(m, "Date,Category,Amount,Description\n"+
				"\"2024-01-05\",\"Food & Dining\",349,\"Swiggy pizza order\"\n", string(d.Body))
		}).
		Return(nil)

	model := newTestService(t, sender, client, nil)
	require.NoError(t, model.HandleIncomingMessage(context.Background(), Message{Text: "pizza for 349", UserID: userID}))
	require.NoError(t, model.HandleIncomingMessage(context.Background(), Message{Text: "/csv", UserID: userID}))

	assert.Equal(t, uint64(1), sender.SendDocumentAfterCounter())
}

func Test_OnCSVWithoutExpenses_ShouldSendHeaderOnly(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	sender.SendDocumentMock.
		Inspect(func(_ context.Context, _ int64, d export.Download) {
			assert.Equal(m, "Date,Category,Amount,Description\n", string(d.Body))
		}).
		Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/csv@finance_bot", UserID: userID})

	assert.NoError(t, err)
}

func Test_OnSpreadsheetFailure_ShouldReportFailure(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)
	exp := mock.NewExporterMock(m)

	exp.ExportSpreadsheetMock.Return(errors.New("connection refused"))
	sender.SendMessageMock.Expect(excelFailedMessage, userID).Return(nil)

	model := newTestService(t, sender, client, exp)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/xlsx", UserID: userID})

	assert.Error(t, err)
	assert.Equal(t, uint64(0), sender.SendDocumentAfterCounter())
}

func Test_OnChatFailure_ShouldAnswerWithBackendDetail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	client.ChatMock.Return(chat.Response{}, &backend.APIError{
		Status: http.StatusInternalServerError,
		Detail: "Gemini API key not configured",
	})
	sender.SendMessageMock.Expect("Error: Gemini API key not configured", userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "hello", UserID: userID})

	assert.Error(t, err)
}

func Test_OnChatNetworkFailure_ShouldAnswerWithFallback(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	client.ChatMock.Return(chat.Response{}, errors.New("dial tcp: connection refused"))
	sender.SendMessageMock.Expect("Error: Failed to connect to server", userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "hello", UserID: userID})

	assert.Error(t, err)
}

func Test_OnSummaryCommand_ShouldDescribeLastTurn(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	client.ChatMock.Return(expenseResponse(t), nil)
	sender.SendMessageMock.
		When("Enjoy your pizza!"+expensesDetectedSuffix, userID).Then(nil)
	sender.SendMessageMock.
		When("Food & Dining: ₹349.00\n\nTotal: ₹349.00 (1 items)\nLargest: Swiggy pizza order ₹349.00", userID).Then(nil)

	model := newTestService(t, sender, client, nil)
	require.NoError(t, model.HandleIncomingMessage(context.Background(), Message{Text: "pizza for 349", UserID: userID}))
	require.NoError(t, model.HandleIncomingMessage(context.Background(), Message{Text: "/summary", UserID: userID}))
}

func Test_OnSummaryWithoutExpenses_ShouldAskForExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	sender.SendMessageMock.Expect(noExpensesMessage, userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/summary", UserID: userID})

	assert.NoError(t, err)
}

func Test_OnTipCommand_ShouldPassCategory(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	client.DailyTipMock.
		Inspect(func(_ context.Context, category string) {
			assert.Equal(m, "food", category)
		}).
		Return(chat.TipResponse{Tip: chat.Tip{Tip: "Cook at home twice a week."}}, nil)
	sender.SendMessageMock.Expect("💡 Cook at home twice a week.", userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/tip Food", UserID: userID})

	assert.NoError(t, err)
}

func Test_OnStatusCommand_ShouldShowConnectivity(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sender := mock.NewMessageSenderMock(m)
	client := mock.NewBackendClientMock(m)

	client.HealthMock.Return(chat.Health{Status: "healthy"}, nil)
	sender.SendMessageMock.Expect("⚠ API Key Required", userID).Return(nil)

	model := newTestService(t, sender, client, nil)
	err := model.HandleIncomingMessage(context.Background(), Message{Text: "/status", UserID: userID})

	assert.NoError(t, err)
}

func Test_ParseCommand(t *testing.T) {
	cmd, arg := parseCommand("  /tip  shopping ")
	assert.Equal(t, "/tip", cmd)
	assert.Equal(t, " shopping", arg)

	cmd, arg = parseCommand("spent 50 on tea")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "spent 50 on tea", arg)
}
