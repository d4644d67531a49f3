package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/assistant/mock"
	"max.ks1230/finance-assistant/internal/model/turn"
	"max.ks1230/finance-assistant/internal/utils"
)

type currencyConfig string

func (c currencyConfig) BaseCurrency() string {
	return string(c)
}

var now = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func Test_OnExpenseMessage_ShouldAttachPayloadAndRecordTurn(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	gen := mock.NewGeneratorMock(m)
	rec := mock.NewRecorderMock(m)

	gen.GenerateMock.
		Inspect(func(_ context.Context, prompt string, cfg chat.GenerationConfig) {
			assert.Equal(m, "I bought a headset for 1500 rs", prompt)
			assert.Equal(m, chat.GenerationConfig{MaxTokens: 1000, Temperature: 0.7}, cfg)
		}).
		Return("Nice purchase!", nil)
	rec.SaveTurnMock.
		Inspect(func(_ context.Context, tr expense.Turn) {
			assert.NotEmpty(m, tr.ID)
			assert.Equal(m, "INR", tr.Currency)
			assert.Equal(m, now, tr.CreatedAt)
			assert.Len(m, tr.Records, 1)
		}).
		Return(nil)

	service := NewService(currencyConfig("INR"), gen, rec, utils.FixedClock{T: now})
	resp, err := service.Reply(context.Background(), chat.Request{Message: "I bought a headset for 1500 rs"})
	require.NoError(t, err)

	assert.Equal(t, chat.StatusSuccess, resp.Status)
	assert.Contains(t, resp.Response, "Nice purchase!")
	assert.Contains(t, resp.Response, "Total Amount: ₹1500.00")
	assert.Contains(t, resp.Response, "Number of Items: 1")

	has, payload := turn.Interpret(resp, "2024-03-15")
	require.True(t, has)
	require.Len(t, payload.Expenses, 1)
	assert.Equal(t, expense.Record{
		Date:        "2024-03-15",
		Category:    "Personal Items",
		Amount:      1500,
		Description: "Headset",
	}, payload.Expenses[0])
	assert.Equal(t, "INR", payload.Currency)
}

func Test_OnSmallTalk_ShouldNotFlagExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	gen := mock.NewGeneratorMock(m)

	gen.GenerateMock.Return("Hi!", nil)

	maxTokens, temperature := 50, 0.2
	service := NewService(currencyConfig("INR"), gen, nil, utils.FixedClock{T: now})
	resp, err := service.Reply(context.Background(), chat.Request{
		Message:     "hello",
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	require.NoError(t, err)

	assert.Equal(t, "Hi!", resp.Response)
	require.NotNil(t, resp.HasExpenses)
	assert.False(t, *resp.HasExpenses)
	assert.Empty(t, resp.ExcelData)

	params := gen.GenerateMock.Calls()
	require.Len(t, params, 1)
}

func Test_OnRecorderFailure_ShouldStillAnswer(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	gen := mock.NewGeneratorMock(m)
	rec := mock.NewRecorderMock(m)

	gen.GenerateMock.Return("ok", nil)
	rec.SaveTurnMock.Return(errors.New("broker down"))

	service := NewService(currencyConfig("INR"), gen, rec, utils.FixedClock{T: now})
	resp, err := service.Reply(context.Background(), chat.Request{Message: "spent 200 on lunch"})
	require.NoError(t, err)

	require.NotNil(t, resp.HasExpenses)
	assert.True(t, *resp.HasExpenses)

	var payload expense.Payload
	require.NoError(t, json.Unmarshal(resp.ExcelData, &payload))
	require.NotNil(t, payload.Total)
	assert.Equal(t, 200.0, *payload.Total)
}

func Test_OnMissingKey_ShouldReturnNotConfigured(t *testing.T) {
	service := NewService(currencyConfig("INR"), nil, nil, utils.FixedClock{T: now})

	_, err := service.Reply(context.Background(), chat.Request{Message: "hello"})

	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.False(t, service.Configured())
}

func Test_OnEmptyMessage_ShouldReject(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	gen := mock.NewGeneratorMock(m)

	service := NewService(currencyConfig("INR"), gen, nil, utils.FixedClock{T: now})
	_, err := service.Reply(context.Background(), chat.Request{Message: "   "})

	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func Test_OnGeneratorFailure_ShouldWrapError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	gen := mock.NewGeneratorMock(m)

	gen.GenerateMock.Return("", errors.New("quota exceeded"))

	service := NewService(currencyConfig("INR"), gen, nil, utils.FixedClock{T: now})
	_, err := service.Reply(context.Background(), chat.Request{Message: "hello"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func Test_OnGenerateExpenses_ShouldReturnPayloadOrNoExpenses(t *testing.T) {
	service := NewService(currencyConfig("USD"), nil, nil, utils.FixedClock{T: now})

	payload, err := service.GenerateExpenses("coffee for 5 and cake for 7")
	require.NoError(t, err)
	assert.Len(t, payload.Expenses, 2)
	assert.Equal(t, 12.0, payload.GrandTotal())
	assert.Equal(t, "USD", payload.Currency)

	_, err = service.GenerateExpenses("nothing here")
	assert.ErrorIs(t, err, ErrNoExpenses)
}
