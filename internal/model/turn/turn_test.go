package turn

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
)

const today = "2024-01-05"

func flag(v bool) *bool {
	return &v
}

func Test_OnFlagFalse_ShouldIgnorePayload(t *testing.T) {
	payloads := []string{
		`{"expenses":[{"date":"2024-01-05","category":"Food","amount":10,"description":"tea"}]}`,
		`{}`,
		`"garbage"`,
		``,
	}
	for _, raw := range payloads {
		for _, hasExpenses := range []*bool{nil, flag(false)} {
			ok, payload := Interpret(chat.Response{HasExpenses: hasExpenses, ExcelData: json.RawMessage(raw)}, today)
			assert.False(t, ok)
			assert.Nil(t, payload)
		}
	}
}

func Test_OnFlagTrue_ShouldExposePayload(t *testing.T) {
	resp := chat.Response{
		Response:    "noted",
		HasExpenses: flag(true),
		ExcelData:   json.RawMessage(`{"expenses":[{"date":"2024-01-05","category":"Food & Dining","amount":349,"description":"Swiggy pizza order"}]}`),
	}

	ok, payload := Interpret(resp, today)

	assert.True(t, ok)
	require.NotNil(t, payload)
	assert.Equal(t, []expense.Record{{Date: "2024-01-05", Category: "Food & Dining", Amount: 349, Description: "Swiggy pizza order"}}, payload.Expenses)
}

func Test_OnFlagTrueWithMalformedPayload_ShouldNotFail(t *testing.T) {
	ok, payload := Interpret(chat.Response{HasExpenses: flag(true), ExcelData: json.RawMessage(`[1]`)}, today)

	assert.True(t, ok)
	require.NotNil(t, payload)
	assert.Nil(t, payload.Expenses)
}

func Test_OnFlagTrueWithPartialRecords_ShouldDefaultThem(t *testing.T) {
	ok, payload := Interpret(chat.Response{HasExpenses: flag(true), ExcelData: json.RawMessage(`{"expenses":[{"description":"bus"}]}`)}, today)

	assert.True(t, ok)
	require.Len(t, payload.Expenses, 1)
	assert.Equal(t, expense.Record{Date: today, Category: expense.DefaultCategory, Description: "bus"}, payload.Expenses[0])
}

func Test_OnHealth_ShouldPickStatus(t *testing.T) {
	assert.Equal(t, StatusConnected, ConnectionStatus(chat.Health{GeminiConfigured: true}, nil))
	assert.Equal(t, StatusNoAPIKey, ConnectionStatus(chat.Health{}, nil))
	assert.Equal(t, StatusDisconnected, ConnectionStatus(chat.Health{GeminiConfigured: true}, fmt.Errorf("dial tcp")))
	assert.Equal(t, "⚠ API Key Required", StatusNoAPIKey.Label())
}

type detailedErr struct {
	detail string
}

func (e detailedErr) Error() string {
	return "backend: " + e.detail
}

func (e detailedErr) ErrorDetail() string {
	return e.detail
}

func Test_OnErrorText_ShouldPreferBackendDetail(t *testing.T) {
	err := errors.Wrap(detailedErr{detail: "Gemini API key not configured"}, "chat")

	assert.Equal(t, "Error: Gemini API key not configured", ErrorText(err))
	assert.Equal(t, "Error: Failed to connect to server", ErrorText(fmt.Errorf("connection refused")))
	assert.Equal(t, "Error: Failed to connect to server", ErrorText(detailedErr{}))
}
