package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/turn"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 5*time.Second)
}

func Test_OnChat_ShouldPostMessageAndDecodeTurn(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)

		var req chat.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "spent 200 on lunch", req.Message)

		_, _ = w.Write([]byte(`{"response":"ok","status":"success","has_expenses":true,
			"excel_data":{"expenses":[{"date":"2024-01-05","category":"Food & Dining","amount":200,"description":"Lunch"}]}}`))
	})

	resp, err := client.Chat(context.Background(), chat.Request{Message: "spent 200 on lunch"})
	require.NoError(t, err)

	has, payload := turn.Interpret(resp, "2024-01-05")
	assert.True(t, has)
	require.Len(t, payload.Expenses, 1)
	assert.Equal(t, 200.0, payload.Expenses[0].Amount)
}

func Test_OnChatError_ShouldExposeDetail(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Gemini API key not configured"}`))
	})

	_, err := client.Chat(context.Background(), chat.Request{Message: "hi"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Error: Gemini API key not configured", turn.ErrorText(err))
}

func Test_OnUnreachableBackend_ShouldUseGenericErrorText(t *testing.T) {
	client := New("http://127.0.0.1:1", time.Second)

	_, err := client.Chat(context.Background(), chat.Request{Message: "hi"})

	require.Error(t, err)
	assert.Equal(t, "Error: Failed to connect to server", turn.ErrorText(err))
}

func Test_OnDownloadExcel_ShouldWrapPayloadAndReturnBytes(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/download-excel", r.URL.Path)

		var body struct {
			ExcelData expense.Payload `json:"excel_data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.ExcelData.Expenses, 1)

		_, _ = w.Write([]byte("PK\x03\x04"))
	})

	out, err := client.DownloadExcel(context.Background(), expense.Payload{
		Expenses: []expense.Record{{Amount: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("PK\x03\x04"), out)
}

func Test_OnDownloadExcelFailure_ShouldReturnAPIError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	out, err := client.DownloadExcel(context.Background(), expense.Payload{})

	assert.Nil(t, out)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Empty(t, apiErr.ErrorDetail())
}

func Test_OnHealth_ShouldReportConfiguration(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"status":"healthy","gemini_configured":false}`))
	})

	health, err := client.Health(context.Background())
	require.NoError(t, err)

	assert.Equal(t, turn.StatusNoAPIKey, turn.ConnectionStatus(health, nil))
}

func Test_OnCategoryTip_ShouldPostCategory(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var req chat.TipRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "banking", req.Category)
		_, _ = w.Write([]byte(`{"status":"success","tip":{"date":"2024-01-05","tip":"Use UPI alerts."},"cached":false}`))
	})

	tip, err := client.DailyTip(context.Background(), "banking")
	require.NoError(t, err)
	assert.Equal(t, "Use UPI alerts.", tip.Tip.Tip)
}
