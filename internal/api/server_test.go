package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"max.ks1230/finance-assistant/internal/clients/cache"
	appconfig "max.ks1230/finance-assistant/internal/config"
	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/assistant"
	"max.ks1230/finance-assistant/internal/model/reports"
	"max.ks1230/finance-assistant/internal/model/spreadsheet"
	"max.ks1230/finance-assistant/internal/model/storage"
	"max.ks1230/finance-assistant/internal/model/tips"
	"max.ks1230/finance-assistant/internal/model/turn"
	"max.ks1230/finance-assistant/internal/utils"
)

var now = time.Date(2024, 1, 5, 8, 33, 9, 0, time.UTC)

type stubGenerator struct {
	text string
	err  error
}

func (g stubGenerator) Generate(_ context.Context, _ string, _ chat.GenerationConfig) (string, error) {
	return g.text, g.err
}

type fixture struct {
	server  *httptest.Server
	journal *storage.InMemStorage
}

func newFixture(t *testing.T, gen *stubGenerator) fixture {
	cfg, err := appconfig.Parse(nil)
	require.NoError(t, err)
	clock := utils.FixedClock{T: now}
	journal := storage.NewInMemStorage()

	var chatService *assistant.Service
	if gen != nil {
		chatService = assistant.NewService(cfg.App(), gen, journal, clock)
	} else {
		chatService = assistant.NewService(cfg.App(), nil, journal, clock)
	}

	srv := NewServer(
		cfg.App(),
		chatService,
		spreadsheet.NewRenderer(cfg.App()),
		tips.NewService(nil, cache.NewMemory(clock), clock),
		reports.NewGenerator(cfg.App(), journal, clock),
		clock,
	)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return fixture{server: ts, journal: journal}
}

func (f fixture) post(t *testing.T, path, body string) *http.Response {
	resp, err := http.Post(f.server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (f fixture) get(t *testing.T, path string) *http.Response {
	resp, err := http.Get(f.server.URL + path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.Bytes()
}

func detailOf(t *testing.T, resp *http.Response) string {
	var body chat.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Detail
}

func Test_OnHealth_ShouldReportGeminiConfiguration(t *testing.T) {
	f := newFixture(t, &stubGenerator{text: "hi"})

	resp := f.get(t, "/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health chat.Health
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, chat.Health{Status: "healthy", GeminiConfigured: true}, health)
	assert.Equal(t, turn.StatusConnected, turn.ConnectionStatus(health, nil))
}

func Test_OnChatWithExpenses_ShouldAttachPayloadAndJournalTurn(t *testing.T) {
	f := newFixture(t, &stubGenerator{text: "Enjoy the movie!"})

	resp := f.post(t, "/chat", `{"message":"I spent 450 rs on movie tickets yesterday"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body chat.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	has, payload := turn.Interpret(body, "2024-01-05")
	require.True(t, has)
	require.Len(t, payload.Expenses, 1)
	assert.Equal(t, 450.0, payload.Expenses[0].Amount)
	assert.Equal(t, "2024-01-04", payload.Expenses[0].Date)
	assert.Contains(t, body.Response, "Enjoy the movie!")

	entries, err := f.journal.GetExpenses(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func Test_OnChatWithoutKey_ShouldAnswer500WithDetail(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/chat", `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Gemini API key not configured", detailOf(t, resp))
}

func Test_OnGenerationFailure_ShouldAnswer500WithDetail(t *testing.T) {
	f := newFixture(t, &stubGenerator{err: errors.New("quota exceeded")})

	resp := f.post(t, "/chat", `{"message":"hello"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, detailOf(t, resp), "Error generating response:")
}

func Test_OnBrokenChatBody_ShouldAnswer400(t *testing.T) {
	f := newFixture(t, &stubGenerator{text: "hi"})

	resp := f.post(t, "/chat", `{"message":`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_OnDownloadExcel_ShouldReturnWorkbook(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/download-excel",
		`{"excel_data":{"expenses":[{"date":"2024-01-05","category":"Food & Dining","amount":349,"description":"Swiggy pizza order"}]}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "attachment; filename=expenses_2024-01-05T08-33-09.xlsx", resp.Header.Get("Content-Disposition"))
	body := readBody(t, resp)
	assert.Equal(t, resp.Header.Get("Content-Length"), strconv.Itoa(len(body)))

	wb, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer wb.Close()
	value, err := wb.GetCellValue("Expenses", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Swiggy pizza order", value)
}

func Test_OnDownloadWithoutData_ShouldAnswer400(t *testing.T) {
	f := newFixture(t, nil)

	for _, path := range []string{"/download-excel", "/download-csv", "/view-summary"} {
		resp := f.post(t, path, `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "No excel data provided", detailOf(t, resp), path)
	}
}

func Test_OnDownloadCSV_ShouldApplyDefaults(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/download-csv", `{"excel_data":{"expenses":[{"description":"tea"}]}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/csv;charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=expenses_2024-01-05T08-33-09.csv", resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "Date,Category,Amount,Description\n\"2024-01-05\",\"Uncategorized\",0,\"tea\"\n", string(readBody(t, resp)))
}

func Test_OnSampleCSV_ShouldServeThreeRecords(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/download/csv")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "attachment; filename=expenses.csv", resp.Header.Get("Content-Disposition"))
	lines := strings.Split(strings.TrimSpace(string(readBody(t, resp))), "\n")
	assert.Len(t, lines, 4)
}

func Test_OnSampleExcel_ShouldServeWorkbook(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/download/excel")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", resp.Header.Get("Content-Type"))
}

func Test_OnGenerateExcel_ShouldReturnEncodedWorkbook(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/generate-excel", `{"message":"pizza for 300 and coffee for 120"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body generateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.ExpensesCount)
	assert.Equal(t, 420.0, body.TotalAmount)

	raw, err := base64.StdEncoding.DecodeString(body.ExcelData)
	require.NoError(t, err)
	_, err = excelize.OpenReader(bytes.NewReader(raw))
	assert.NoError(t, err)
}

func Test_OnGenerateExcelWithoutExpenses_ShouldAnswer400(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/generate-excel", `{"message":"hello there"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No expenses found in message", detailOf(t, resp))
}

func Test_OnViewSummary_ShouldAggregatePayload(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/view-summary",
		`{"excel_data":{"expenses":[{"category":"Food","amount":80},{"category":"Books","amount":150},{"category":"Food","amount":120}]}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary reports.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 350.0, summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, "INR", summary.Currency)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Food", summary.Categories[0].Category)
	require.NotNil(t, summary.Largest)
	assert.Equal(t, 150.0, summary.Largest.Amount)
}

func Test_OnDailyTip_ShouldCacheGeneralTip(t *testing.T) {
	f := newFixture(t, nil)

	var first, second chat.TipResponse
	require.NoError(t, json.NewDecoder(f.get(t, "/daily-tip").Body).Decode(&first))
	require.NoError(t, json.NewDecoder(f.get(t, "/daily-tip").Body).Decode(&second))

	assert.False(t, first.Cached)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Tip.Tip, second.Tip.Tip)
	assert.Equal(t, "2024-01-05", second.Tip.Date)
}

func Test_OnCategoryTip_ShouldEchoCategory(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.post(t, "/daily-tip", `{"category":"budgeting","notification_type":"daily"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body chat.TipResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "budgeting", body.Category)
	assert.False(t, body.Cached)
	assert.Contains(t, tips.FallbackTips, body.Tip.Tip)
}

func Test_OnReport_ShouldGroupJournal(t *testing.T) {
	f := newFixture(t, nil)
	require.NoError(t, f.journal.SaveTurn(context.Background(), expense.Turn{
		ID:        "turn-1",
		Currency:  "INR",
		CreatedAt: now,
		Records: []expense.Record{
			{Date: "2024-01-05", Category: "Food & Dining", Amount: 200},
			{Date: "2024-01-05", Category: "Transportation", Amount: 50},
		},
	}))

	resp := f.get(t, "/expenses/report?period=month")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report reports.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 250.0, report.Total)
	assert.Equal(t, 2, report.Count)
}

func Test_OnUnknownReportPeriod_ShouldAnswer400(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.get(t, "/expenses/report?period=decade")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_OnPreflight_ShouldAllowAnyOrigin(t *testing.T) {
	f := newFixture(t, nil)

	req, err := http.NewRequest(http.MethodOptions, f.server.URL+"/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
