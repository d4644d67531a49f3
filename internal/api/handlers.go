package api

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
	"max.ks1230/finance-assistant/internal/model/assistant"
	"max.ks1230/finance-assistant/internal/model/export"
	"max.ks1230/finance-assistant/internal/model/reports"
)

const (
	rootMessage         = "Finance assistant backend is running!"
	healthyStatus       = "healthy"
	sampleExcelName     = "expenses.xlsx"
	sampleCSVName       = "expenses.csv"
	detailBadBody       = "Invalid request body"
	detailNoExcelData   = "No excel data provided"
	detailNotConfigured = "Gemini API key not configured"
)

var samplePayload = expense.Payload{Expenses: []expense.Record{
	{Date: "2025-08-20", Category: "Entertainment", Amount: 1500, Description: "Gaming Purchase"},
	{Date: "2025-08-20", Category: "Food & Dining", Amount: 850, Description: "Restaurant Bill"},
	{Date: "2025-08-20", Category: "Entertainment", Amount: 299, Description: "Subscription"},
}}

type excelDataRequest struct {
	ExcelData json.RawMessage `json:"excel_data"`
}

type generateRequest struct {
	Message string `json:"message"`
}

type generateResponse struct {
	Success       bool    `json:"success"`
	ExcelData     string  `json:"excel_data"`
	ExpensesCount int     `json:"expenses_count"`
	TotalAmount   float64 `json:"total_amount"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": rootMessage})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, chat.Health{Status: healthyStatus, GeminiConfigured: s.chat.Configured()})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chat.Request
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, detailBadBody)
		return
	}

	resp, err := s.chat.Reply(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, assistant.ErrEmptyMessage):
		writeError(w, http.StatusBadRequest, "Message must not be empty")
	case errors.Is(err, assistant.ErrNotConfigured):
		writeError(w, http.StatusInternalServerError, detailNotConfigured)
	default:
		logger.Error("chat reply", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error generating response: "+err.Error())
	}
}

// excelData reads the payload of a download request. A missing or null
// excel_data is reported as false; anything else is decoded leniently.
func (s *Server) excelData(r *http.Request) (expense.Payload, bool, error) {
	var req excelDataRequest
	if err := decodeBody(r, &req); err != nil {
		return expense.Payload{}, false, err
	}
	raw := bytes.TrimSpace(req.ExcelData)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return expense.Payload{}, false, nil
	}
	return expense.Decode(raw, s.today()), true, nil
}

func (s *Server) handleDownloadExcel(w http.ResponseWriter, r *http.Request) {
	payload, ok, err := s.excelData(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, detailBadBody)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, detailNoExcelData)
		return
	}

	workbook, err := s.renderer.Render(payload, s.today())
	if err != nil {
		logger.Error("render workbook", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error downloading file: "+err.Error())
		return
	}
	writeFile(w, export.SpreadsheetFileName("", s.clock.Now()), export.ContentTypeSpreadsheet, workbook)
}

func (s *Server) handleDownloadCSV(w http.ResponseWriter, r *http.Request) {
	payload, ok, err := s.excelData(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, detailBadBody)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, detailNoExcelData)
		return
	}
	writeFile(w, export.CSVFileName(s.clock.Now()), export.ContentTypeCSV, export.CSV(&payload, s.today()))
}

func (s *Server) handleSampleExcel(w http.ResponseWriter, _ *http.Request) {
	workbook, err := s.renderer.Render(samplePayload, s.today())
	if err != nil {
		logger.Error("render sample workbook", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}
	writeFile(w, sampleExcelName, export.ContentTypeSpreadsheet, workbook)
}

func (s *Server) handleSampleCSV(w http.ResponseWriter, _ *http.Request) {
	writeFile(w, sampleCSVName, export.ContentTypeCSV, export.CSV(&samplePayload, s.today()))
}

func (s *Server) handleGenerateExcel(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, detailBadBody)
		return
	}

	payload, err := s.chat.GenerateExpenses(req.Message)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No expenses found in message")
		return
	}

	workbook, err := s.renderer.Render(payload, s.today())
	if err != nil {
		logger.Error("render workbook", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate Excel")
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{
		Success:       true,
		ExcelData:     base64.StdEncoding.EncodeToString(workbook),
		ExpensesCount: len(payload.Expenses),
		TotalAmount:   payload.GrandTotal(),
	})
}

func (s *Server) handleViewSummary(w http.ResponseWriter, r *http.Request) {
	payload, ok, err := s.excelData(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, detailBadBody)
		return
	}
	if !ok {
		writeError(w, http.StatusBadRequest, detailNoExcelData)
		return
	}
	writeJSON(w, http.StatusOK, reports.Summarize(payload, s.today(), s.currency))
}

func (s *Server) handleDailyTip(w http.ResponseWriter, r *http.Request) {
	tip, cached := s.tips.Daily(r.Context(), "")
	writeJSON(w, http.StatusOK, chat.TipResponse{
		Status:    chat.StatusSuccess,
		Tip:       tip,
		Timestamp: s.clock.Now().Format(time.RFC3339),
		Cached:    cached,
	})
}

func (s *Server) handleCategoryTip(w http.ResponseWriter, r *http.Request) {
	var req chat.TipRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, detailBadBody)
		return
	}

	tip, cached := s.tips.Daily(r.Context(), req.Category)
	writeJSON(w, http.StatusOK, chat.TipResponse{
		Status:    chat.StatusSuccess,
		Tip:       tip,
		Category:  req.Category,
		Timestamp: s.clock.Now().Format(time.RFC3339),
		Cached:    cached,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")

	report, err := s.reports.GenerateReport(r.Context(), period)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, report)
	case errors.Is(err, reports.ErrUnsupportedPeriod):
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported period %q", period))
	default:
		logger.Error("generate report", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error generating report")
	}
}

func (s *Server) today() string {
	return expense.Today(s.clock.Now())
}
