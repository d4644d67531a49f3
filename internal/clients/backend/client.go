package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
)

const (
	chatPath          = "/chat"
	downloadExcelPath = "/download-excel"
	healthPath        = "/health"
	dailyTipPath      = "/daily-tip"

	maxErrorBody = 4096
)

// APIError is a non-success answer of the backend.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend responded with status %d", e.Status)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Detail)
}

// ErrorDetail is the message the backend put into its error body.
func (e *APIError) ErrorDetail() string {
	return e.Detail
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Chat(ctx context.Context, req chat.Request) (chat.Response, error) {
	var resp chat.Response
	body, err := c.do(ctx, http.MethodPost, chatPath, req)
	if err != nil {
		return chat.Response{}, errors.Wrap(err, "chat")
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		return chat.Response{}, errors.Wrap(err, "decode chat response")
	}
	return resp, nil
}

type downloadRequest struct {
	ExcelData expense.Payload `json:"excel_data"`
}

// DownloadExcel asks the backend to render the payload as a workbook.
func (c *Client) DownloadExcel(ctx context.Context, payload expense.Payload) ([]byte, error) {
	body, err := c.do(ctx, http.MethodPost, downloadExcelPath, downloadRequest{ExcelData: payload})
	if err != nil {
		return nil, errors.Wrap(err, "download excel")
	}
	return body, nil
}

func (c *Client) Health(ctx context.Context) (chat.Health, error) {
	var health chat.Health
	body, err := c.do(ctx, http.MethodGet, healthPath, nil)
	if err != nil {
		return chat.Health{}, errors.Wrap(err, "health")
	}
	if err = json.Unmarshal(body, &health); err != nil {
		return chat.Health{}, errors.Wrap(err, "decode health")
	}
	return health, nil
}

// DailyTip fetches the cached general tip, or a fresh one for any other category.
func (c *Client) DailyTip(ctx context.Context, category string) (chat.TipResponse, error) {
	var (
		body []byte
		err  error
	)
	if category == "" || category == "general" {
		body, err = c.do(ctx, http.MethodGet, dailyTipPath, nil)
	} else {
		body, err = c.do(ctx, http.MethodPost, dailyTipPath, chat.TipRequest{Category: category, NotificationType: "standard"})
	}
	if err != nil {
		return chat.TipResponse{}, errors.Wrap(err, "daily tip")
	}

	var tip chat.TipResponse
	if err = json.Unmarshal(body, &tip); err != nil {
		return chat.TipResponse{}, errors.Wrap(err, "decode daily tip")
	}
	return tip, nil
}

func (c *Client) do(ctx context.Context, method, path string, in interface{}) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: res.StatusCode}
		var errBody chat.ErrorBody
		if json.Unmarshal(body, &errBody) == nil {
			apiErr.Detail = errBody.Detail
		}
		logger.Warn("backend error",
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
			zap.ByteString("body", truncate(body)),
		)
		return nil, apiErr
	}
	return body, nil
}

func truncate(body []byte) []byte {
	if len(body) > maxErrorBody {
		return body[:maxErrorBody]
	}
	return body
}
