package chat

import "encoding/json"

const (
	DefaultMaxTokens   = 1000
	DefaultTemperature = 0.7

	StatusSuccess = "success"
	StatusError   = "error"
)

type Request struct {
	Message     string   `json:"message"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// Generation resolves the request's optional generation settings.
func (r Request) Generation() GenerationConfig {
	cfg := GenerationConfig{MaxTokens: DefaultMaxTokens, Temperature: DefaultTemperature}
	if r.MaxTokens != nil && *r.MaxTokens > 0 {
		cfg.MaxTokens = *r.MaxTokens
	}
	if r.Temperature != nil && *r.Temperature >= 0 {
		cfg.Temperature = *r.Temperature
	}
	return cfg
}

type GenerationConfig struct {
	MaxTokens   int
	Temperature float64
}

// Response is one chat turn as returned by POST /chat. ExcelData is kept raw
// so that consumers decide how much of its shape to trust.
type Response struct {
	Response    string          `json:"response"`
	Status      string          `json:"status,omitempty"`
	HasExpenses *bool           `json:"has_expenses,omitempty"`
	ExcelData   json.RawMessage `json:"excel_data,omitempty"`
}

type Health struct {
	Status           string `json:"status"`
	GeminiConfigured bool   `json:"gemini_configured"`
}

type ErrorBody struct {
	Detail string `json:"detail"`
}

type Tip struct {
	Date        string `json:"date"`
	Tip         string `json:"tip"`
	Category    string `json:"category,omitempty"`
	GeneratedAt string `json:"generated_at,omitempty"`
}

type TipResponse struct {
	Status    string `json:"status"`
	Tip       Tip    `json:"tip"`
	Category  string `json:"category,omitempty"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp"`
	Cached    bool   `json:"cached"`
}

type TipRequest struct {
	Category         string `json:"category"`
	NotificationType string `json:"notification_type"`
}
