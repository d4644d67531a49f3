package turn

import (
	"github.com/pkg/errors"

	"max.ks1230/finance-assistant/internal/entity/chat"
)

type Status string

const (
	StatusConnected    Status = "connected"
	StatusNoAPIKey     Status = "no-api-key"
	StatusDisconnected Status = "disconnected"
)

var labels = map[Status]string{
	StatusConnected:    "✓ Connected",
	StatusNoAPIKey:     "⚠ API Key Required",
	StatusDisconnected: "✗ Disconnected",
}

// ConnectionStatus maps a health probe outcome to a connectivity label.
func ConnectionStatus(health chat.Health, err error) Status {
	switch {
	case err != nil:
		return StatusDisconnected
	case health.GeminiConfigured:
		return StatusConnected
	default:
		return StatusNoAPIKey
	}
}

func (s Status) Label() string {
	return labels[s]
}

const fallbackDetail = "Failed to connect to server"

type detailer interface {
	ErrorDetail() string
}

// ErrorText renders a failed chat turn for the user, preferring the detail
// reported by the backend.
func ErrorText(err error) string {
	var d detailer
	if errors.As(err, &d) && d.ErrorDetail() != "" {
		return "Error: " + d.ErrorDetail()
	}
	return "Error: " + fallbackDetail
}
