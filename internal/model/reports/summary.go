package reports

import (
	"max.ks1230/finance-assistant/internal/entity/expense"
)

// Summary describes one payload for display.
type Summary struct {
	Expenses   []expense.Record `json:"expenses"`
	Total      float64          `json:"total"`
	Count      int              `json:"count"`
	Currency   string           `json:"currency"`
	Largest    *expense.Record  `json:"largest,omitempty"`
	Categories []CategoryTotal  `json:"categories"`
}

// Summarize normalizes the payload and aggregates it per category. The
// payload's own total wins over the computed one.
func Summarize(payload expense.Payload, today, defaultCurrency string) Summary {
	payload = payload.Normalized(today)
	records := payload.Expenses
	if records == nil {
		records = []expense.Record{}
	}

	categories, _ := groupByCategory(records)
	s := Summary{
		Expenses:   records,
		Total:      payload.GrandTotal(),
		Count:      len(records),
		Currency:   payload.Currency,
		Categories: categories,
	}
	if s.Currency == "" {
		s.Currency = defaultCurrency
	}
	for i := range records {
		if s.Largest == nil || records[i].Amount > s.Largest.Amount {
			s.Largest = &records[i]
		}
	}
	return s
}
