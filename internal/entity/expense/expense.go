package expense

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DateLayout      = "2006-01-02"
	DefaultCategory = "Uncategorized"
)

type Record struct {
	Date        string  `json:"date"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// Payload holds the expenses extracted from a single chat turn.
// Expenses is nil when the upstream data carried no expense list at all.
type Payload struct {
	Expenses []Record `json:"expenses"`
	Total    *float64 `json:"total,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// Today formats t as a calendar date.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// Normalized fills every missing field of r. It is the only place where
// record defaults are decided.
func (r Record) Normalized(today string) Record {
	if r.Date == "" {
		r.Date = today
	}
	if r.Category == "" {
		r.Category = DefaultCategory
	}
	r.Amount = normalizeAmount(r.Amount)
	return r
}

func normalizeAmount(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Abs(amount)
}

// AmountLiteral renders the amount as the shortest decimal literal, e.g. 349 or 12.5.
func (r Record) AmountLiteral() string {
	return decimal.NewFromFloat(normalizeAmount(r.Amount)).String()
}

// Sum adds the record amounts without float drift.
func (p Payload) Sum() float64 {
	total := decimal.Zero
	for _, rec := range p.Expenses {
		total = total.Add(decimal.NewFromFloat(normalizeAmount(rec.Amount)))
	}
	f, _ := total.Float64()
	return f
}

// GrandTotal prefers the upstream aggregate and falls back to Sum.
func (p Payload) GrandTotal() float64 {
	if p.Total != nil {
		return *p.Total
	}
	return p.Sum()
}

// Normalized returns a copy of p with defaults applied to every record.
func (p Payload) Normalized(today string) Payload {
	if p.Expenses == nil {
		return p
	}
	records := make([]Record, 0, len(p.Expenses))
	for _, rec := range p.Expenses {
		records = append(records, rec.Normalized(today))
	}
	p.Expenses = records
	return p
}
