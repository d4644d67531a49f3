package reports

import (
	"context"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/logger"
)

var ErrUnsupportedPeriod = errors.New("report period is not supported")

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

type expensesStorage interface {
	GetExpenses(ctx context.Context, since time.Time) ([]expense.Entry, error)
}

type config interface {
	BaseCurrency() string
}

type clock interface {
	Now() time.Time
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
}

type Report struct {
	Period     string          `json:"period"`
	Since      *time.Time      `json:"since,omitempty"`
	Total      float64         `json:"total"`
	Count      int             `json:"count"`
	Currency   string          `json:"currency"`
	Categories []CategoryTotal `json:"categories"`
}

type Generator struct {
	storage         expensesStorage
	clock           clock
	defaultCurrency string
}

func NewGenerator(config config, storage expensesStorage, clock clock) *Generator {
	return &Generator{
		storage:         storage,
		clock:           clock,
		defaultCurrency: config.BaseCurrency(),
	}
}

// GenerateReport groups the journal entries of the period by category.
func (g *Generator) GenerateReport(ctx context.Context, period string) (Report, error) {
	logger.Info("GenerateReport - start", zap.String("period", period))
	defer logger.Info("GenerateReport - end")

	since, err := g.periodStart(period)
	if err != nil {
		return Report{}, errors.Wrap(err, "generate report")
	}

	entries, err := g.storage.GetExpenses(ctx, since)
	if err != nil {
		return Report{}, errors.Wrap(err, "generate report")
	}

	records := make([]expense.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Record)
	}
	categories, total := groupByCategory(records)

	report := Report{
		Period:     period,
		Total:      total,
		Count:      len(records),
		Currency:   g.defaultCurrency,
		Categories: categories,
	}
	if !since.IsZero() {
		report.Since = &since
	}
	return report, nil
}

func (g *Generator) periodStart(period string) (time.Time, error) {
	moment := now.With(g.clock.Now())
	switch period {
	case PeriodAll:
		return time.Time{}, nil
	case PeriodWeek:
		return moment.BeginningOfWeek(), nil
	case PeriodMonth:
		return moment.BeginningOfMonth(), nil
	case PeriodYear:
		return moment.BeginningOfYear(), nil
	}
	return time.Time{}, errors.Wrapf(ErrUnsupportedPeriod, "period %q", period)
}

func groupByCategory(records []expense.Record) ([]CategoryTotal, float64) {
	sums := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	total := decimal.Zero
	for _, rec := range records {
		amount := decimal.NewFromFloat(rec.Amount)
		sums[rec.Category] = sums[rec.Category].Add(amount)
		counts[rec.Category]++
		total = total.Add(amount)
	}

	res := make([]CategoryTotal, 0, len(sums))
	for cat, sum := range sums {
		amount, _ := sum.Float64()
		res = append(res, CategoryTotal{Category: cat, Amount: amount, Count: counts[cat]})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Amount == res[j].Amount {
			return res[i].Category < res[j].Category
		}
		return res[i].Amount > res[j].Amount
	})

	f, _ := total.Float64()
	return res, f
}
