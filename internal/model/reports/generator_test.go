package reports

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/reports/mock"
	"max.ks1230/finance-assistant/internal/utils"
)

type currencyConfig string

func (c currencyConfig) BaseCurrency() string {
	return string(c)
}

// Friday
var reportNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)

func entry(category string, amount float64) expense.Entry {
	return expense.Entry{Record: expense.Record{Category: category, Amount: amount}, CreatedAt: reportNow}
}

func Test_OnGenerateReport_ShouldGroupByCategory(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)

	storage.
		GetExpensesMock.
		Inspect(func(_ context.Context, since time.Time) {
			assert.True(m, since.IsZero())
		}).
		Return([]expense.Entry{
			entry("Internet", 1000),
			entry("Shopping", 1500),
			entry("Shopping", 100),
		}, nil)

	generator := NewGenerator(currencyConfig("INR"), storage, utils.FixedClock{T: reportNow})
	report, err := generator.GenerateReport(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, 2600.0, report.Total)
	assert.Equal(t, 3, report.Count)
	assert.Equal(t, "INR", report.Currency)
	assert.Nil(t, report.Since)
	require.Len(t, report.Categories, 2)
	assert.Equal(t, CategoryTotal{Category: "Shopping", Amount: 1600, Count: 2}, report.Categories[0])
	assert.Equal(t, CategoryTotal{Category: "Internet", Amount: 1000, Count: 1}, report.Categories[1])
}

func Test_OnMonthReport_ShouldQueryFromBeginningOfMonth(t *testing.T) {
	ctx := context.Background()

	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)

	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	storage.
		GetExpensesMock.
		Inspect(func(_ context.Context, since time.Time) {
			assert.True(m, want.Equal(since))
		}).
		Return(nil, nil)

	generator := NewGenerator(currencyConfig("INR"), storage, utils.FixedClock{T: reportNow})
	report, err := generator.GenerateReport(ctx, PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 0.0, report.Total)
	assert.Empty(t, report.Categories)
	require.NotNil(t, report.Since)
	assert.True(t, want.Equal(*report.Since))
}

func Test_OnUnknownPeriod_ShouldFailWithoutQuerying(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	storage := mock.NewExpensesStorageMock(m)

	generator := NewGenerator(currencyConfig("INR"), storage, utils.FixedClock{T: reportNow})
	_, err := generator.GenerateReport(context.Background(), "decade")

	assert.ErrorIs(t, err, ErrUnsupportedPeriod)
}

func Test_OnSummarize_ShouldApplyDefaultsAndFindLargest(t *testing.T) {
	payload := expense.Payload{Expenses: []expense.Record{
		{Category: "Food", Amount: 80, Description: "Snacks"},
		{Amount: 150, Description: "Books"},
		{Category: "Food", Amount: 120, Description: "Coffee"},
	}}

	s := Summarize(payload, "2024-03-15", "INR")

	assert.Equal(t, 350.0, s.Total)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, "INR", s.Currency)
	require.NotNil(t, s.Largest)
	assert.Equal(t, "Books", s.Largest.Description)
	assert.Equal(t, "Uncategorized", s.Expenses[1].Category)
	assert.Equal(t, "2024-03-15", s.Expenses[1].Date)
	require.Len(t, s.Categories, 2)
	assert.Equal(t, "Food", s.Categories[0].Category)
	assert.Equal(t, 200.0, s.Categories[0].Amount)
}

func Test_OnSummarizeEmpty_ShouldReturnZeroes(t *testing.T) {
	s := Summarize(expense.Payload{Currency: "USD"}, "2024-03-15", "INR")

	assert.Equal(t, 0.0, s.Total)
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, "USD", s.Currency)
	assert.Nil(t, s.Largest)
	assert.NotNil(t, s.Expenses)
}
