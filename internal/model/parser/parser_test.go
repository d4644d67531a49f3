package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/utils"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func newParser() *Parser {
	return New(utils.FixedClock{T: fixedNow})
}

func Test_OnFlightAndAirportMeal_ShouldExtractBothInOrder(t *testing.T) {
	records := newParser().Parse("I took flight for 5000 rs and ate at airport for 300 rs")

	require.Len(t, records, 2)
	assert.Equal(t, expense.Record{
		Date:        "2024-03-15",
		Category:    "Transportation",
		Amount:      5000,
		Description: "Flight Ticket",
	}, records[0])
	assert.Equal(t, expense.Record{
		Date:        "2024-03-15",
		Category:    "Food & Dining",
		Amount:      300,
		Description: "Airport Food",
	}, records[1])
}

func Test_OnBoughtItem_ShouldUseItemAsDescription(t *testing.T) {
	records := newParser().Parse("Yesterday I bought a headset for 1500")

	require.Len(t, records, 1)
	assert.Equal(t, "Headset", records[0].Description)
	assert.Equal(t, "Personal Items", records[0].Category)
	assert.Equal(t, 1500.0, records[0].Amount)
	assert.Equal(t, "2024-03-14", records[0].Date)
}

func Test_OnSpentOn_ShouldExtractAmountAndItem(t *testing.T) {
	records := newParser().Parse("spent 150 on movie tickets.")

	require.Len(t, records, 1)
	assert.Equal(t, "Movie Tickets", records[0].Description)
	assert.Equal(t, "Entertainment", records[0].Category)
	assert.Equal(t, 150.0, records[0].Amount)
}

func Test_OnSeveralGenericItems_ShouldKeepTextOrder(t *testing.T) {
	records := newParser().Parse("coffee for 50 and sandwich for 80")

	require.Len(t, records, 2)
	assert.Equal(t, "Coffee", records[0].Description)
	assert.Equal(t, 50.0, records[0].Amount)
	assert.Equal(t, "Sandwich", records[1].Description)
	assert.Equal(t, 80.0, records[1].Amount)
}

func Test_OnBareAmounts_ShouldFallBackToNumberedExpenses(t *testing.T) {
	records := newParser().Parse("it cost me 250 rs last week")

	require.Len(t, records, 1)
	assert.Equal(t, "Expense 1", records[0].Description)
	assert.Equal(t, "Other", records[0].Category)
	assert.Equal(t, 250.0, records[0].Amount)
	assert.Equal(t, "2024-03-08", records[0].Date)
}

func Test_OnLastMonth_ShouldShiftDateByMonth(t *testing.T) {
	records := newParser().Parse("last month paid ₹99.50 on groceries")

	require.Len(t, records, 1)
	assert.Equal(t, "2024-02-15", records[0].Date)
	assert.Equal(t, 99.5, records[0].Amount)
	assert.Equal(t, "Shopping", records[0].Category)
}

func Test_OnTextWithoutAmounts_ShouldReturnNothing(t *testing.T) {
	assert.Empty(t, newParser().Parse("how do I save more money?"))
}

func Test_OnExpenseKeywords_ShouldDetectMoneyTalk(t *testing.T) {
	assert.True(t, HasExpenseKeywords("I SPENT a lot"))
	assert.True(t, HasExpenseKeywords("₹200 gone"))
	assert.False(t, HasExpenseKeywords("hello there"))
}

func Test_OnCategorize_ShouldFallBackToOther(t *testing.T) {
	assert.Equal(t, "Healthcare", Categorize("Doctor visit"))
	assert.Equal(t, "Transportation", Categorize("uber ride"))
	assert.Equal(t, "Other", Categorize("books"))
}
