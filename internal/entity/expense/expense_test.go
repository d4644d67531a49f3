package expense

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2024-01-05"

func Test_OnMissingFields_ShouldApplyDefaults(t *testing.T) {
	rec := Record{}.Normalized(today)

	assert.Equal(t, Record{Date: today, Category: DefaultCategory, Amount: 0, Description: ""}, rec)
}

func Test_OnInvalidAmount_ShouldNormalizeIt(t *testing.T) {
	assert.Equal(t, 0.0, Record{Amount: math.NaN()}.Normalized(today).Amount)
	assert.Equal(t, 0.0, Record{Amount: math.Inf(1)}.Normalized(today).Amount)
	assert.Equal(t, 42.5, Record{Amount: -42.5}.Normalized(today).Amount)
}

func Test_OnAmountLiteral_ShouldUseShortestForm(t *testing.T) {
	assert.Equal(t, "349", Record{Amount: 349}.AmountLiteral())
	assert.Equal(t, "12.5", Record{Amount: 12.5}.AmountLiteral())
	assert.Equal(t, "0", Record{}.AmountLiteral())
}

func Test_OnSum_ShouldAvoidFloatDrift(t *testing.T) {
	p := Payload{Expenses: []Record{{Amount: 0.1}, {Amount: 0.2}}}

	assert.Equal(t, 0.3, p.Sum())
	assert.Equal(t, 0.3, p.GrandTotal())
}

func Test_OnExplicitTotal_ShouldPreferIt(t *testing.T) {
	total := 999.0
	p := Payload{Expenses: []Record{{Amount: 1}}, Total: &total}

	assert.Equal(t, 999.0, p.GrandTotal())
	assert.Equal(t, 1.0, p.Sum())
}

func Test_OnToday_ShouldFormatCalendarDate(t *testing.T) {
	assert.Equal(t, "2024-01-05", Today(time.Date(2024, 1, 5, 23, 59, 0, 0, time.UTC)))
}

func Test_OnDecodeWellFormed_ShouldKeepOrderAndValues(t *testing.T) {
	p := Decode([]byte(`{"expenses":[
		{"date":"2024-01-05","category":"Food & Dining","amount":349,"description":"Swiggy pizza order"},
		{"date":"2024-01-04","category":"Gaming","amount":"1,500","description":"Steam"}
	],"currency":"INR"}`), today)

	require.Len(t, p.Expenses, 2)
	assert.Equal(t, Record{Date: "2024-01-05", Category: "Food & Dining", Amount: 349, Description: "Swiggy pizza order"}, p.Expenses[0])
	assert.Equal(t, 1500.0, p.Expenses[1].Amount)
	assert.Equal(t, "INR", p.Currency)
	assert.Nil(t, p.Total)
	assert.Equal(t, 1849.0, p.GrandTotal())
}

func Test_OnDecodeMissingExpenses_ShouldLeaveListAbsent(t *testing.T) {
	for _, input := range []string{`{}`, `{"expenses":null}`, `{"expenses":"nope"}`, `null`, `[1,2]`, `garbage`, ``} {
		p := Decode([]byte(input), today)
		assert.Nil(t, p.Expenses, input)
	}
}

func Test_OnDecodeEmptyList_ShouldKeepEmptyList(t *testing.T) {
	p := Decode([]byte(`{"expenses":[]}`), today)

	assert.NotNil(t, p.Expenses)
	assert.Len(t, p.Expenses, 0)
}

func Test_OnDecodeMalformedRecords_ShouldDefaultFields(t *testing.T) {
	p := Decode([]byte(`{"expenses":[
		{"amount":"abc","category":"","date":null},
		42,
		null,
		{"category":7,"description":false,"amount":{"x":1}}
	],"total":"12"}`), today)

	require.Len(t, p.Expenses, 4)
	def := Record{Date: today, Category: DefaultCategory}
	assert.Equal(t, def, p.Expenses[0])
	assert.Equal(t, def, p.Expenses[1])
	assert.Equal(t, def, p.Expenses[2])
	assert.Equal(t, Record{Date: today, Category: "7", Description: "false"}, p.Expenses[3])
	require.NotNil(t, p.Total)
	assert.Equal(t, 12.0, *p.Total)
}
