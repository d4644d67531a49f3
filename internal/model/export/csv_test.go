package export

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

const today = "2024-03-15"

func Test_OnSingleRecord_ShouldQuoteAllButAmount(t *testing.T) {
	payload := expense.Decode([]byte(`{"expenses":[{"date":"2024-01-05","category":"Food & Dining","amount":349,"description":"Swiggy pizza order"}]}`), today)

	out := CSV(&payload, today)

	assert.Equal(t, "Date,Category,Amount,Description\n"+
		`"2024-01-05","Food & Dining",349,"Swiggy pizza order"`+"\n", string(out))
}

func Test_OnPayloadWithoutExpenses_ShouldReturnHeaderOnly(t *testing.T) {
	payload := expense.Decode([]byte(`{}`), today)

	assert.Equal(t, "Date,Category,Amount,Description\n", string(CSV(&payload, today)))
	assert.Equal(t, "Date,Category,Amount,Description\n", string(CSV(nil, today)))
	assert.Equal(t, "Date,Category,Amount,Description\n", string(CSV(&expense.Payload{Expenses: []expense.Record{}}, today)))
}

func Test_OnMissingFields_ShouldApplyDefaults(t *testing.T) {
	payload := expense.Decode([]byte(`{"expenses":[{"description":"tea"}]}`), today)

	out := CSV(&payload, today)

	assert.Equal(t, "Date,Category,Amount,Description\n"+
		`"2024-03-15","Uncategorized",0,"tea"`+"\n", string(out))

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Len(t, rows[1], 4)
}

func Test_OnTrickyText_ShouldRoundTripThroughCSVReader(t *testing.T) {
	records := []expense.Record{
		{Date: "2024-01-05", Category: "Food & Dining", Amount: 349, Description: "Swiggy pizza order"},
		{Date: "2024-01-06", Category: "Other", Amount: 12.5, Description: `the "good" one, really`},
		{Date: "2024-01-07", Category: "Shopping, misc", Amount: 0.1, Description: ""},
		{Date: "2024-01-08", Category: "Bills", Amount: 1999.99, Description: "line\nbreak"},
	}

	out := CSV(&expense.Payload{Expenses: records}, today)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, len(records)+1)
	assert.Equal(t, []string{"Date", "Category", "Amount", "Description"}, rows[0])
	for i, rec := range records {
		row := rows[i+1]
		amount, err := strconv.ParseFloat(row[2], 64)
		require.NoError(t, err)
		assert.Equal(t, rec, expense.Record{Date: row[0], Category: row[1], Amount: amount, Description: row[3]})
	}
}

func Test_OnSamePayload_ShouldProduceSameBody(t *testing.T) {
	payload := &expense.Payload{Expenses: []expense.Record{{Amount: 10, Description: "x"}}}

	assert.Equal(t, CSV(payload, today), CSV(payload, today))
}

func Test_OnTimestamp_ShouldBeFilesystemSafeUTC(t *testing.T) {
	moment := time.Date(2024, 1, 5, 14, 3, 9, 0, time.FixedZone("IST", 5*3600+1800))

	assert.Equal(t, "2024-01-05T08-33-09", Timestamp(moment))
	assert.Equal(t, "expenses_2024-01-05T08-33-09.csv", CSVFileName(moment))
	assert.Equal(t, "student_expenses_2024-01-05T08-33-09.xlsx", SpreadsheetFileName("student", moment))
	assert.Equal(t, "expenses_2024-01-05T08-33-09.xlsx", SpreadsheetFileName("", moment))
}

func Test_OnCallsOneSecondApart_ShouldNameFilesDifferently(t *testing.T) {
	first := time.Date(2024, 1, 5, 8, 0, 0, 0, time.UTC)

	assert.NotEqual(t, CSVFileName(first), CSVFileName(first.Add(time.Second)))
	assert.NotEqual(t, SpreadsheetFileName("p", first), SpreadsheetFileName("p", first.Add(time.Second)))
}
