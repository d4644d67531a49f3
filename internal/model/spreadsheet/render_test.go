package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

type currencyConfig string

func (c currencyConfig) BaseCurrency() string {
	return string(c)
}

func open(t *testing.T, body []byte) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func cell(t *testing.T, f *excelize.File, name string) string {
	v, err := f.GetCellValue(SheetName, name, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func Test_OnRender_ShouldWriteHeaderRecordsAndTotal(t *testing.T) {
	payload := expense.Payload{Expenses: []expense.Record{
		{Date: "2024-01-05", Category: "Food & Dining", Amount: 349, Description: "Swiggy pizza order"},
		{Category: "Transportation", Amount: 120.5, Description: "Auto"},
	}}

	body, err := NewRenderer(currencyConfig("INR")).Render(payload, "2024-01-06")
	require.NoError(t, err)

	f := open(t, body)
	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	assert.Equal(t, "Date", cell(t, f, "A1"))
	assert.Equal(t, "Amount (₹)", cell(t, f, "C1"))
	assert.Equal(t, "Description", cell(t, f, "D1"))

	assert.Equal(t, "2024-01-05", cell(t, f, "A2"))
	assert.Equal(t, "349", cell(t, f, "C2"))
	assert.Equal(t, "2024-01-06", cell(t, f, "A3"))
	assert.Equal(t, "120.5", cell(t, f, "C3"))

	assert.Equal(t, "Total:", cell(t, f, "B4"))
	assert.Equal(t, "469.5", cell(t, f, "C4"))
}

func Test_OnPayloadCurrency_ShouldOverrideBaseSymbol(t *testing.T) {
	body, err := NewRenderer(currencyConfig("INR")).Render(expense.Payload{Currency: "USD"}, "2024-01-06")
	require.NoError(t, err)

	f := open(t, body)
	assert.Equal(t, "Amount ($)", cell(t, f, "C1"))
	assert.Equal(t, "Total:", cell(t, f, "B2"))
	assert.Equal(t, "0", cell(t, f, "C2"))
}

func Test_OnLongDescription_ShouldCapColumnWidth(t *testing.T) {
	long := expense.Record{Amount: 1, Description: string(bytes.Repeat([]byte("x"), 120))}

	body, err := NewRenderer(currencyConfig("INR")).Render(expense.Payload{Expenses: []expense.Record{long}}, "2024-01-06")
	require.NoError(t, err)

	width, err := open(t, body).GetColWidth(SheetName, "D")
	require.NoError(t, err)
	assert.Equal(t, float64(maxColWidth), width)
}
