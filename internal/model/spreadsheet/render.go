package spreadsheet

import (
	"fmt"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"max.ks1230/finance-assistant/internal/entity/currency"
	"max.ks1230/finance-assistant/internal/entity/expense"
)

const (
	SheetName = "Expenses"

	headerFill  = "4472C4"
	headerFont  = "FFFFFF"
	maxColWidth = 50
	columns     = 4
)

type config interface {
	BaseCurrency() string
}

type Renderer struct {
	baseCurrency string
}

func NewRenderer(config config) *Renderer {
	return &Renderer{baseCurrency: config.BaseCurrency()}
}

// Render builds an xlsx workbook with one row per record and a trailing total row.
func (r *Renderer) Render(payload expense.Payload, today string) ([]byte, error) {
	payload = payload.Normalized(today)
	code := payload.Currency
	if code == "" {
		code = r.baseCurrency
	}
	symbol := currency.Symbol(code)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Wrap(err, "rename sheet")
	}

	header := []string{"Date", "Category", fmt.Sprintf("Amount (%s)", symbol), "Description"}
	widths := make([]int, columns)
	for i, h := range header {
		if err := f.SetCellValue(SheetName, cellName(i+1, 1), h); err != nil {
			return nil, errors.Wrap(err, "write header")
		}
		widths[i] = utf8.RuneCountInString(h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFont},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFill}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "header style")
	}
	if err = f.SetCellStyle(SheetName, "A1", cellName(columns, 1), headerStyle); err != nil {
		return nil, errors.Wrap(err, "apply header style")
	}

	for i, rec := range payload.Expenses {
		row := i + 2
		values := []interface{}{rec.Date, rec.Category, rec.Amount, rec.Description}
		texts := []string{rec.Date, rec.Category, rec.AmountLiteral(), rec.Description}
		for col, v := range values {
			if err = f.SetCellValue(SheetName, cellName(col+1, row), v); err != nil {
				return nil, errors.Wrap(err, "write record")
			}
			if n := utf8.RuneCountInString(texts[col]); n > widths[col] {
				widths[col] = n
			}
		}
	}

	if err = r.writeTotal(f, payload, symbol, len(payload.Expenses)+2); err != nil {
		return nil, err
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err = f.SetColWidth(SheetName, col, col, float64(min(w+2, maxColWidth))); err != nil {
			return nil, errors.Wrap(err, "set column width")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeTotal(f *excelize.File, payload expense.Payload, symbol string, row int) error {
	numFmt := fmt.Sprintf(`"%s"#,##0.00`, symbol)
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true},
		CustomNumFmt: &numFmt,
	})
	if err != nil {
		return errors.Wrap(err, "total style")
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "total style")
	}

	label, amount := cellName(2, row), cellName(3, row)
	if err = f.SetCellValue(SheetName, label, "Total:"); err != nil {
		return errors.Wrap(err, "write total")
	}
	if err = f.SetCellValue(SheetName, amount, payload.GrandTotal()); err != nil {
		return errors.Wrap(err, "write total")
	}
	if err = f.SetCellStyle(SheetName, label, label, labelStyle); err != nil {
		return errors.Wrap(err, "apply total style")
	}
	if err = f.SetCellStyle(SheetName, amount, amount, totalStyle); err != nil {
		return errors.Wrap(err, "apply total style")
	}
	return nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
