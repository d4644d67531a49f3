package turn

import (
	"max.ks1230/finance-assistant/internal/entity/chat"
	"max.ks1230/finance-assistant/internal/entity/expense"
)

// Interpret decides whether a chat turn carries expenses. The has_expenses
// flag alone drives the decision; when it is set, whatever excel_data holds is
// decoded leniently and never rejected.
func Interpret(resp chat.Response, today string) (bool, *expense.Payload) {
	if resp.HasExpenses == nil || !*resp.HasExpenses {
		return false, nil
	}
	payload := expense.Decode(resp.ExcelData, today)
	return true, &payload
}
