package messages

import (
	"fmt"
	"strings"

	"max.ks1230/finance-assistant/internal/entity/currency"
	"max.ks1230/finance-assistant/internal/entity/expense"
	"max.ks1230/finance-assistant/internal/model/reports"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}

	split := strings.SplitN(text, " ", commandParts)
	cmd = split[0]
	// commands addressed to the bot in groups look like /csv@my_bot
	if at := strings.IndexByte(cmd, '@'); at > 0 {
		cmd = cmd[:at]
	}
	if len(split) == commandParts {
		return cmd, split[1]
	}
	return cmd, ""
}

func formatSummary(payload expense.Payload, today, defaultCurrency string) string {
	summary := reports.Summarize(payload, today, defaultCurrency)
	symbol := currency.Symbol(summary.Currency)

	res := make([]string, 0, len(summary.Categories)+4)
	for _, cat := range summary.Categories {
		res = append(res, fmt.Sprintf("%s: %s%.2f", cat.Category, symbol, cat.Amount))
	}
	res = append(res, "", fmt.Sprintf("Total: %s%.2f (%d items)", symbol, summary.Total, summary.Count))
	if summary.Largest != nil {
		res = append(res, fmt.Sprintf("Largest: %s %s%.2f", summary.Largest.Description, symbol, summary.Largest.Amount))
	}
	return strings.Join(res, "\n")
}
