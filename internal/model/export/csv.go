package export

import (
	"bytes"
	"strings"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

const csvHeader = "Date,Category,Amount,Description\n"

var quoteEscaper = strings.NewReplacer(`"`, `""`)

// CSV renders the payload with every text field quoted and the amount left
// bare. A nil payload or a payload without an expense list yields the header only.
func CSV(payload *expense.Payload, today string) []byte {
	var buf bytes.Buffer
	buf.WriteString(csvHeader)
	if payload == nil {
		return buf.Bytes()
	}

	for _, rec := range payload.Expenses {
		rec = rec.Normalized(today)
		writeQuoted(&buf, rec.Date)
		buf.WriteByte(',')
		writeQuoted(&buf, rec.Category)
		buf.WriteByte(',')
		buf.WriteString(rec.AmountLiteral())
		buf.WriteByte(',')
		writeQuoted(&buf, rec.Description)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func writeQuoted(buf *bytes.Buffer, field string) {
	buf.WriteByte('"')
	buf.WriteString(quoteEscaper.Replace(field))
	buf.WriteByte('"')
}
