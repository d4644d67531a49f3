package export

import "time"

const timestampLayout = "2006-01-02T15-04-05"

// Timestamp is the filesystem safe UTC moment used in export file names.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// CSVFileName names a CSV export made at t.
func CSVFileName(t time.Time) string {
	return "expenses_" + Timestamp(t) + ".csv"
}

// SpreadsheetFileName names a workbook export made at t, scoped by prefix.
func SpreadsheetFileName(prefix string, t time.Time) string {
	name := "expenses_" + Timestamp(t) + ".xlsx"
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}
