package expense

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Decode turns arbitrary upstream JSON into a fully populated Payload.
// It never fails: anything that does not fit the expected shape is replaced
// by the defaults of Record.Normalized.
func Decode(data []byte, today string) Payload {
	var raw struct {
		Expenses json.RawMessage `json:"expenses"`
		Total    lenientNumber   `json:"total"`
		Currency lenientString   `json:"currency"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Payload{}
	}

	payload := Payload{Currency: raw.Currency.value}
	if raw.Total.set {
		total := raw.Total.value
		payload.Total = &total
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw.Expenses, &elements); err != nil || elements == nil {
		return payload
	}

	payload.Expenses = make([]Record, 0, len(elements))
	for _, element := range elements {
		payload.Expenses = append(payload.Expenses, decodeRecord(element).Normalized(today))
	}
	return payload
}

func decodeRecord(data json.RawMessage) Record {
	var raw struct {
		Date        lenientString `json:"date"`
		Category    lenientString `json:"category"`
		Amount      lenientNumber `json:"amount"`
		Description lenientString `json:"description"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}
	}
	return Record{
		Date:        raw.Date.value,
		Category:    raw.Category.value,
		Amount:      raw.Amount.value,
		Description: raw.Description.value,
	}
}

type lenientString struct {
	value string
}

func (s *lenientString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		s.value = t
	case float64:
		s.value = strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		s.value = strconv.FormatBool(t)
	}
	return nil
}

type lenientNumber struct {
	value float64
	set   bool
}

var numberNoise = strings.NewReplacer(",", "", " ", "", "₹", "", "$", "", "€", "", "rs.", "", "rs", "", "inr", "")

func (n *lenientNumber) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		n.value, n.set = t, true
	case string:
		cleaned := numberNoise.Replace(strings.ToLower(strings.TrimSpace(t)))
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			n.value, n.set = f, true
		}
	}
	return nil
}
