package currency

const (
	INR = "INR"
	USD = "USD"
	EUR = "EUR"
	RUB = "RUB"
	CNY = "CNY"
)

var Currencies = []string{INR, USD, EUR, RUB, CNY}

var symbols = map[string]string{
	INR: "₹",
	USD: "$",
	EUR: "€",
	RUB: "₽",
	CNY: "¥",
}

// Symbol returns the display symbol of the currency or its code when unknown.
func Symbol(name string) string {
	if s, ok := symbols[name]; ok {
		return s
	}
	return name
}
