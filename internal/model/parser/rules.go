package parser

import "regexp"

const amountExpr = `(\d+(?:\.\d+)?)`

type rule struct {
	re          *regexp.Regexp
	amountGroup int
	itemGroup   int
	description string
	category    string
}

// itemRules are tried in order. A rule with a fixed description ignores itemGroup.
var itemRules = []rule{
	{
		re:          regexp.MustCompile(`(?:took\s+)?flight(?:\s+(?:which|for))?.*?` + amountExpr),
		amountGroup: 1,
		description: "Flight Ticket",
		category:    categoryTransportation,
	},
	{
		re:          regexp.MustCompile(`ate\s+at\s+(?:the\s+)?(airport|restaurant|hotel).*?(?:for|cost).*?` + amountExpr),
		amountGroup: 2,
		itemGroup:   1,
		description: "%s Food",
		category:    categoryFood,
	},
	{
		re:          regexp.MustCompile(`bought\s+([^0-9]+?)\s+(?:of|for|cost)\s+` + amountExpr),
		amountGroup: 2,
		itemGroup:   1,
	},
	{
		re:          regexp.MustCompile(`(\w+(?:\s+\w+)?)\s+(?:of|for|cost|price)\s+` + amountExpr),
		amountGroup: 2,
		itemGroup:   1,
	},
	{
		re:          regexp.MustCompile(`(?:spent|paid)\s+(?:rs\.?\s*|₹\s*)?` + amountExpr + `\s*(?:rs\.?|rupees?)?\s+on\s+([a-z][a-z ]*?)(?:\s+and\b|[^a-z ]|$)`),
		amountGroup: 1,
		itemGroup:   2,
	},
	{
		re:          regexp.MustCompile(`₹\s*` + amountExpr + `\s+on\s+([a-z][a-z ]*?)(?:\s+and\b|[^a-z ]|$)`),
		amountGroup: 1,
		itemGroup:   2,
	},
}

var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:cost\s+me|amount\s+was|for|paid|spent)\s*(?:rs\.?|₹|dollars?|\$)?\s*` + amountExpr),
	regexp.MustCompile(amountExpr + `\s*(?:rs\.?|rupees?|dollars?|₹|\$)`),
	regexp.MustCompile(`(?:₹|\$)\s*` + amountExpr),
	regexp.MustCompile(`of\s+` + amountExpr + `\s*(?:rs\.?|rupees?)`),
}

var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:bought|purchased|got|ate\s+at|went\s+to|paid\s+for|took)\s+([^0-9₹$]+?)\s+(?:for|amount\s+was|cost|paid|spent|of)\b`),
	regexp.MustCompile(`(?:i|we)\s+(?:bought|purchased|got|ate\s+at|went\s+to|paid\s+for|took)\s+([^0-9₹$]+)`),
}

var expenseKeywords = []string{
	"spent", "bought", "paid", "cost", "amount", "expense", "money", "rupees", "₹", "$",
}

var leadingFillers = []string{"and ", "i ", "we ", "a ", "an ", "the ", "some "}
