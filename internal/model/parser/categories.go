package parser

import "strings"

const (
	categoryFood           = "Food & Dining"
	categoryTransportation = "Transportation"
	categoryPersonal       = "Personal Items"
	categoryHealthcare     = "Healthcare"
	categoryEntertainment  = "Entertainment"
	categoryShopping       = "Shopping"
	categoryOther          = "Other"
)

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{categoryFood, []string{"food", "restaurant", "hotel", "ate", "dinner", "lunch", "breakfast", "airport"}},
	{categoryTransportation, []string{"transport", "uber", "taxi", "bus", "train", "flight", "plane"}},
	{categoryPersonal, []string{"clothes", "shirt", "shoes", "umbrella", "personal", "headset", "headphone"}},
	{categoryHealthcare, []string{"medicine", "doctor", "hospital", "health"}},
	{categoryEntertainment, []string{"movie", "entertainment", "game", "cinema"}},
	{categoryShopping, []string{"grocer", "shopping", "market"}},
}

// Categorize picks the first category whose keyword occurs in description.
func Categorize(description string) string {
	description = strings.ToLower(description)
	for _, c := range categoryKeywords {
		for _, w := range c.words {
			if strings.Contains(description, w) {
				return c.category
			}
		}
	}
	return categoryOther
}
