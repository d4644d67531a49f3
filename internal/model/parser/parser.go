package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"max.ks1230/finance-assistant/internal/entity/expense"
)

type clock interface {
	Now() time.Time
}

type Parser struct {
	clock clock
}

func New(clock clock) *Parser {
	return &Parser{clock: clock}
}

type found struct {
	pos         int
	amount      float64
	description string
	category    string
}

// Parse extracts expense records from a free text message. Records follow
// the order in which their amounts appear in the text.
func (p *Parser) Parse(text string) []expense.Record {
	text = strings.ToLower(text)

	items := matchRules(text)
	if len(items) == 0 {
		items = matchFallback(text)
	}
	if len(items) == 0 {
		return nil
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].pos < items[j].pos
	})

	date := p.dateOf(text)
	records := make([]expense.Record, 0, len(items))
	for _, it := range items {
		records = append(records, expense.Record{
			Date:        date,
			Category:    it.category,
			Amount:      it.amount,
			Description: it.description,
		})
	}
	return records
}

// HasExpenseKeywords reports whether the message looks like it talks about money.
func HasExpenseKeywords(text string) bool {
	text = strings.ToLower(text)
	for _, kw := range expenseKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func matchRules(text string) []found {
	claimed := make(map[int]struct{})
	items := make([]found, 0)

	for _, r := range itemRules {
		for _, m := range r.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[2*r.amountGroup], m[2*r.amountGroup+1]
			if start < 0 {
				continue
			}
			if _, ok := claimed[start]; ok {
				continue
			}
			amount, err := strconv.ParseFloat(text[start:end], 64)
			if err != nil {
				continue
			}

			var item string
			if r.itemGroup > 0 && m[2*r.itemGroup] >= 0 {
				item = text[m[2*r.itemGroup]:m[2*r.itemGroup+1]]
			}

			var description, category string
			switch {
			case r.description != "" && strings.Contains(r.description, "%s"):
				description = fmt.Sprintf(r.description, titled(item))
				category = r.category
			case r.description != "":
				description = r.description
				category = r.category
			default:
				item = trimFillers(item)
				if item == "" {
					continue
				}
				description = titled(item)
				category = Categorize(item)
			}

			claimed[start] = struct{}{}
			items = append(items, found{
				pos:         start,
				amount:      amount,
				description: description,
				category:    category,
			})
		}
	}
	return items
}

func matchFallback(text string) []found {
	seen := make(map[int]struct{})
	amounts := make([]found, 0)
	for _, re := range amountPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[2], m[3]
			if _, ok := seen[start]; ok {
				continue
			}
			amount, err := strconv.ParseFloat(text[start:end], 64)
			if err != nil {
				continue
			}
			seen[start] = struct{}{}
			amounts = append(amounts, found{pos: start, amount: amount})
		}
	}
	sort.SliceStable(amounts, func(i, j int) bool {
		return amounts[i].pos < amounts[j].pos
	})

	descriptions := make([]string, 0)
	for _, re := range descriptionPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			desc := strings.TrimSpace(m[1])
			if len(desc) > 2 {
				descriptions = append(descriptions, desc)
			}
		}
	}

	for i := range amounts {
		desc := fmt.Sprintf("Expense %d", i+1)
		if i < len(descriptions) {
			desc = descriptions[i]
		}
		amounts[i].description = titled(desc)
		amounts[i].category = Categorize(desc)
	}
	return amounts
}

func (p *Parser) dateOf(text string) string {
	today := p.clock.Now()
	switch {
	case strings.Contains(text, "yesterday"):
		return expense.Today(today.AddDate(0, 0, -1))
	case strings.Contains(text, "today"):
		return expense.Today(today)
	case strings.Contains(text, "last week"):
		return expense.Today(today.AddDate(0, 0, -7))
	case strings.Contains(text, "last month"):
		return expense.Today(today.AddDate(0, -1, 0))
	}
	return expense.Today(today)
}

func trimFillers(item string) string {
	item = strings.TrimSpace(item)
	for _, f := range leadingFillers {
		item = strings.TrimPrefix(item, f)
	}
	return strings.TrimSpace(item)
}

// titled upper-cases the first letter of every word. Casers keep state, so
// one is built per call.
func titled(s string) string {
	return cases.Title(language.English).String(s)
}
