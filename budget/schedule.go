package budget

import "sort"

// Schedule expands every rule and merges the occurrences into one stream
// ordered by (date, category). Occurrences that tie on both keys keep the
// rule order they came from, so a given rule set always produces the same
// schedule.
func Schedule(rules []ExpectedTransaction) []Transaction {
	var events []Transaction
	for _, rule := range rules {
		for tx := range rule.Transactions() {
			events = append(events, tx)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].Date.Equal(events[j].Date) {
			return events[i].Date.Before(events[j].Date)
		}
		return events[i].Category < events[j].Category
	})
	return events
}
