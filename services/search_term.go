package services

import "strings"

// Ordered (substring, term) table for deriving a restaurant search term
// from a meal description. First match wins.
var searchTermTable = []struct {
	keyword string
	term    string
}{
	{"oatmeal", "Healthy breakfast"},
	{"yogurt", "Healthy breakfast"},
	{"egg", "Breakfast restaurant"},
	{"pancake", "Breakfast restaurant"},
	{"chicken", "Grilled chicken restaurant"},
	{"turkey", "Grilled chicken restaurant"},
	{"salmon", "Seafood restaurant"},
	{"fish", "Seafood restaurant"},
	{"tuna", "Seafood restaurant"},
	{"shrimp", "Seafood restaurant"},
	{"salad", "Salad bar"},
	{"soup", "Soup restaurant"},
	{"steak", "Steakhouse"},
	{"beef", "Steakhouse"},
	{"pasta", "Italian restaurant"},
	{"rice", "Asian restaurant"},
	{"noodle", "Asian restaurant"},
	{"tofu", "Vegetarian restaurant"},
	{"vegan", "Vegan restaurant"},
	{"smoothie", "Juice bar"},
	{"sandwich", "Sandwich shop"},
	{"wrap", "Sandwich shop"},
}

// YelpSearchTerm maps a meal description to a restaurant search term.
// Empty input falls back to "Healthy restaurants"; text with no keyword
// match falls back to "Healthy food".
func YelpSearchTerm(meal string) string {
	if strings.TrimSpace(meal) == "" {
		return "Healthy restaurants"
	}
	lower := strings.ToLower(meal)
	for _, e := range searchTermTable {
		if strings.Contains(lower, e.keyword) {
			return e.term
		}
	}
	return "Healthy food"
}
