package analytics

import (
	"strings"

	"github.com/ryanuber/go-glob"
)

// classifierRule maps a keyword set to the category it suggests.
type classifierRule struct {
	category string
	keywords []string
}

// classifierRules is evaluated in order and the first match wins. The
// order is part of the contract: a title matching several keyword sets
// is always resolved by rule priority, not by match quality.
var classifierRules = []classifierRule{
	{"Food & Dining", []string{"restaurant", "food", "pizza", "burger", "coffee", "lunch", "dinner", "breakfast", "domino", "mcdonalds", "starbucks"}},
	{"Transportation", []string{"uber", "taxi", "gas", "fuel", "metro", "bus", "train", "parking"}},
	{"Shopping", []string{"amazon", "flipkart", "mall", "store", "shopping", "clothes", "electronics"}},
	{"Entertainment", []string{"movie", "cinema", "netflix", "spotify", "game", "concert", "party"}},
	{"Bills & Utilities", []string{"electricity", "water", "internet", "phone", "rent", "insurance", "loan"}},
	{"Healthcare", []string{"hospital", "doctor", "medicine", "pharmacy", "clinic", "medical"}},
}

// Classify suggests a category for a free-text expense title.
//
// Matching is a case-insensitive substring test against each rule's
// keyword set. Titles that match no rule are classified as the
// fallback category.
func Classify(title string) string {
	lower := strings.ToLower(title)

	for _, rule := range classifierRules {
		for _, keyword := range rule.keywords {
			if glob.Glob("*"+keyword+"*", lower) {
				return rule.category
			}
		}
	}

	return FallbackCategory
}
