package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// warningThreshold is the budget share in percent above which a
// category gets a spending warning.
var warningThreshold = decimal.NewFromInt(80)

const encouragement = "Great job! You're managing your budget well. Keep it up!"

// Insights generates budget warnings from aggregated category spending.
//
// Every category above the warning threshold gets a warning, in the
// order of the input. When no category is above the threshold, the
// result is exactly one encouragement message.
func Insights(spending []CategorySpending) []string {
	insights := make([]string, 0, 1)

	for _, category := range spending {
		if category.Percentage.GreaterThan(warningThreshold) {
			insights = append(insights, fmt.Sprintf(
				"You've spent %s%% of your %s budget. Consider reducing expenses in this category.",
				category.Percentage.Round(0), category.Category,
			))
		}
	}

	if len(insights) == 0 {
		insights = append(insights, encouragement)
	}

	return insights
}
