// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "github.com/danielhkuo/quickly-poll/models"

// ComputeResults turns stored counters into display percentages.
// Order follows the input. With no votes every percentage is 0.
func ComputeResults(choices []models.Choice) models.Results {
	total := 0
	for _, c := range choices {
		total += c.Votes
	}

	results := make([]models.ChoiceResult, 0, len(choices))
	for _, c := range choices {
		var pct float64
		if total > 0 {
			pct = 100 * float64(c.Votes) / float64(total)
		}
		results = append(results, models.ChoiceResult{
			ChoiceID:   c.ID,
			ChoiceText: c.ChoiceText,
			Votes:      c.Votes,
			Percentage: pct,
		})
	}

	return models.Results{
		TotalVotes: total,
		Choices:    results,
	}
}
