// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"math"
	"testing"

	"github.com/danielhkuo/quickly-poll/models"
)

func TestComputeResults_NoVotes(t *testing.T) {
	choices := []models.Choice{
		{ID: "a", ChoiceText: "A"},
		{ID: "b", ChoiceText: "B"},
	}

	results := ComputeResults(choices)

	if results.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", results.TotalVotes)
	}
	if len(results.Choices) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results.Choices))
	}
	for _, r := range results.Choices {
		if r.Percentage != 0 {
			t.Errorf("Expected 0%% for %s with no votes, got %f", r.ChoiceText, r.Percentage)
		}
		if math.IsNaN(r.Percentage) {
			t.Errorf("Percentage for %s is NaN", r.ChoiceText)
		}
	}
}

func TestComputeResults_Percentages(t *testing.T) {
	testCases := []struct {
		name     string
		votes    []int
		expected []float64
	}{
		{"single winner", []int{1, 0}, []float64{100, 0}},
		{"even split", []int{5, 5}, []float64{50, 50}},
		{"thirds", []int{1, 1, 1}, []float64{100.0 / 3, 100.0 / 3, 100.0 / 3}},
		{"uneven", []int{3, 1}, []float64{75, 25}},
		{"large counts", []int{999, 1}, []float64{99.9, 0.1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			choices := make([]models.Choice, len(tc.votes))
			total := 0
			for i, v := range tc.votes {
				choices[i] = models.Choice{ID: string(rune('a' + i)), ChoiceText: string(rune('A' + i)), Votes: v}
				total += v
			}

			results := ComputeResults(choices)

			if results.TotalVotes != total {
				t.Errorf("Expected total %d, got %d", total, results.TotalVotes)
			}
			for i, r := range results.Choices {
				if math.Abs(r.Percentage-tc.expected[i]) > 1e-9 {
					t.Errorf("Choice %d: expected %f%%, got %f%%", i, tc.expected[i], r.Percentage)
				}
				if r.Votes != tc.votes[i] {
					t.Errorf("Choice %d: expected %d votes, got %d", i, tc.votes[i], r.Votes)
				}
			}
		})
	}
}

func TestComputeResults_PreservesOrder(t *testing.T) {
	choices := []models.Choice{
		{ID: "z", ChoiceText: "Last alphabetically", Votes: 1},
		{ID: "a", ChoiceText: "First alphabetically", Votes: 9},
	}

	results := ComputeResults(choices)

	if results.Choices[0].ChoiceID != "z" || results.Choices[1].ChoiceID != "a" {
		t.Errorf("Expected input order to be preserved, got %s, %s",
			results.Choices[0].ChoiceID, results.Choices[1].ChoiceID)
	}
}

func TestComputeResults_Empty(t *testing.T) {
	results := ComputeResults(nil)

	if results.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", results.TotalVotes)
	}
	if results.Choices == nil || len(results.Choices) != 0 {
		t.Errorf("Expected empty non-nil results, got %v", results.Choices)
	}
}
