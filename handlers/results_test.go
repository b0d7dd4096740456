// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/testutil"
)

func getResults(t *testing.T, h *ResultsHandler, questionID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/questions/"+questionID+"/results", nil)
	req.SetPathValue("id", questionID)
	w := httptest.NewRecorder()
	h.GetResults(w, req)
	return w
}

func TestGetResults_NoVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(db, testutil.GetTestConfig())

	owner, _ := testutil.CreateTestUser(t, db, "owner")
	questionID := testutil.CreateOpenQuestion(t, db, owner, "Q")
	testutil.AddTestChoice(t, db, questionID, "A")
	testutil.AddTestChoice(t, db, questionID, "B")

	w := getResults(t, handler, questionID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.TotalVotes != 0 {
		t.Errorf("Expected 0 total votes, got %d", resp.TotalVotes)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(resp.Results))
	}
	for i, text := range []string{"A", "B"} {
		r := resp.Results[i]
		if r.ChoiceText != text || r.Votes != 0 || r.Percentage != 0 {
			t.Errorf("Result %d: expected (%s, 0, 0), got (%s, %d, %f)", i, text, r.ChoiceText, r.Votes, r.Percentage)
		}
	}
}

func TestGetResults_WithVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(db, cfg)
	votingHandler := NewVotingHandler(db, cfg)

	owner, _ := testutil.CreateTestUser(t, db, "owner")
	questionID := testutil.CreateOpenQuestion(t, db, owner, "Q")
	choiceA := testutil.AddTestChoice(t, db, questionID, "A")
	choiceB := testutil.AddTestChoice(t, db, questionID, "B")

	// 3 votes for A, 1 for B
	for i, choiceID := range []string{choiceA, choiceA, choiceA, choiceB} {
		voter, _ := testutil.CreateTestUser(t, db, "voter"+string(rune('0'+i)))
		testutil.AssertStatus(t, castVote(t, votingHandler, questionID, choiceID, voter), http.StatusCreated)
	}

	w := getResults(t, handler, questionID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ResultsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Question.ID != questionID {
		t.Errorf("Expected question %s, got %s", questionID, resp.Question.ID)
	}
	if resp.TotalVotes != 4 {
		t.Errorf("Expected 4 total votes, got %d", resp.TotalVotes)
	}
	expected := []struct {
		votes int
		pct   float64
	}{{3, 75}, {1, 25}}
	for i, e := range expected {
		if resp.Results[i].Votes != e.votes || resp.Results[i].Percentage != e.pct {
			t.Errorf("Result %d: expected (%d, %.1f), got (%d, %.1f)",
				i, e.votes, e.pct, resp.Results[i].Votes, resp.Results[i].Percentage)
		}
	}
}

func TestGetResults_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewResultsHandler(db, testutil.GetTestConfig())

	w := getResults(t, handler, "missing")

	testutil.AssertStatus(t, w, http.StatusNotFound)
}
