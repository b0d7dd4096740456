// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-poll/testutil"
)

func TestPageIndex(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewPageHandler(db, testutil.GetTestConfig())
	owner, _ := testutil.CreateTestUser(t, db, "owner")
	now := time.Now().UTC()

	testutil.CreateOpenQuestion(t, db, owner, "Visible question")
	testutil.CreateTestQuestion(t, db, owner, "Hidden expired", now.Add(-2*time.Hour), now.Add(-time.Hour))

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	handler.Index(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Expected HTML content type, got %q", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Visible question") {
		t.Error("Expected open question on index page")
	}
	if strings.Contains(body, "Hidden expired") {
		t.Error("Expired question should not be on index page")
	}
}

func TestPageQuestionAndResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	handler := NewPageHandler(db, cfg)
	votingHandler := NewVotingHandler(db, cfg)

	owner, _ := testutil.CreateTestUser(t, db, "owner")
	questionID := testutil.CreateOpenQuestion(t, db, owner, "Lunch?")
	pizza := testutil.AddTestChoice(t, db, questionID, "Pizza")
	testutil.AddTestChoice(t, db, questionID, "Sushi")
	testutil.AssertStatus(t, castVote(t, votingHandler, questionID, pizza, owner), http.StatusCreated)

	t.Run("detail", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/q/"+questionID, nil)
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()
		handler.Question(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		body := w.Body.String()
		for _, want := range []string{"Lunch?", "Pizza", "Sushi", "1 vote<"} {
			if !strings.Contains(body, want) {
				t.Errorf("Expected detail page to contain %q", want)
			}
		}
	})

	t.Run("results", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/q/"+questionID+"/results", nil)
		req.SetPathValue("id", questionID)
		w := httptest.NewRecorder()
		handler.Results(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		body := w.Body.String()
		for _, want := range []string{"100.0%", "0.0%"} {
			if !strings.Contains(body, want) {
				t.Errorf("Expected results page to contain %q", want)
			}
		}
	})

	t.Run("missing question", func(t *testing.T) {
		for _, fn := range []http.HandlerFunc{handler.Question, handler.Results} {
			req := httptest.NewRequest("GET", "/q/missing", nil)
			req.SetPathValue("id", "missing")
			w := httptest.NewRecorder()
			fn(w, req)
			testutil.AssertStatus(t, w, http.StatusNotFound)
		}
	})
}
