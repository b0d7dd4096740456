// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-poll/testutil"
)

func TestListOpen(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	owner, _ := testutil.CreateTestUser(t, db, "owner")
	now := time.Now().UTC()

	older := testutil.CreateTestQuestion(t, db, owner, "Older", now.Add(-2*time.Hour), now.Add(time.Hour))
	newer := testutil.CreateTestQuestion(t, db, owner, "Newer", now.Add(-time.Hour), now.Add(time.Hour))
	testutil.CreateTestQuestion(t, db, owner, "Expired", now.Add(-3*time.Hour), now.Add(-time.Minute))
	testutil.CreateTestQuestion(t, db, owner, "Future", now.Add(time.Hour), now.Add(2*time.Hour))

	questions, err := ListOpen(ctx, db, now, 0)
	if err != nil {
		t.Fatalf("ListOpen failed: %v", err)
	}

	if len(questions) != 2 {
		t.Fatalf("Expected 2 open questions, got %d", len(questions))
	}
	if questions[0].ID != newer || questions[1].ID != older {
		t.Errorf("Expected newest first, got %s then %s", questions[0].QuestionText, questions[1].QuestionText)
	}
	for _, q := range questions {
		if !IsOpenForVoting(q, now) {
			t.Errorf("ListOpen returned %q which the gate considers closed", q.QuestionText)
		}
	}
}

func TestListOpen_Limit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	owner, _ := testutil.CreateTestUser(t, db, "owner")
	now := time.Now().UTC()

	for i := 0; i < 8; i++ {
		testutil.CreateTestQuestion(t, db, owner, fmt.Sprintf("Q%d", i),
			now.Add(-time.Duration(i+1)*time.Minute), now.Add(time.Hour))
	}

	questions, err := ListOpen(ctx, db, now, 0)
	if err != nil {
		t.Fatalf("ListOpen failed: %v", err)
	}
	if len(questions) != DefaultListLimit {
		t.Errorf("Expected default limit %d, got %d", DefaultListLimit, len(questions))
	}

	questions, err = ListOpen(ctx, db, now, 7)
	if err != nil {
		t.Fatalf("ListOpen failed: %v", err)
	}
	if len(questions) != 7 {
		t.Errorf("Expected 7 questions, got %d", len(questions))
	}
}

func TestClampLimit(t *testing.T) {
	testCases := []struct {
		in, expected int
	}{
		{-1, DefaultListLimit},
		{0, DefaultListLimit},
		{1, 1},
		{MaxListLimit, MaxListLimit},
		{MaxListLimit + 1, MaxListLimit},
	}

	for _, tc := range testCases {
		if got := ClampLimit(tc.in); got != tc.expected {
			t.Errorf("ClampLimit(%d) = %d, expected %d", tc.in, got, tc.expected)
		}
	}
}

func TestListByOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	alice, _ := testutil.CreateTestUser(t, db, "alice")
	bob, _ := testutil.CreateTestUser(t, db, "bob")

	testutil.CreateOpenQuestion(t, db, alice, "Alice 1")
	testutil.CreateOpenQuestion(t, db, alice, "Alice 2")
	testutil.CreateOpenQuestion(t, db, bob, "Bob 1")

	questions, err := ListByOwner(ctx, db, alice)
	if err != nil {
		t.Fatalf("ListByOwner failed: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("Expected 2 questions for alice, got %d", len(questions))
	}
	for _, q := range questions {
		if q.UserID != alice {
			t.Errorf("Question %q belongs to %s, not alice", q.QuestionText, q.UserID)
		}
	}
}

func TestLoadDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	owner, _ := testutil.CreateTestUser(t, db, "owner")
	now := time.Now().UTC()

	questionID := testutil.CreateTestQuestion(t, db, owner, "Expired", now.Add(-2*time.Hour), now.Add(-time.Hour))
	first := testutil.AddTestChoice(t, db, questionID, "First")
	second := testutil.AddTestChoice(t, db, questionID, "Second")

	detail, err := LoadDetail(ctx, db, questionID, now)
	if err != nil {
		t.Fatalf("LoadDetail failed: %v", err)
	}

	if !detail.Expired {
		t.Error("Expected expired flag to be set")
	}
	if detail.Question.QuestionText != "Expired" {
		t.Errorf("Expected question text 'Expired', got %q", detail.Question.QuestionText)
	}
	if len(detail.Choices) != 2 || detail.Choices[0].ID != first || detail.Choices[1].ID != second {
		t.Errorf("Expected choices in creation order, got %+v", detail.Choices)
	}

	if _, err := LoadDetail(ctx, db, "missing", now); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound, got %v", err)
	}
}
