// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/db"
	"github.com/danielhkuo/quickly-poll/models"
)

// VoteRequest is one voter's selection on one question
type VoteRequest struct {
	VoterID    string
	QuestionID string
	ChoiceID   string
	IPHash     string
	UserAgent  string
}

// Engine records votes. The database is its only state, so one Engine
// can be shared by every request.
type Engine struct {
	db *sql.DB

	// EnforceWindow rejects votes outside [pub_date, expires_at) with
	// ErrQuestionClosed. Off by default.
	EnforceWindow bool

	// Now is the clock used for the window check and vote timestamps
	Now func() time.Time
}

func NewEngine(db *sql.DB) *Engine {
	return &Engine{db: db, Now: time.Now}
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now().UTC()
	}
	return e.Now().UTC()
}

// CastVote records a vote and increments the chosen counter in a single
// transaction. On any error nothing is written.
func (e *Engine) CastVote(ctx context.Context, req VoteRequest) (models.Vote, error) {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	question, err := LoadQuestion(ctx, tx, req.QuestionID)
	if err != nil {
		return models.Vote{}, err
	}

	if req.ChoiceID == "" {
		return models.Vote{}, ErrNoSelection
	}

	// Choice must belong to this question
	var choiceID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM choice WHERE id = $1 AND question_id = $2
	`, req.ChoiceID, question.ID).Scan(&choiceID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Vote{}, ErrChoiceNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to resolve choice: %w", err)
	}

	now := e.now()
	if e.EnforceWindow && !IsOpenForVoting(question, now) {
		return models.Vote{}, ErrQuestionClosed
	}

	vote := models.Vote{
		ID:         auth.NewID(),
		UserID:     req.VoterID,
		QuestionID: question.ID,
		ChoiceID:   choiceID,
		IPHash:     req.IPHash,
		UserAgent:  req.UserAgent,
		CreatedAt:  now,
	}

	// The unique index on (user_id, question_id) decides races
	res, err := tx.ExecContext(ctx, `
		INSERT INTO vote (id, user_id, question_id, choice_id, ip_hash, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, question_id) DO NOTHING
	`, vote.ID, vote.UserID, vote.QuestionID, vote.ChoiceID, vote.IPHash, vote.UserAgent, vote.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.Vote{}, ErrAlreadyVoted
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to read insert result: %w", err)
	}
	if inserted == 0 {
		return models.Vote{}, ErrAlreadyVoted
	}

	res, err = tx.ExecContext(ctx, `
		UPDATE choice SET votes = votes + 1 WHERE id = $1 AND question_id = $2
	`, choiceID, question.ID)
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to increment choice votes: %w", err)
	}
	if updated, err := res.RowsAffected(); err != nil {
		return models.Vote{}, fmt.Errorf("failed to read update result: %w", err)
	} else if updated != 1 {
		return models.Vote{}, fmt.Errorf("choice %s vanished during vote: %w", choiceID, ErrChoiceNotFound)
	}

	if err := tx.Commit(); err != nil {
		return models.Vote{}, fmt.Errorf("failed to commit vote: %w", err)
	}

	slog.Debug("vote recorded", "question_id", question.ID, "choice_id", choiceID, "vote_id", vote.ID)
	return vote, nil
}

// Results loads a question's choices and computes percentages
func Results(ctx context.Context, q Querier, questionID string) (models.Question, models.Results, error) {
	question, err := LoadQuestion(ctx, q, questionID)
	if err != nil {
		return models.Question{}, models.Results{}, err
	}
	choices, err := LoadChoices(ctx, q, questionID)
	if err != nil {
		return models.Question{}, models.Results{}, err
	}
	return question, ComputeResults(choices), nil
}
