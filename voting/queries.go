// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-poll/models"
)

// Querier is satisfied by both *sql.DB and *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const (
	DefaultListLimit = 5
	MaxListLimit     = 50
)

const questionColumns = `id, question_text, short_description, full_description, pub_date, expires_at, user_id`

func scanQuestion(row interface{ Scan(...any) error }, q *models.Question) error {
	return row.Scan(&q.ID, &q.QuestionText, &q.ShortDescription, &q.FullDescription,
		&q.PubDate, &q.ExpiresAt, &q.UserID)
}

// LoadQuestion fetches a question by ID. Returns ErrQuestionNotFound if missing.
func LoadQuestion(ctx context.Context, q Querier, id string) (models.Question, error) {
	var question models.Question
	err := scanQuestion(q.QueryRowContext(ctx, `
		SELECT `+questionColumns+`
		FROM question
		WHERE id = $1
	`, id), &question)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to load question %s: %w", id, err)
	}
	return question, nil
}

// LoadChoices returns a question's choices in creation order
func LoadChoices(ctx context.Context, q Querier, questionID string) ([]models.Choice, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes, position
		FROM choice
		WHERE question_id = $1
		ORDER BY position, id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate choices: %w", err)
	}
	return choices, nil
}

// LoadDetail fetches a question with its choices and the expired flag as of now
func LoadDetail(ctx context.Context, q Querier, id string, now time.Time) (models.QuestionDetail, error) {
	question, err := LoadQuestion(ctx, q, id)
	if err != nil {
		return models.QuestionDetail{}, err
	}
	choices, err := LoadChoices(ctx, q, id)
	if err != nil {
		return models.QuestionDetail{}, err
	}
	return models.QuestionDetail{
		Question: question,
		Choices:  choices,
		Expired:  IsExpired(question, now),
	}, nil
}

// ListOpen returns questions open for voting at now, newest first.
// The WHERE clause is the SQL form of IsOpenForVoting.
func ListOpen(ctx context.Context, q Querier, now time.Time, limit int) ([]models.Question, error) {
	limit = ClampLimit(limit)
	rows, err := q.QueryContext(ctx, `
		SELECT `+questionColumns+`
		FROM question
		WHERE pub_date <= $1 AND expires_at > $1
		ORDER BY pub_date DESC, id
		LIMIT $2
	`, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query open questions: %w", err)
	}
	return collectQuestions(rows)
}

// ListByOwner returns every question created by userID, newest first
func ListByOwner(ctx context.Context, q Querier, userID string) ([]models.Question, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT `+questionColumns+`
		FROM question
		WHERE user_id = $1
		ORDER BY pub_date DESC, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions by owner: %w", err)
	}
	return collectQuestions(rows)
}

func collectQuestions(rows *sql.Rows) ([]models.Question, error) {
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		if err := scanQuestion(rows, &question); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate questions: %w", err)
	}
	return questions, nil
}

// ClampLimit maps a requested page size onto [1, MaxListLimit], using
// DefaultListLimit for anything non-positive
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
