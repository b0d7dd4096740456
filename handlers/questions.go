// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/voting"
)

const (
	maxQuestionTextLength     = 200
	maxShortDescriptionLength = 200
	maxChoiceTextLength       = 200
	minChoices                = 2
)

type QuestionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{db: db, cfg: cfg}
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	text := strings.TrimSpace(req.QuestionText)
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text is required")
		return
	}
	if utf8.RuneCountInString(text) > maxQuestionTextLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_text must be at most 200 characters")
		return
	}
	short := strings.TrimSpace(req.ShortDescription)
	if utf8.RuneCountInString(short) > maxShortDescriptionLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "short_description must be at most 200 characters")
		return
	}

	choices := parseChoices(req)
	if len(choices) < minChoices {
		middleware.ErrorResponse(w, http.StatusBadRequest, "at least 2 choices are required")
		return
	}
	for _, c := range choices {
		if utf8.RuneCountInString(c) > maxChoiceTextLength {
			middleware.ErrorResponse(w, http.StatusBadRequest, "choices must be at most 200 characters")
			return
		}
	}

	// Default expiration is computed per question, not once per process
	pubDate := time.Now().UTC()
	expiresAt := pubDate.Add(h.cfg.QuestionTTL)
	if req.ExpiresAt != nil {
		expiresAt = req.ExpiresAt.UTC()
	}
	if !expiresAt.After(pubDate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "expires_at must be in the future")
		return
	}

	tx, err := h.db.BeginTx(r.Context(), nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	questionID := auth.NewID()
	_, err = tx.ExecContext(r.Context(), `
		INSERT INTO question (id, question_text, short_description, full_description, pub_date, expires_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, questionID, text, short, strings.TrimSpace(req.FullDescription), pubDate, expiresAt, userID)
	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	created := make([]models.Choice, 0, len(choices))
	for i, choiceText := range choices {
		choice := models.Choice{
			ID:         auth.NewID(),
			QuestionID: questionID,
			ChoiceText: choiceText,
			Position:   i,
		}
		_, err = tx.ExecContext(r.Context(), `
			INSERT INTO choice (id, question_id, choice_text, votes, position)
			VALUES ($1, $2, $3, 0, $4)
		`, choice.ID, choice.QuestionID, choice.ChoiceText, choice.Position)
		if err != nil {
			slog.Error("failed to insert choice", "error", err, "question_id", questionID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
			return
		}
		created = append(created, choice)
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", questionID, "user_id", userID, "choices", len(created))

	middleware.JSONResponse(w, http.StatusCreated, models.CreateQuestionResponse{
		QuestionID: questionID,
		Choices:    created,
	})
}

// ListQuestions handles GET /questions
// Returns questions currently open for voting, newest first
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	questions, err := voting.ListOpen(r.Context(), h.db, time.Now().UTC(), limit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{Questions: questions})
}

// GetQuestion handles GET /questions/{id}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	detail, err := voting.LoadDetail(r.Context(), h.db, questionID, time.Now().UTC())
	if errors.Is(err, voting.ErrQuestionNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to load question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// DeleteQuestion handles DELETE /questions/{id}
// Only the owner may delete; choices and votes go with it
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	var ownerID string
	err := h.db.QueryRowContext(r.Context(), `
		SELECT user_id FROM question WHERE id = $1
	`, questionID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if ownerID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the owner can delete this question")
		return
	}

	if _, err := h.db.ExecContext(r.Context(), `DELETE FROM question WHERE id = $1`, questionID); err != nil {
		slog.Error("failed to delete question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete question")
		return
	}

	slog.Info("question deleted", "question_id", questionID, "user_id", userID)

	w.WriteHeader(http.StatusNoContent)
}

// parseChoices trims every choice and drops empties. Choices takes
// precedence; ChoicesText is the comma-separated form.
func parseChoices(req models.CreateQuestionRequest) []string {
	raw := req.Choices
	if len(raw) == 0 && req.ChoicesText != "" {
		raw = strings.Split(req.ChoicesText, ",")
	}

	choices := make([]string, 0, len(raw))
	for _, c := range raw {
		if c = strings.TrimSpace(c); c != "" {
			choices = append(choices, c)
		}
	}
	return choices
}

// requireUser reads the user set by middleware.RequireAuth
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return "", false
	}
	return userID, true
}
