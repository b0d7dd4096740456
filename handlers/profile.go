// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/voting"
)

type ProfileHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewProfileHandler(db *sql.DB, cfg cliparse.Config) *ProfileHandler {
	return &ProfileHandler{db: db, cfg: cfg}
}

// GetMe handles GET /me
// Returns the caller's account with question and vote counts
func (h *ProfileHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var profile models.ProfileResponse
	err := h.db.QueryRowContext(r.Context(), `
		SELECT id, username, created_at FROM account WHERE id = $1
	`, userID).Scan(&profile.UserID, &profile.Username, &profile.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Account not found")
		return
	}
	if err != nil {
		slog.Error("failed to query account", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	err = h.db.QueryRowContext(r.Context(), `
		SELECT COUNT(*) FROM question WHERE user_id = $1
	`, userID).Scan(&profile.QuestionCount)
	if err != nil {
		slog.Error("failed to count questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	err = h.db.QueryRowContext(r.Context(), `
		SELECT COUNT(*) FROM vote WHERE user_id = $1
	`, userID).Scan(&profile.VoteCount)
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// GetMyQuestions handles GET /me/questions
func (h *ProfileHandler) GetMyQuestions(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	questions, err := voting.ListByOwner(r.Context(), h.db, userID)
	if err != nil {
		slog.Error("failed to list questions", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.QuestionListResponse{Questions: questions})
}
