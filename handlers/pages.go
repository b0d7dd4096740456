// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/voting"
	"github.com/danielhkuo/quickly-poll/web"
)

// PageHandler serves the HTML views
type PageHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewPageHandler(db *sql.DB, cfg cliparse.Config) *PageHandler {
	return &PageHandler{db: db, cfg: cfg}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := voting.ListOpen(r.Context(), h.db, time.Now().UTC(), voting.DefaultListLimit)
	if err != nil {
		slog.Error("failed to list questions", "error", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	templ.Handler(web.Index(questions)).ServeHTTP(w, r)
}

// Question handles GET /q/{id}
func (h *PageHandler) Question(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	detail, err := voting.LoadDetail(r.Context(), h.db, questionID, time.Now().UTC())
	if errors.Is(err, voting.ErrQuestionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to load question", "error", err, "question_id", questionID)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	templ.Handler(web.Detail(detail)).ServeHTTP(w, r)
}

// Results handles GET /q/{id}/results
func (h *PageHandler) Results(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")

	question, results, err := voting.Results(r.Context(), h.db, questionID)
	if errors.Is(err, voting.ErrQuestionNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("failed to compute results", "error", err, "question_id", questionID)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	templ.Handler(web.Results(question, results)).ServeHTTP(w, r)
}
