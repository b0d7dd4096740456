// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/middleware"
	"github.com/danielhkuo/quickly-poll/models"
	"github.com/danielhkuo/quickly-poll/voting"
)

// Messages shown next to the ballot when a vote is rejected
const (
	MsgSelectChoice     = "Select a choice."
	MsgAlreadyVoted     = "You have already voted on this question."
	MsgVotingClosed     = "Voting on this question has closed."
	MsgQuestionNotFound = "Question not found"
)

type VotingHandler struct {
	db     *sql.DB
	cfg    cliparse.Config
	engine *voting.Engine
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	engine := voting.NewEngine(db)
	engine.EnforceWindow = cfg.EnforceVotingWindow
	return &VotingHandler{db: db, cfg: cfg, engine: engine}
}

// CastVote handles POST /questions/{id}/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question_id is required")
		return
	}

	// An empty body, chunked or not, is treated as no selection
	var req models.CastVoteRequest
	if r.Body != nil {
		if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	vote, err := h.engine.CastVote(r.Context(), voting.VoteRequest{
		VoterID:    userID,
		QuestionID: questionID,
		ChoiceID:   req.ChoiceID,
		IPHash:     auth.HashIP(middleware.GetClientIP(r), h.cfg.TokenSecret),
		UserAgent:  r.UserAgent(),
	})
	if err != nil {
		h.voteError(w, r, questionID, err)
		return
	}

	slog.Info("vote cast", "question_id", vote.QuestionID, "choice_id", vote.ChoiceID, "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID:     vote.ID,
		QuestionID: vote.QuestionID,
		ChoiceID:   vote.ChoiceID,
	})
}

// voteError maps engine errors to responses. Rejections carry the question
// so the client can redisplay the ballot with the message.
func (h *VotingHandler) voteError(w http.ResponseWriter, r *http.Request, questionID string, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, voting.ErrQuestionNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, MsgQuestionNotFound)
		return
	case errors.Is(err, voting.ErrChoiceNotFound):
		status, message = http.StatusBadRequest, MsgSelectChoice
	case errors.Is(err, voting.ErrAlreadyVoted):
		status, message = http.StatusConflict, MsgAlreadyVoted
	case errors.Is(err, voting.ErrQuestionClosed):
		status, message = http.StatusConflict, MsgVotingClosed
	default:
		slog.Error("failed to cast vote", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record vote")
		return
	}

	resp := models.VoteErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}
	detail, loadErr := voting.LoadDetail(r.Context(), h.db, questionID, time.Now().UTC())
	if loadErr != nil {
		slog.Warn("failed to load question for vote error", "error", loadErr, "question_id", questionID)
	} else {
		resp.Question = &detail
	}

	middleware.JSONResponse(w, status, resp)
}
