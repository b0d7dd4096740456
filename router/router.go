// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/handlers"
	"github.com/danielhkuo/quickly-poll/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(db, cfg)
	questionHandler := handlers.NewQuestionHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	profileHandler := handlers.NewProfileHandler(db, cfg)
	pageHandler := handlers.NewPageHandler(db, cfg)

	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAuth(cfg.TokenSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /signup", middleware.WithLogging(accountHandler.Signup))
	mux.HandleFunc("POST /login", middleware.WithLogging(accountHandler.Login))

	// Questions
	mux.HandleFunc("POST /questions", authed(questionHandler.CreateQuestion))
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("DELETE /questions/{id}", authed(questionHandler.DeleteQuestion))

	// Voting and results
	mux.HandleFunc("POST /questions/{id}/vote", authed(votingHandler.CastVote))
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(resultsHandler.GetResults))

	// Profile
	mux.HandleFunc("GET /me", authed(profileHandler.GetMe))
	mux.HandleFunc("GET /me/questions", authed(profileHandler.GetMyQuestions))

	// HTML views
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))
	mux.HandleFunc("GET /q/{id}", middleware.WithLogging(pageHandler.Question))
	mux.HandleFunc("GET /q/{id}/results", middleware.WithLogging(pageHandler.Results))

	return mux
}
