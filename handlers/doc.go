// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Poll API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AccountHandler: Signup and login
  - QuestionHandler: Create, list, view and delete questions
  - VotingHandler: Casting votes
  - ResultsHandler: Vote percentages
  - ProfileHandler: The caller's account and questions
  - PageHandler: Server-rendered HTML views

Handlers are created via constructor functions that accept *sql.DB and Config:

	questionHandler := handlers.NewQuestionHandler(db, cfg)

# Authentication

Signup and login return a bearer token. Handlers that act on behalf of a
user expect to run behind middleware.RequireAuth and read the user ID from
the request context.

# Questions

	POST   /questions      → CreateQuestion (at least 2 choices)
	GET    /questions      → ListQuestions (open now, newest first, ?limit=)
	GET    /questions/{id} → GetQuestion (choices, counts, expired flag)
	DELETE /questions/{id} → DeleteQuestion (owner only)

# Voting

	POST /questions/{id}/vote → CastVote

Votes go through voting.Engine. Rejected votes return the message together
with the question so the ballot can be shown again:

  - 400 "Select a choice."
  - 409 "You have already voted on this question."
  - 409 "Voting on this question has closed." (only with ENFORCE_VOTING_WINDOW)

# Results

	GET /questions/{id}/results → GetResults

Percentages are recomputed from the stored counters on every request.
*/
package handlers
