// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Poll API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Accounts:

	POST /signup - Create account, returns token
	POST /login  - Returns token

Questions (* requires Authorization: Bearer <token>):

	POST   /questions              * Create question with choices
	GET    /questions                Open questions, newest first
	GET    /questions/{id}           Question, choices, expired flag
	DELETE /questions/{id}         * Delete own question
	POST   /questions/{id}/vote    * Cast vote
	GET    /questions/{id}/results   Percentages

Profile:

	GET /me           * Account info and counts
	GET /me/questions * Questions created by caller

HTML:

	GET /                - Index
	GET /q/{id}          - Question page
	GET /q/{id}/results  - Results page
*/
package router
