// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Poll API server.

Quickly Poll is a simple polling service: users sign up, ask questions with
two or more choices, vote once per question and see the results as
percentages.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:quickly-poll.db TOKEN_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -token-secret ...

A .env file in the working directory is loaded first if present
(-env-file to change the path). Variables already set win.

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file URL or PostgreSQL connection string
  - TOKEN_SECRET (-token-secret): Secret for signing session tokens

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (-token-ttl): Session lifetime (default: 24h)
  - QUESTION_TTL (-question-ttl): Default question lifetime (default: 168h)
  - ENFORCE_VOTING_WINDOW (-enforce-window): Reject votes outside the
    question's open window (default: false)
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, questions, voting, results, profile, pages)
  - voting: Vote engine, voting window and results aggregation
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, bearer authentication
  - models: Domain and request/response types
  - web: HTML views
  - auth: Passwords, session tokens, IDs
  - db: Connections and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
