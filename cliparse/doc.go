// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - TokenSecret: Secret for signing session tokens (required)
  - TokenTTL: Session token lifetime (default: 24h)
  - QuestionTTL: Default question lifetime (default: 168h)
  - EnforceVotingWindow: Reject votes on closed questions (default: false)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p               Server port
	-d               Database URL
	-t               Database type
	-token-secret    Session token secret
	-token-ttl       Session token lifetime
	-question-ttl    Default question lifetime
	-enforce-window  Reject votes outside the open window
	-log-level       Log level
	-env-file        Optional .env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                  → -p
	DATABASE_URL          → -d
	DATABASE_TYPE         → -t
	TOKEN_SECRET          → -token-secret
	TOKEN_TTL             → -token-ttl
	QUESTION_TTL          → -question-ttl
	ENFORCE_VOTING_WINDOW → -enforce-window
	LOG_LEVEL             → -log-level

CLI flags take precedence over environment variables. Before the fallback
runs, the .env file (if present) is loaded with godotenv; it never overrides
variables that are already set.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - TOKEN_SECRET must be provided
  - DATABASE_TYPE must be sqlite or postgres
*/
package cliparse
