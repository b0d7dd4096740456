// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open("sqlite", "file:quickly-poll.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite connections get foreign keys, a busy timeout and a sortable time
format added to the DSN (see SQLiteDSN), and the pool is capped at a single
connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The SQL is the subset shared by PostgreSQL and SQLite.

# Tables

  - account: registered users (username unique)
  - question: question text, pub_date, expires_at, owner
  - choice: options per question with a vote counter
  - vote: one per (user, question)

# Relationships

	account 1──* question
	question 1──* choice
	question 1──* vote
	choice 1──* vote (via (question_id, choice_id))
	account 1──* vote

All foreign keys use ON DELETE CASCADE. The composite key from vote to
choice guarantees a vote's choice belongs to the vote's question.

# Constraints

  - vote.(user_id, question_id) is UNIQUE; it is the only thing that stops
    a second vote, so inserts must rely on it rather than a prior SELECT.
  - choice.votes is never negative.
  - question.expires_at must be after pub_date.

# Errors

IsUniqueViolation recognizes unique-constraint failures from lib/pq
(SQLSTATE 23505) and modernc sqlite (SQLITE_CONSTRAINT_UNIQUE).
*/
package db
