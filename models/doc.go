// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignupRequest / LoginRequest: username, password
  - CreateQuestionRequest: question_text, descriptions, choices, expires_at
  - CastVoteRequest: choice_id

# Response Types

Types for JSON responses:

  - AuthResponse: user_id, username, token
  - CreateQuestionResponse: question_id, choices
  - QuestionDetail: question, choices with counts, expired flag
  - QuestionListResponse: open questions, newest first
  - CastVoteResponse: vote_id, question_id, choice_id
  - ResultsResponse: question, total_votes, per-choice results
  - ProfileResponse: account summary
  - ErrorResponse: error, message
  - VoteErrorResponse: error, message, question

# Domain Types

Internal data structures:

  - User: account with bcrypt password hash
  - Question: text, publish and expiration timestamps, owner
  - Choice: display text and vote counter, owned by a question
  - Vote: one per (user, question), records the chosen choice
  - ChoiceResult / Results: aggregated counts and percentages
*/
package models
