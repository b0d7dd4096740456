package models

import "time"

// Request types

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateQuestionRequest struct {
	QuestionText     string     `json:"question_text"`
	ShortDescription string     `json:"short_description"`
	FullDescription  string     `json:"full_description"`
	Choices          []string   `json:"choices"`
	ChoicesText      string     `json:"choices_text"` // comma-separated alternative to Choices
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
}

type CastVoteRequest struct {
	ChoiceID string `json:"choice_id"`
}

// Response types

type AuthResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type CreateQuestionResponse struct {
	QuestionID string   `json:"question_id"`
	Choices    []Choice `json:"choices"`
}

type QuestionDetail struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
	Expired  bool     `json:"expired"`
}

type QuestionListResponse struct {
	Questions []Question `json:"questions"`
}

type CastVoteResponse struct {
	VoteID     string `json:"vote_id"`
	QuestionID string `json:"question_id"`
	ChoiceID   string `json:"choice_id"`
}

type ResultsResponse struct {
	Question   Question       `json:"question"`
	TotalVotes int            `json:"total_votes"`
	Results    []ChoiceResult `json:"results"`
}

type ProfileResponse struct {
	UserID        string    `json:"user_id"`
	Username      string    `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
	QuestionCount int       `json:"question_count"`
	VoteCount     int       `json:"vote_count"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Question struct {
	ID               string    `json:"id"`
	QuestionText     string    `json:"question_text"`
	ShortDescription string    `json:"short_description"`
	FullDescription  string    `json:"full_description"`
	PubDate          time.Time `json:"pub_date"`
	ExpiresAt        time.Time `json:"expires_at"`
	UserID           string    `json:"user_id"`
}

type Choice struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
	Position   int    `json:"position"`
}

type Vote struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	QuestionID string    `json:"question_id"`
	ChoiceID   string    `json:"choice_id"`
	IPHash     string    `json:"-"` // Never expose in JSON
	UserAgent  string    `json:"-"` // Never expose in JSON
	CreatedAt  time.Time `json:"created_at"`
}

// Result types

type ChoiceResult struct {
	ChoiceID   string  `json:"choice_id"`
	ChoiceText string  `json:"choice_text"`
	Votes      int     `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type Results struct {
	TotalVotes int
	Choices    []ChoiceResult
}

// Error responses

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// VoteErrorResponse carries the question back with the message so the
// client can re-render the ballot.
type VoteErrorResponse struct {
	Error    string          `json:"error"`
	Message  string          `json:"message"`
	Question *QuestionDetail `json:"question,omitempty"`
}
