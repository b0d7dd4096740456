// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-poll/auth"
	"github.com/danielhkuo/quickly-poll/cliparse"
	"github.com/danielhkuo/quickly-poll/db"
	"github.com/danielhkuo/quickly-poll/models"
)

// TestTokenSecret signs session tokens in tests
const TestTokenSecret = "test-token-secret"

// TestPassword is the password of every account created by CreateTestUser
const TestPassword = "password123"

// bcrypt is slow on purpose; hash the shared password once per test binary
var (
	passwordHashOnce sync.Once
	passwordHash     string
	passwordHashErr  error
)

func testPasswordHash() (string, error) {
	passwordHashOnce.Do(func() {
		passwordHash, passwordHashErr = auth.HashPassword(TestPassword)
	})
	return passwordHash, passwordHashErr
}

// SetupTestDB creates a fresh sqlite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(db.DriverSQLite, "file:"+path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// TestDatabaseURLEnv names the environment variable holding a PostgreSQL
// URL. Tests that need parallel transactions run against it when set.
const TestDatabaseURLEnv = "TEST_DATABASE_URL"

// postgresTestConns caps the pool below PostgreSQL's default max_connections
const postgresTestConns = 20

// SetupPostgresTestDB creates a throwaway schema in the database named by
// TEST_DATABASE_URL and returns a pool bound to it. The test is skipped
// when the variable is unset.
func SetupPostgresTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(TestDatabaseURLEnv)
	if url == "" {
		t.Skipf("%s not set", TestDatabaseURLEnv)
	}

	admin, err := db.Open(db.DriverPostgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { admin.Close() })

	schemaName := "test_" + strings.ReplaceAll(auth.NewID(), "-", "")
	if _, err := admin.Exec("CREATE SCHEMA " + schemaName); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	t.Cleanup(func() {
		if _, err := admin.Exec("DROP SCHEMA IF EXISTS " + schemaName + " CASCADE"); err != nil {
			t.Logf("Failed to drop test schema %s: %v", schemaName, err)
		}
	})

	conn, err := db.Open(db.DriverPostgres, withSearchPath(url, schemaName))
	if err != nil {
		t.Fatalf("Failed to open test schema: %v", err)
	}
	conn.SetMaxOpenConns(postgresTestConns)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// withSearchPath adds search_path to a URL or key=value DSN; lib/pq sends
// unknown parameters to the server as session settings
func withSearchPath(url, schemaName string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		return url + sep + "search_path=" + schemaName
	}
	return url + " search_path=" + schemaName
}

// ForEachBackend runs fn as a subtest on SQLite and, when TEST_DATABASE_URL
// is set, on PostgreSQL. SQLite serializes writers on one connection, so
// only the PostgreSQL run has transactions actually overlap.
func ForEachBackend(t *testing.T, fn func(t *testing.T, conn *sql.DB)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		fn(t, SetupTestDB(t))
	})
	t.Run("postgres", func(t *testing.T) {
		fn(t, SetupPostgresTestDB(t))
	})
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  "file:test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		TokenSecret:  TestTokenSecret,
		TokenTTL:     time.Hour,
		QuestionTTL:  7 * 24 * time.Hour,
		LogLevel:     "info",
	}
}

// CreateTestUser inserts an account and returns its ID and a valid session token.
// The password is always TestPassword.
func CreateTestUser(t *testing.T, conn *sql.DB, username string) (userID, token string) {
	t.Helper()

	hash, err := testPasswordHash()
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	userID = auth.NewID()
	_, err = conn.Exec(`
		INSERT INTO account (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, userID, username, hash, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err = auth.IssueToken(userID, TestTokenSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return userID, token
}

// CreateTestQuestion inserts a question with the given window and returns its ID
func CreateTestQuestion(t *testing.T, conn *sql.DB, userID, text string, pubDate, expiresAt time.Time) string {
	t.Helper()

	questionID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO question (id, question_text, short_description, full_description, pub_date, expires_at, user_id)
		VALUES ($1, $2, '', '', $3, $4, $5)
	`, questionID, text, pubDate.UTC(), expiresAt.UTC(), userID)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	return questionID
}

// CreateOpenQuestion inserts a question published an hour ago that expires in a week
func CreateOpenQuestion(t *testing.T, conn *sql.DB, userID, text string) string {
	t.Helper()
	now := time.Now().UTC()
	return CreateTestQuestion(t, conn, userID, text, now.Add(-time.Hour), now.Add(7*24*time.Hour))
}

// AddTestChoice adds a choice to a question and returns the choice ID
func AddTestChoice(t *testing.T, conn *sql.DB, questionID, text string) string {
	t.Helper()

	var position int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM choice WHERE question_id = $1`, questionID).Scan(&position); err != nil {
		t.Fatalf("Failed to count choices: %v", err)
	}

	choiceID := auth.NewID()
	_, err := conn.Exec(`
		INSERT INTO choice (id, question_id, choice_text, votes, position)
		VALUES ($1, $2, $3, 0, $4)
	`, choiceID, questionID, text, position)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return choiceID
}

// ChoiceVotes returns the stored counter for a choice
func ChoiceVotes(t *testing.T, conn *sql.DB, choiceID string) int {
	t.Helper()

	var votes int
	if err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read choice votes: %v", err)
	}
	return votes
}

// CountVotes returns the number of vote rows for a question
func CountVotes(t *testing.T, conn *sql.DB, questionID string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE question_id = $1`, questionID).Scan(&count); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// BearerHeader builds the Authorization header map for a session token
func BearerHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertError decodes an ErrorResponse and checks its message
func AssertError(t *testing.T, w *httptest.ResponseRecorder, message string) {
	t.Helper()
	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Message != message {
		t.Errorf("Expected error message %q, got %q", message, resp.Message)
	}
}
