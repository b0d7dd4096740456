package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port                int
	DatabaseURL         string
	DatabaseType        string
	TokenSecret         string
	TokenTTL            time.Duration
	QuestionTTL         time.Duration
	EnforceVotingWindow bool
	LogLevel            string
	EnvFile             string
}

// LoadDotEnv loads variables from a .env file if one exists.
// Variables already present in the environment are not overwritten.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// ParseFlags parses CLI flags and fills anything unset from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var enforce string

	fs := flag.NewFlagSet("quickly-poll", flag.ContinueOnError)

	fs.StringVar(&cfg.EnvFile, "env-file", ".env", "Path to an optional .env file")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.TokenSecret, "token-secret", "", "Session token signing secret (prefer env)")

	fs.DurationVar(&cfg.TokenTTL, "token-ttl", 0, "Session token lifetime")
	fs.DurationVar(&cfg.QuestionTTL, "question-ttl", 0, "Default question lifetime")
	fs.StringVar(&enforce, "enforce-window", "", "Reject votes outside the question's open window (true/false)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := LoadDotEnv(cfg.EnvFile); err != nil {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.TokenSecret == "" {
		cfg.TokenSecret = os.Getenv("TOKEN_SECRET")
	}
	if cfg.TokenSecret == "" {
		return Config{}, errors.New("TOKEN_SECRET required")
	}

	var err error
	if cfg.TokenTTL, err = durationOrEnv(cfg.TokenTTL, "TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.QuestionTTL, err = durationOrEnv(cfg.QuestionTTL, "QUESTION_TTL", 7*24*time.Hour); err != nil {
		return Config{}, err
	}

	if enforce == "" {
		enforce = os.Getenv("ENFORCE_VOTING_WINDOW")
	}
	if enforce != "" {
		v, err := strconv.ParseBool(enforce)
		if err != nil {
			return Config{}, errors.New("invalid ENFORCE_VOTING_WINDOW value")
		}
		cfg.EnforceVotingWindow = v
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("LOG_LEVEL")
		if cfg.LogLevel == "" {
			cfg.LogLevel = "info"
		}
	}

	return cfg, nil
}

func durationOrEnv(flagValue time.Duration, key string, fallback time.Duration) (time.Duration, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return d, nil
}
