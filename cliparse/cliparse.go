package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseType   string
	SessionKeySalt string
	SessionTTL     time.Duration
	StrictFlow     bool
	Seed           int64
	LogLevel       slog.Level
	EnvFile        string
}

const defaultSQLiteURL = "file:stylist.db"

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var logLevel, ttl, strict string

	fs := flag.NewFlagSet("personal-stylist", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mysql)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionKeySalt, "session-salt", "", "Session key salt (prefer env)")

	// Behaviour
	fs.StringVar(&ttl, "session-ttl", "", "Idle time before a session expires, e.g. 30m")
	fs.StringVar(&strict, "strict-flow", "", "Only allow wizard transitions (true/false)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "Auto-fill random seed (0 = time based)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.EnvFile, "env", ".env", "Path to a .env file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Existing environment variables win over the file
	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	// Fall back to environment variables
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

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = defaultSQLiteURL
	}

	// Secrets - MUST be provided
	if cfg.SessionKeySalt == "" {
		cfg.SessionKeySalt = os.Getenv("SESSION_KEY_SALT")
	}
	if cfg.SessionKeySalt == "" {
		return Config{}, errors.New("SESSION_KEY_SALT required")
	}

	if ttl == "" {
		ttl = os.Getenv("SESSION_TTL")
	}
	cfg.SessionTTL = 30 * time.Minute
	if ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d < 0 {
			return Config{}, fmt.Errorf("invalid session TTL %q", ttl)
		}
		cfg.SessionTTL = d
	}

	if strict == "" {
		strict = os.Getenv("STRICT_FLOW")
	}
	if strict != "" {
		b, err := strconv.ParseBool(strict)
		if err != nil {
			return Config{}, fmt.Errorf("invalid strict flow value %q", strict)
		}
		cfg.StrictFlow = b
	}

	if cfg.Seed == 0 {
		if seedStr := os.Getenv("AUTOFILL_SEED"); seedStr != "" {
			seed, err := strconv.ParseInt(seedStr, 10, 64)
			if err != nil {
				return Config{}, errors.New("invalid AUTOFILL_SEED env variable")
			}
			cfg.Seed = seed
		}
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}
