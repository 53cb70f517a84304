package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	applog "fishledger/internal/log"
)

type Config struct {
	// Storage
	LedgerFile   string
	DataBackend  string
	SQLiteDBPath string

	// Logging
	LogLevel string

	// AMQP ledger events (disabled when AMQPURL is empty)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

// Defaults reproduce the behavior of a bare run with no environment.
const (
	DefaultLedgerFile   = "fishing_logs.json"
	DefaultDataBackend  = "json"
	DefaultSQLiteDBPath = "./data/fishledger.db"
	DefaultLogLevel     = "warn"
	DefaultAMQPExchange = "fishledger"
	DefaultAMQPQueue    = "ledger_events"
)

var validBackends = []string{"json", "sqlite", "memory"}

func Load() *Config {
	return &Config{
		LedgerFile:   getEnv("LEDGER_FILE", DefaultLedgerFile),
		DataBackend:  getEnv("DATA_BACKEND", DefaultDataBackend),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", DefaultSQLiteDBPath),

		LogLevel: getEnv("LOG_LEVEL", DefaultLogLevel),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", DefaultAMQPExchange),
		AMQPQueue:    getEnv("AMQP_QUEUE", DefaultAMQPQueue),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	isValidBackend := false
	for _, backend := range validBackends {
		if c.DataBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of %v", c.DataBackend, validBackends))
	}

	switch c.DataBackend {
	case "json":
		if strings.TrimSpace(c.LedgerFile) == "" {
			errors = append(errors, "ledger file path cannot be empty when using json backend")
		} else if info, err := os.Stat(c.LedgerFile); err == nil && info.IsDir() {
			errors = append(errors, fmt.Sprintf("ledger file '%s' is a directory", c.LedgerFile))
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	if _, err := applog.ParseLevel(c.LogLevel); err != nil {
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
