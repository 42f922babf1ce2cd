package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	DBPath        string
	LogLevel      string
	SinkWorkers   int
	SinkQueueSize int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		DBPath:        envOr("DB_PATH", "file:playtrack.db"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		SinkWorkers:   envIntOr("SINK_WORKER_COUNT", 1),
		SinkQueueSize: envIntOr("SINK_QUEUE_SIZE", 64),
	}
}

// Validate reports a configuration error before the server starts
// instead of failing on the first request.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path must not be empty")
	}
	if c.SinkWorkers < 1 {
		return fmt.Errorf("sink worker count must be at least 1, got %d", c.SinkWorkers)
	}
	if c.SinkQueueSize < 1 {
		return fmt.Errorf("sink queue size must be at least 1, got %d", c.SinkQueueSize)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
