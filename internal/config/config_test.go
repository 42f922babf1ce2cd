package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "file:playtrack.db", cfg.DBPath)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 1, cfg.SinkWorkers)
	assert.Equal(t, 64, cfg.SinkQueueSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "file:test.db")
	t.Setenv("SINK_WORKER_COUNT", "3")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "file:test.db", cfg.DBPath)
	assert.Equal(t, 3, cfg.SinkWorkers)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("SINK_QUEUE_SIZE", "not-a-number")

	cfg := Load()

	assert.Equal(t, 64, cfg.SinkQueueSize)
}

func TestValidate(t *testing.T) {
	valid := Config{Addr: ":8080", DBPath: "file:x.db", SinkWorkers: 1, SinkQueueSize: 8}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty addr", func(c *Config) { c.Addr = "" }},
		{"empty db path", func(c *Config) { c.DBPath = "" }},
		{"zero workers", func(c *Config) { c.SinkWorkers = 0 }},
		{"zero queue", func(c *Config) { c.SinkQueueSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
