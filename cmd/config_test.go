package cmd

import (
	"testing"
	"time"

	"sales/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := configFromEnv(envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "disable", cfg.DBSslMode)
	assert.Equal(t, "orders.changed", cfg.KafkaOrderChangedTopic)
	assert.Equal(t, queries.DateRangeLexical, cfg.DateRangeMode)
	assert.Equal(t, 30*time.Second, cfg.StatsInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.KafkaBrokers())
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg, err := configFromEnv(envOf(map[string]string{
		"HTTP_PORT":       "9090",
		"DB_HOST":         "db",
		"REDIS_ADDR":      "redis:6379",
		"KAFKA_HOST":      "k1:9092, k2:9092,",
		"DATE_RANGE_MODE": "Calendar",
		"STATS_INTERVAL":  "5s",
	}))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
	assert.Equal(t, queries.DateRangeCalendar, cfg.DateRangeMode)
	assert.Equal(t, 5*time.Second, cfg.StatsInterval)
	assert.Contains(t, cfg.DSN(), "host=db")
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown date range mode": {"DATE_RANGE_MODE": "fuzzy"},
		"unparsable interval":     {"STATS_INTERVAL": "soon"},
		"interval too short":      {"STATS_INTERVAL": "10ms"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := configFromEnv(envOf(env))
			require.Error(t, err)
		})
	}
}
