package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"sales/internal/core/application/usecases/queries"
	"sales/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	RedisAddr              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	DateRangeMode          queries.DateRangeMode
	StatsInterval          time.Duration
	LogLevel               string
}

// LoadConfig reads an optional .env file from the working directory and then
// the process environment. Variables already set in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return configFromEnv(os.Getenv)
}

func configFromEnv(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	mode, err := queries.ParseDateRangeMode(get("DATE_RANGE_MODE", string(queries.DateRangeLexical)))
	if err != nil {
		return Config{}, fmt.Errorf("DATE_RANGE_MODE: %w", err)
	}

	interval, err := time.ParseDuration(get("STATS_INTERVAL", jobs.DefaultStatsInterval.String()))
	if err != nil {
		return Config{}, fmt.Errorf("STATS_INTERVAL: %w", err)
	}
	if interval < time.Second {
		return Config{}, fmt.Errorf("STATS_INTERVAL: must be at least 1s, got %s", interval)
	}

	return Config{
		HTTPPort:               get("HTTP_PORT", "8080"),
		DBHost:                 get("DB_HOST", "localhost"),
		DBPort:                 get("DB_PORT", "5432"),
		DBUser:                 get("DB_USER", "postgres"),
		DBPassword:             get("DB_PASSWORD", "postgres"),
		DBName:                 get("DB_NAME", "sales"),
		DBSslMode:              get("DB_SSLMODE", "disable"),
		RedisAddr:              get("REDIS_ADDR", ""),
		KafkaHost:              get("KAFKA_HOST", ""),
		KafkaOrderChangedTopic: get("KAFKA_ORDER_CHANGED_TOPIC", "orders.changed"),
		DateRangeMode:          mode,
		StatsInterval:          interval,
		LogLevel:               get("LOG_LEVEL", "info"),
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// KafkaBrokers splits KafkaHost on commas. It is empty when Kafka is not configured.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
