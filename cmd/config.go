package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"freight/internal/jobs"
	"freight/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	ActivityStoreMemory   = "memory"
	ActivityStorePostgres = "postgres"
)

type Config struct {
	HTTPPort string
	LogLevel string

	ActivityStore             string
	ActivityCapacity          int
	ActivityRetention         time.Duration
	ActivityRetentionSchedule string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}

// LoadConfig reads the configuration from the environment. Variables from
// envFile are loaded first when the file exists; variables already set in
// the process environment win.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	config := Config{
		HTTPPort:                  envOrDefault("HTTP_PORT", "8080"),
		LogLevel:                  envOrDefault("LOG_LEVEL", "info"),
		ActivityStore:             envOrDefault("ACTIVITY_STORE", ActivityStoreMemory),
		ActivityRetentionSchedule: envOrDefault("ACTIVITY_RETENTION_SCHEDULE", jobs.DefaultRetentionSchedule),
		DBHost:                    envOrDefault("DB_HOST", "localhost"),
		DBPort:                    envOrDefault("DB_PORT", "5432"),
		DBUser:                    os.Getenv("DB_USER"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    envOrDefault("DB_NAME", "freight"),
		DBSslMode:                 envOrDefault("DB_SSLMODE", "disable"),
	}

	var capacityErr, retentionErr, storeErr error
	config.ActivityCapacity, capacityErr = parseCapacity(envOrDefault("ACTIVITY_CAPACITY", "0"))
	config.ActivityRetention, retentionErr = parseRetention(envOrDefault("ACTIVITY_RETENTION", "24h"))
	if config.ActivityStore != ActivityStoreMemory && config.ActivityStore != ActivityStorePostgres {
		storeErr = errs.NewValueIsInvalidError("ACTIVITY_STORE")
	}

	if err := errors.Join(capacityErr, retentionErr, storeErr); err != nil {
		return Config{}, err
	}

	return config, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOrDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func parseCapacity(raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("ACTIVITY_CAPACITY", err)
	}
	if n < 0 {
		return 0, errs.NewValueIsOutOfRangeError("ACTIVITY_CAPACITY", n, 0, "unbounded")
	}
	return n, nil
}

func parseRetention(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("ACTIVITY_RETENTION", err)
	}
	if d <= 0 {
		return 0, errs.NewValueIsInvalidError("ACTIVITY_RETENTION")
	}
	return d, nil
}
