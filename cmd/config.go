package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort                  string
	DBHost                    string
	DBPort                    string
	DBUser                    string
	DBPassword                string
	DBName                    string
	DBSslMode                 string
	JWTSecret                 string
	PaymentWebhookSecret      string
	NotificationRetention     time.Duration
	NotificationPurgeSchedule string
}

var ErrSecretIsMissing = errors.New("secret is missing")

// LoadConfig reads the configuration from the environment, after loading the
// optional env file.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	retention, err := time.ParseDuration(getEnv("NOTIFICATION_RETENTION", "720h"))
	if err != nil {
		return Config{}, fmt.Errorf("NOTIFICATION_RETENTION: %w", err)
	}

	config := Config{
		HTTPPort:                  getEnv("HTTP_PORT", "8080"),
		DBHost:                    getEnv("DB_HOST", "localhost"),
		DBPort:                    getEnv("DB_PORT", "5432"),
		DBUser:                    getEnv("DB_USER", "postgres"),
		DBPassword:                getEnv("DB_PASSWORD", ""),
		DBName:                    getEnv("DB_NAME", "shasanseva"),
		DBSslMode:                 getEnv("DB_SSLMODE", "disable"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		PaymentWebhookSecret:      os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		NotificationRetention:     retention,
		NotificationPurgeSchedule: getEnv("NOTIFICATION_PURGE_SCHEDULE", "0 0 3 * * *"),
	}

	if config.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET: %w", ErrSecretIsMissing)
	}
	if config.PaymentWebhookSecret == "" {
		return Config{}, fmt.Errorf("PAYMENT_WEBHOOK_SECRET: %w", ErrSecretIsMissing)
	}

	return config, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
