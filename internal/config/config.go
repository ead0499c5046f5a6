package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
	StorageDriver      string // "postgres" or "memory"
}

type DatabaseConfig struct {
	Connection string
}

type AuthConfig struct {
	// PassphraseHash is a bcrypt hash. When unset, Passphrase is hashed at
	// startup so local setups can run with a plain value in .env.
	PassphraseHash string
	Passphrase     string
	JWTSecret      string
	TokenTTLHours  int
	MaxAttempts    int
	BlockMinutes   int
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	ReminderTo string
}

type ReminderConfig struct {
	ThresholdDays int
	IntervalHours int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "subtrack.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
			StorageDriver:      getEnv("STORAGE_DRIVER", "postgres"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			PassphraseHash: getEnv("AUTH_PASSPHRASE_HASH", ""),
			Passphrase:     getEnv("AUTH_PASSPHRASE", ""),
			JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenTTLHours:  getEnvAsInt("AUTH_TOKEN_TTL_HOURS", 24),
			MaxAttempts:    getEnvAsInt("AUTH_MAX_ATTEMPTS", 5),
			BlockMinutes:   getEnvAsInt("AUTH_BLOCK_MINUTES", 15),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "SubTrack"),
			ReminderTo: getEnv("REMINDER_EMAIL", ""),
		},
		Reminder: ReminderConfig{
			ThresholdDays: getEnvAsInt("REMINDER_THRESHOLD_DAYS", 3),
			IntervalHours: getEnvAsInt("REMINDER_INTERVAL_HOURS", 12),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
