package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	ActionLog ActionLogConfig
	Logging   LoggingConfig
	Admin     AdminConfig
	OIDC      OIDCConfig
	Notify    NotifyConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port               string
	UseHTTPS           bool
	BaseURL            string
	SessionLifetime    time.Duration
	CORSAllowedOrigins []string
	SubscriptionPrice  int
	ContentDir         string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path string
}

// ActionLogConfig holds the admin action journal configuration
type ActionLogConfig struct {
	Path string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// AdminConfig holds back-office access configuration
type AdminConfig struct {
	Username     string
	PasswordHash string
	Emails       []string
}

// OIDCConfig holds single sign-on configuration for administrators
type OIDCConfig struct {
	Domain       string
	ClientID     string
	ClientSecret string
	CallbackURL  string
}

// Enabled reports whether single sign-on is configured
func (c OIDCConfig) Enabled() bool {
	return c.Domain != "" && c.ClientID != ""
}

// NotifyConfig holds notification channel configuration
type NotifyConfig struct {
	SMTP     SMTPConfig
	Telegram TelegramConfig
	Kafka    KafkaConfig
}

// SMTPConfig holds mail relay configuration
type SMTPConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	UseTLS     bool
	AdminEmail string
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	Token       string
	AdminChatID int64
}

// KafkaConfig holds Kafka configuration
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Load loads configuration from .env and environment variables
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			UseHTTPS:           getEnvBool("USE_HTTPS", false),
			BaseURL:            strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:8080"), "/"),
			SessionLifetime:    getEnvDuration("SESSION_LIFETIME", 24*time.Hour),
			CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "")),
			SubscriptionPrice:  getEnvInt("SUBSCRIPTION_PRICE", 99),
			ContentDir:         getEnv("CONTENT_DIR", "static/videos"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "babycare.db"),
		},
		ActionLog: ActionLogConfig{
			Path: getEnv("ACTION_LOG_PATH", "admin_actions.log"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Emails:       splitList(getEnv("ADMIN_EMAILS", "")),
		},
		OIDC: OIDCConfig{
			Domain:       getEnv("OIDC_DOMAIN", ""),
			ClientID:     getEnv("OIDC_CLIENT_ID", ""),
			ClientSecret: getEnv("OIDC_CLIENT_SECRET", ""),
			CallbackURL:  getEnv("OIDC_CALLBACK_URL", ""),
		},
		Notify: NotifyConfig{
			SMTP: SMTPConfig{
				Host:       getEnv("SMTP_HOST", ""),
				Port:       getEnvInt("SMTP_PORT", 587),
				User:       getEnv("SMTP_USER", ""),
				Password:   getEnv("SMTP_PASS", ""),
				UseTLS:     getEnvBool("SMTP_USE_TLS", true),
				AdminEmail: getEnv("ADMIN_NOTIFICATION_EMAIL", ""),
			},
			Telegram: TelegramConfig{
				Token:       getEnv("TELEGRAM_BOT_TOKEN", ""),
				AdminChatID: int64(getEnvInt("TELEGRAM_ADMIN_CHAT_ID", 0)),
			},
			Kafka: KafkaConfig{
				Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
				Topic:   getEnv("KAFKA_NOTIFICATION_TOPIC", "subscription.requests"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Database.Path == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}

	if c.ActionLog.Path == "" {
		return fmt.Errorf("ACTION_LOG_PATH is required")
	}

	if c.Server.SubscriptionPrice <= 0 {
		return fmt.Errorf("SUBSCRIPTION_PRICE must be positive")
	}

	if c.OIDC.Enabled() && c.OIDC.CallbackURL == "" {
		return fmt.Errorf("OIDC_CALLBACK_URL is required when OIDC_DOMAIN is set")
	}

	if c.Notify.Telegram.Token != "" && c.Notify.Telegram.AdminChatID == 0 {
		return fmt.Errorf("TELEGRAM_ADMIN_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	return nil
}

// IsAdminEmail reports whether the email is on the administrator allowlist
func (c AdminConfig) IsAdminEmail(email string) bool {
	for _, e := range c.Emails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
