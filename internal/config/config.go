package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv      string `env:"APP_ENV" envDefault:"production"`

	// Redis Config
	RedisAddr string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Auth Config
	JWTSecret string `env:"JWT_SECRET"`

	// Twilio / SMS Config
	TwilioAccountSID  string        `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string        `env:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string        `env:"TWILIO_PHONE_NUMBER"`
	TwilioBaseURL     string        `env:"TWILIO_BASE_URL" envDefault:"https://api.twilio.com"`
	SMSTimeout        time.Duration `env:"SMS_TIMEOUT" envDefault:"5s"`

	// Dispatch Config
	DispatchRadiusMeters float64 `env:"DISPATCH_RADIUS_METERS" envDefault:"50000"`
	DispatchLimit        int     `env:"DISPATCH_LIMIT" envDefault:"5"`
	SearchMaxLimit       int     `env:"SEARCH_MAX_LIMIT" envDefault:"50"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Rate limit для идентификации
	IdentifyRateLimit float64 `env:"IDENTIFY_RATE_LIMIT" envDefault:"5"`
	IdentifyRateBurst int     `env:"IDENTIFY_RATE_BURST" envDefault:"10"`

	// Rate limit для экстренных вызовов; 0 отключает ограничение
	EmergencyRateLimit float64 `env:"EMERGENCY_RATE_LIMIT" envDefault:"1"`
	EmergencyRateBurst int     `env:"EMERGENCY_RATE_BURST" envDefault:"30"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		HTTPPort:             getEnv("HTTP_PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		AppEnv:               strings.ToLower(getEnv("APP_ENV", "production")),
		RedisAddr:            getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:            os.Getenv("REDIS_PASSWORD"),
		RedisDB:              getEnvAsInt("REDIS_DB", 0),
		CacheTTL:             getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		TwilioAccountSID:     strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID")),
		TwilioAuthToken:      strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN")),
		TwilioPhoneNumber:    strings.TrimSpace(os.Getenv("TWILIO_PHONE_NUMBER")),
		TwilioBaseURL:        getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		SMSTimeout:           getEnvAsDuration("SMS_TIMEOUT", 5*time.Second),
		DispatchRadiusMeters: getEnvAsFloat("DISPATCH_RADIUS_METERS", 50000),
		DispatchLimit:        getEnvAsInt("DISPATCH_LIMIT", 5),
		SearchMaxLimit:       getEnvAsInt("SEARCH_MAX_LIMIT", 50),
		WebhookURL:           os.Getenv("WEBHOOK_URL"),
		WebhookSecret:        os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:       getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:    getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:     getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		IdentifyRateLimit:    getEnvAsFloat("IDENTIFY_RATE_LIMIT", 5),
		IdentifyRateBurst:    getEnvAsInt("IDENTIFY_RATE_BURST", 10),
		EmergencyRateLimit:   getEnvAsFloat("EMERGENCY_RATE_LIMIT", 1),
		EmergencyRateBurst:   getEnvAsInt("EMERGENCY_RATE_BURST", 30),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	if cfg.DispatchLimit < 1 {
		cfg.DispatchLimit = 5
	}
	if cfg.SearchMaxLimit < cfg.DispatchLimit {
		cfg.SearchMaxLimit = cfg.DispatchLimit
	}

	return cfg, nil
}

// IsDevelopment сообщает, запущено ли приложение в режиме разработки
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
