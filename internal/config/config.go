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

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Dispatch Config
	FallbackEtaMinutes int `env:"FALLBACK_ETA_MINUTES" envDefault:"15"`
	NearestCandidates  int `env:"NEAREST_CANDIDATES" envDefault:"3"`

	// Fleet Simulator Config
	SimulatorEnabled  bool          `env:"SIMULATOR_ENABLED" envDefault:"true"`
	SimulatorInterval time.Duration `env:"SIMULATOR_INTERVAL" envDefault:"3s"`
	SimulatorMaxStep  float64       `env:"SIMULATOR_MAX_STEP" envDefault:"0.001"`
	ServiceAreaMinLat float64       `env:"SERVICE_AREA_MIN_LAT" envDefault:"26.82"`
	ServiceAreaMaxLat float64       `env:"SERVICE_AREA_MAX_LAT" envDefault:"26.98"`
	ServiceAreaMinLon float64       `env:"SERVICE_AREA_MIN_LON" envDefault:"75.72"`
	ServiceAreaMaxLon float64       `env:"SERVICE_AREA_MAX_LON" envDefault:"75.88"`

	// OTP Config
	OtpTTL time.Duration `env:"OTP_TTL" envDefault:"5m"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла.
// DATABASE_URL не обязателен: без него сервис работает на in-memory хранилище.
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		WebhookURL:         os.Getenv("WEBHOOK_URL"),
		WebhookSecret:      os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:     getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:  getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:   getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		FallbackEtaMinutes: getEnvAsInt("FALLBACK_ETA_MINUTES", 15),
		NearestCandidates:  getEnvAsInt("NEAREST_CANDIDATES", 3),
		SimulatorEnabled:   getEnvAsBool("SIMULATOR_ENABLED", true),
		SimulatorInterval:  getEnvAsDuration("SIMULATOR_INTERVAL", 3*time.Second),
		SimulatorMaxStep:   getEnvAsFloat("SIMULATOR_MAX_STEP", 0.001),
		ServiceAreaMinLat:  getEnvAsFloat("SERVICE_AREA_MIN_LAT", 26.82),
		ServiceAreaMaxLat:  getEnvAsFloat("SERVICE_AREA_MAX_LAT", 26.98),
		ServiceAreaMinLon:  getEnvAsFloat("SERVICE_AREA_MIN_LON", 75.72),
		ServiceAreaMaxLon:  getEnvAsFloat("SERVICE_AREA_MAX_LON", 75.88),
		OtpTTL:             getEnvAsDuration("OTP_TTL", 5*time.Minute),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	return cfg, nil
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

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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
