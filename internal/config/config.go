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
	// EmergencyHospitalIDs - явный список больниц для оповещения, имеет приоритет над остальными правилами выбора
	EmergencyHospitalIDs []int64 `env:"EMERGENCY_HOSPITAL_IDS"`
	// DefaultHospitalID - одиночная больница по умолчанию, если явный список не задан
	DefaultHospitalID int64 `env:"DEFAULT_HOSPITAL_ID" envDefault:"0"`
	// FallbackLatitude/FallbackLongitude - координаты по умолчанию, если клиент прислал невалидные
	FallbackLatitude  float64 `env:"FALLBACK_LATITUDE" envDefault:"30.0618"`
	FallbackLongitude float64 `env:"FALLBACK_LONGITUDE" envDefault:"31.2186"`
	// DefaultViewRadiusKm - радиус видимости запросов для больницы, если не передан в запросе
	DefaultViewRadiusKm float64 `env:"DEFAULT_VIEW_RADIUS_KM" envDefault:"50"`
	// EmergencyFallbackNumber - номер экстренной службы, сообщаемый пользователю при отказе всех больниц
	EmergencyFallbackNumber string `env:"EMERGENCY_FALLBACK_NUMBER" envDefault:"123"`

	// Medical History Config
	MedicalHistoryURL     string        `env:"MEDICAL_HISTORY_URL"`
	MedicalHistoryTimeout time.Duration `env:"MEDICAL_HISTORY_TIMEOUT" envDefault:"3s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

	// API Keys for hospital-side authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:             os.Getenv("DATABASE_URL"),
		HTTPPort:                getEnv("HTTP_PORT", "8080"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		RedisAddr:               getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:               os.Getenv("REDIS_PASSWORD"),
		RedisDB:                 getEnvAsInt("REDIS_DB", 0),
		WebhookURL:              os.Getenv("WEBHOOK_URL"),
		WebhookSecret:           os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:          getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:       getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:        getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		DefaultHospitalID:       getEnvAsInt64("DEFAULT_HOSPITAL_ID", 0),
		FallbackLatitude:        getEnvAsFloat("FALLBACK_LATITUDE", 30.0618),
		FallbackLongitude:       getEnvAsFloat("FALLBACK_LONGITUDE", 31.2186),
		DefaultViewRadiusKm:     getEnvAsFloat("DEFAULT_VIEW_RADIUS_KM", 50),
		EmergencyFallbackNumber: getEnv("EMERGENCY_FALLBACK_NUMBER", "123"),
		MedicalHistoryURL:       os.Getenv("MEDICAL_HISTORY_URL"),
		MedicalHistoryTimeout:   getEnvAsDuration("MEDICAL_HISTORY_TIMEOUT", 3*time.Second),
		StatsTimeWindowMinutes:  getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
	}

	// Загрузка явного списка больниц для оповещения
	hospitalIDsStr := os.Getenv("EMERGENCY_HOSPITAL_IDS")
	if hospitalIDsStr != "" {
		ids, err := parseInt64List(hospitalIDsStr)
		if err != nil {
			return nil, fmt.Errorf("некорректный EMERGENCY_HOSPITAL_IDS: %w", err)
		}
		cfg.EmergencyHospitalIDs = ids
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
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

// getEnvAsInt64 возвращает значение переменной окружения как int64 или значение по умолчанию
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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

// parseInt64List разбирает строку вида "5,9,12" в слайс int64
func parseInt64List(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("не удалось разобрать id больницы %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
