package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	DefaultEnvironment  = "development"
	DefaultHTTPAddr     = ":8080"
	DefaultTimeZone     = "Asia/Seoul"
	DefaultGeminiModel  = "gemini-2.0-flash"
	DefaultGuestChatURL = "https://open.kakao.com/o/gnHeHo7h"
	DefaultMemberChat   = "https://open.kakao.com/o/skS1in7h"
	DefaultWeeksCount   = 8
)

type Config struct {
	DBDSN         string `mapstructure:"DB_DSN"`
	Environment   string `mapstructure:"ENV"`
	HTTPAddr      string `mapstructure:"HTTP_ADDR"`
	TimeZone      string `mapstructure:"TIMEZONE"`
	TelegramToken string `mapstructure:"TELEGRAM_TOKEN"`
	AdminAPIToken string `mapstructure:"ADMIN_API_TOKEN"`
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	GuestChatURL  string `mapstructure:"GUEST_CHAT_URL"`
	MemberChatURL string `mapstructure:"MEMBER_CHAT_URL"`
	Migrations    bool   `mapstructure:"MIGRATIONS_ENABLED"`
	FontPath      string `mapstructure:"FONT_PATH"`
	WeeksCount    int    `mapstructure:"WEEKS_COUNT"`

	location *time.Location
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv собирает конфиг только из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		Environment:   getEnv("ENV", DefaultEnvironment),
		HTTPAddr:      getEnv("HTTP_ADDR", DefaultHTTPAddr),
		TimeZone:      getEnv("TIMEZONE", DefaultTimeZone),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		AdminAPIToken: os.Getenv("ADMIN_API_TOKEN"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GuestChatURL:  getEnv("GUEST_CHAT_URL", DefaultGuestChatURL),
		MemberChatURL: getEnv("MEMBER_CHAT_URL", DefaultMemberChat),
		FontPath:      os.Getenv("FONT_PATH"),
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	var err error
	if cfg.Migrations, err = getBool("MIGRATIONS_ENABLED", true); err != nil {
		return nil, err
	}
	if cfg.WeeksCount, err = getInt("WEEKS_COUNT", DefaultWeeksCount); err != nil {
		return nil, err
	}
	if cfg.WeeksCount <= 0 {
		return nil, fmt.Errorf("WEEKS_COUNT must be positive, got %d", cfg.WeeksCount)
	}

	cfg.location, err = time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load TIMEZONE %q: %w", cfg.TimeZone, err)
	}

	return cfg, nil
}

// Location часовой пояс клуба
func (c *Config) Location() *time.Location {
	return c.location
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// BotEnabled true если задан токен Telegram
func (c *Config) BotEnabled() bool {
	return c.TelegramToken != ""
}

// IsProduction окружение production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return b, nil
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
