package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken string
	StoragePath   string
	CatalogPath   string
	LogMode       string
	LoadMoreDelay time.Duration
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		StoragePath:   "data/ecoswap.db",
		LogMode:       "development",
		LoadMoreDelay: time.Second, // Default qiymat
	}

	if path := os.Getenv("STORAGE_PATH"); path != "" {
		config.StoragePath = path
	}

	if mode := os.Getenv("LOG_MODE"); mode != "" {
		config.LogMode = mode
	}

	if rawDelay := os.Getenv("LOAD_MORE_DELAY"); rawDelay != "" {
		parsed, err := time.ParseDuration(rawDelay)
		if err != nil {
			return nil, fmt.Errorf("LOAD_MORE_DELAY noto'g'ri formatda: %v", err)
		}
		if parsed < 0 {
			return nil, fmt.Errorf("LOAD_MORE_DELAY manfiy bo'lmasligi kerak: %s", rawDelay)
		}
		config.LoadMoreDelay = parsed
	}

	return config, nil
}

// RequireTelegram bot uchun token borligini tekshirish
func (c *Config) RequireTelegram() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}
	return nil
}
