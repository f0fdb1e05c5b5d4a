package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	DataPath         string
	QuoteURL         string
	QuoteTimeout     time.Duration
	FallbackBTCPrice float64
	BTCAddress       string
	WhatsAppNumber   string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		DataPath:         getEnvOrDefault("DATA_PATH", "storefront.db"),
		QuoteURL:         getEnvOrDefault("QUOTE_URL", "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"),
		QuoteTimeout:     getDurationEnv("QUOTE_TIMEOUT", 5, time.Second),
		FallbackBTCPrice: getFloatEnv("FALLBACK_BTC_PRICE", 95000),
		BTCAddress:       getEnvOrDefault("BTC_ADDRESS", "1BjzXaypGt9knasWRHLeJ5M7BLEGESHhvG"),
		WhatsAppNumber:   getEnvOrDefault("WHATSAPP_NUMBER", "1234567890"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
