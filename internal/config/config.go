package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string
	RedisURL      string
	Platform      string
	Mode          string
	SearchKeyword string
	Category      string
	MaxProducts   int
	Headless      bool
	MetricsPort   string
	ScreenshotDir string
}

func Load() *Config {
	_ = godotenv.Load()
	return &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		Platform:      getEnv("PLATFORM", "shopee"),
		Mode:          getEnv("MODE", "bestsellers"),
		SearchKeyword: getEnv("SEARCH_KEYWORD", ""),
		Category:      getEnv("CATEGORY", ""),
		MaxProducts:   getEnvInt("MAX_PRODUCTS", 20),
		Headless:      getEnvBool("HEADLESS", true),
		MetricsPort:   getEnv("METRICS_PORT", ""),
		ScreenshotDir: getEnv("SCREENSHOT_DIR", ""),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return d
	}
	return n
}

func getEnvBool(k string, d bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return d
	}
	return b
}
