package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port              string
	APIBaseURL        string
	SessionTTLMinutes int
	AllowedOrigin     string
	ScreenTTLMinutes  int
}

// Load membaca konfigurasi dari environment. APIBaseURL wajib diisi: alamat
// backend berbeda per lingkungan dan tidak boleh di-hardcode.
func Load() (Config, error) {
	sessionTTL, err := strconv.Atoi(getEnv("SESSION_TTL_MINUTES", "480"))
	if err != nil || sessionTTL < 1 {
		sessionTTL = 480
	}
	screenTTL, err := strconv.Atoi(getEnv("SCREEN_TTL_MINUTES", "120"))
	if err != nil || screenTTL < 1 {
		screenTTL = 120
	}

	cfg := Config{
		Port:              getEnv("PORT", "3000"),
		APIBaseURL:        strings.TrimRight(strings.TrimSpace(os.Getenv("API_BASE_URL")), "/"),
		SessionTTLMinutes: sessionTTL,
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", ""),
		ScreenTTLMinutes:  screenTTL,
	}

	if cfg.APIBaseURL == "" {
		return cfg, fmt.Errorf("API_BASE_URL is required")
	}
	return cfg, nil
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
