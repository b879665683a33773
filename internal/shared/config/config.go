package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultGeminiModel   = "gemini-2.5-flash-preview-05-20"
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string

	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	GeminiBackoffBase time.Duration
	GeminiTimeout     time.Duration

	SessionTTL     time.Duration
	ChatRatePerMin float64
	ChatRateBurst  int

	LogJSON  bool
	LogDebug bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	env := normalizeEnv(getEnv("ENV", "dev"))
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		log.Printf("GEMINI_API_KEY is empty; chat replies will report a missing key")
	}

	return Config{
		Port:              getEnv("PORT", "8080"),
		Env:               env,
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		GeminiAPIKey:      apiKey,
		GeminiModel:       getEnv("GEMINI_MODEL", defaultGeminiModel),
		GeminiBaseURL:     strings.TrimRight(getEnv("GEMINI_BASE_URL", defaultGeminiBaseURL), "/"),
		GeminiBackoffBase: getDuration("GEMINI_BACKOFF_BASE", time.Second),
		GeminiTimeout:     getDuration("GEMINI_TIMEOUT", 60*time.Second),
		SessionTTL:        getDuration("SESSION_TTL", 12*time.Hour),
		ChatRatePerMin:    getFloat("CHAT_RATE_PER_MIN", 20),
		ChatRateBurst:     getInt("CHAT_RATE_BURST", 5),
		LogJSON:           getBool("LOG_JSON", true),
		LogDebug:          getBool("LOG_DEBUG", false),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("config %s invalid duration %q, using %s", key, raw, def)
		return def
	}
	return d
}

func getInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config %s invalid int %q, using %d", key, raw, def)
		return def
	}
	return v
}

func getFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config %s invalid number %q, using %g", key, raw, def)
		return def
	}
	return v
}

func getBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
