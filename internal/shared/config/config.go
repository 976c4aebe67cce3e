package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	// JWTSecret is the single optional credential. Empty means unauthenticated pass-through.
	JWTSecret       string
	AnalysisDelay   time.Duration
	GenerationDelay time.Duration
	// AnalysisSeed pins missing-keyword sampling when set.
	AnalysisSeed   *uint64
	ExtractMode    string
	MaxUploadBytes int64
	RateLimitRPS   float64
	RateLimitBurst int
	LogLevel       string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		JWTSecret:       strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AnalysisDelay:   getDuration("ANALYSIS_DELAY", 0),
		GenerationDelay: getDuration("GENERATION_DELAY", 0),
		AnalysisSeed:    getSeed("ANALYSIS_SEED"),
		ExtractMode:     normalizeExtractMode(getEnv("EXTRACT_MODE", "placeholder")),
		MaxUploadBytes:  getInt64("MAX_UPLOAD_BYTES", 10<<20),
		RateLimitRPS:    getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:  int(getInt64("RATE_LIMIT_BURST", 10)),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

// AuthEnabled reports whether bearer tokens are required.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
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
	if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
		return d
	}
	// Bare numbers are milliseconds.
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	log.Printf("config: invalid %s=%q, using %s", key, raw, def)
	return def
}

func getInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, using %d", key, raw, def)
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
		log.Printf("config: invalid %s=%q, using %g", key, raw, def)
		return def
	}
	return v
}

func getSeed(key string) *uint64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		log.Printf("config: invalid %s=%q, sampling stays random", key, raw)
		return nil
	}
	return &v
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

func normalizeExtractMode(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "extract":
		return "extract"
	default:
		return "placeholder"
	}
}
