package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	StateBackend   string // sqlite | redis
	DBDSN          string
	RedisURL       string
	StateTTL       time.Duration
	LogLevel       string
	LogFile        string
	APITestLatency time.Duration
	TraceStdout    bool
	ResumeURL      string
	TemplateReload bool
	RateLimit      int // requests per minute per IP
}

const defaultResumeURL = "https://drive.google.com/uc?export=download&id=1U9ZiZ3G5G3qtoqN9E5g2td5Iz8DmfuPX"

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("[config] no .env file (%v), using process environment", err)
	}

	cfg := Config{
		Port:           env("PORT", "8080"),
		StateBackend:   strings.ToLower(env("STATE_BACKEND", "sqlite")),
		DBDSN:          env("DB_DSN", ":memory:"), // scopes are ephemeral by default
		RedisURL:       env("REDIS_URL", "redis://localhost:6379/0"),
		StateTTL:       duration("STATE_TTL", 30*time.Minute),
		LogLevel:       env("LOG_LEVEL", "info"),
		LogFile:        os.Getenv("LOG_FILE"),
		APITestLatency: duration("API_TEST_LATENCY", 1500*time.Millisecond),
		TraceStdout:    boolean("TRACE_STDOUT", false),
		ResumeURL:      env("RESUME_URL", defaultResumeURL),
		TemplateReload: boolean("TEMPLATE_RELOAD", false),
		RateLimit:      integer("RATE_LIMIT", 120),
	}
	if cfg.StateBackend != "sqlite" && cfg.StateBackend != "redis" {
		log.Printf("[config] unknown STATE_BACKEND=%q, falling back to sqlite", cfg.StateBackend)
		cfg.StateBackend = "sqlite"
	}

	log.Printf("[config] PORT=%s STATE_BACKEND=%s DB_DSN=%s STATE_TTL=%s LOG_LEVEL=%s LOG_FILE=%s API_TEST_LATENCY=%s TRACE_STDOUT=%t RATE_LIMIT=%d",
		cfg.Port, cfg.StateBackend, cfg.DBDSN, cfg.StateTTL, cfg.LogLevel, cfg.LogFile, cfg.APITestLatency, cfg.TraceStdout, cfg.RateLimit)
	return cfg
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func integer(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func boolean(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
