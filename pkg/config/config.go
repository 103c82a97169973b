// Package config loads service configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	clog "github.com/OnslaughtSnail/vitae/pkg/log"
)

// Config holds all runtime settings of the intake service.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// StoreBackend selects the session store: memory, redis or sqlite.
	StoreBackend string
	RedisAddr    string
	RedisPass    string
	RedisDB      int
	SQLitePath   string

	// SessionTTLMinutes is the sliding session expiry.
	SessionTTLMinutes int

	// Renderer selects prompt phrasing: template, anthropic or gemini.
	Renderer       string
	AnthropicKey   string
	AnthropicModel string
	GeminiKey      string
	GeminiModel    string

	// Language is the default session language code.
	Language string

	// FormPath overrides the embedded intake schema when set.
	FormPath string

	MaxSkills      int
	MaxCorrections int
	RetryAttempts  int

	Verbose bool
}

// Load reads configuration from the environment. A missing .env file is
// not an error.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		clog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		Addr: getEnv("INTAKE_ADDR", ":8080"),

		StoreBackend: getEnv("INTAKE_STORE", "memory"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:      getEnvInt("REDIS_DB", 0),
		SQLitePath:   getEnv("SQLITE_PATH", "vitae.db"),

		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 60),

		Renderer:       getEnv("INTAKE_RENDERER", "template"),
		AnthropicKey:   getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel: getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-5"),
		GeminiKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		Language: getEnv("INTAKE_LANG", "en"),

		FormPath: getEnv("INTAKE_FORM", ""),

		MaxSkills:      getEnvInt("INTAKE_MAX_SKILLS", 0),
		MaxCorrections: getEnvInt("INTAKE_MAX_CORRECTIONS", 0),
		RetryAttempts:  getEnvInt("INTAKE_RETRY_ATTEMPTS", 3),

		Verbose: getEnvBool("INTAKE_VERBOSE", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		clog.Warn("invalid integer in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		clog.Warn("invalid boolean in environment, using fallback", "key", key, "value", v)
		return fallback
	}
	return b
}
