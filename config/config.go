package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the settings of the host demo.
type Config struct {
	Env      string // development | production
	LogLevel string
	HTTPAddr string
	Serve    bool
}

// Load reads .env (if present) and populates a Config from environment variables.
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env is optional
	_ = godotenv.Load(files...)

	return &Config{
		Env:      Get("INJECTOR_ENV", "development"),
		LogLevel: Get("INJECTOR_LOG_LEVEL", "info"),
		HTTPAddr: Get("INJECTOR_HTTP_ADDR", ":8080"),
		Serve:    GetBool("INJECTOR_SERVE", false),
	}
}

// IsProduction reports whether Env is "production".
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// NewLogger builds a zap logger for the configured environment and level.
// An unparsable level falls back to info.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

// GetBool returns a bool env value, falling back to defaultVal when unset or invalid.
func GetBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}
