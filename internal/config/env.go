package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds process settings read from the environment. A .env file in the
// workspace root is loaded first; variables already set take precedence.
type Env struct {
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	LogLevel     string `envconfig:"DRE_LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"DRE_LOG_FORMAT" default:"text"`
	Addr         string `envconfig:"DRE_ADDR" default:":8080"`
	CacheSize    int    `envconfig:"DRE_CACHE_SIZE" default:"64"`
}

// LoadEnv reads <root>/.env when present and then the environment.
func LoadEnv(root string) (*Env, error) {
	if err := godotenv.Load(filepath.Join(root, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	if env.CacheSize < 0 {
		return nil, fmt.Errorf("DRE_CACHE_SIZE must not be negative, got %d", env.CacheSize)
	}
	return &env, nil
}
