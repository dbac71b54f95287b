package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the process-level knobs read from the environment.
type Settings struct {
	LogLevel    string
	LogFormat   string
	WindowScale int
	TuningFile  string
	AssetDir    string
}

// Load reads an optional .env file and then the environment.
// A missing .env file is not an error.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Settings{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		WindowScale: getEnvInt("WINDOW_SCALE", 2),
		TuningFile:  getEnv("TUNING_FILE", ""),
		AssetDir:    getEnv("ASSET_DIR", "assets"),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}
