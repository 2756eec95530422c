package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port                      string
	DrawingDurationSeconds    int
	DescribingDurationSeconds int
	MaxPlayersPerRoom         int
}

func Default() Config {
	return Config{
		Port:                      "8080",
		DrawingDurationSeconds:    60,
		DescribingDurationSeconds: 30,
		MaxPlayersPerRoom:         10,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	if raw := os.Getenv("DRAWING_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DrawingDurationSeconds = value
		}
	}
	if raw := os.Getenv("DESCRIBING_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DescribingDurationSeconds = value
		}
	}
	if raw := os.Getenv("MAX_PLAYERS_PER_ROOM"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.MaxPlayersPerRoom = value
		}
	}
	return cfg
}
