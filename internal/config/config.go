package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration
	Port        string
}

func Load() Config {
	return Config{
		DatabaseURL: envOrDefault("DATABASE_URL", "travelapp.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      envDuration("JWT_TTL", 24*time.Hour),
		Port:        envOrDefault("PORT", "8080"),
	}
}

func envOrDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
