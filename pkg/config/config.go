package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	State   StateConfig
	Locale  LocaleConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type SessionConfig struct {
	JWTSecret string
}

type StateConfig struct {
	Backend       string // file or redis
	FilePath      string // empty means the per-user default path
	RedisURL      string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

type LocaleConfig struct {
	Timezone string
}

func Load() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: getEnv("COURTBOOK_API_URL", "http://localhost:8080"),
			Timeout: getDuration("COURTBOOK_API_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			JWTSecret: getEnv("JWT_SECRET", "dev-only-secret-change-in-prod"),
		},
		State: StateConfig{
			Backend:       getEnv("STATE_BACKEND", "file"),
			FilePath:      getEnv("STATE_FILE", ""),
			RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getInt("REDIS_DB", 0),
			KeyPrefix:     getEnv("STATE_KEY_PREFIX", "courtbook"),
		},
		Locale: LocaleConfig{
			Timezone: getEnv("COURTBOOK_TIMEZONE", ""),
		},
	}
}

// Location resolves the configured timezone, falling back to the system
// local zone when unset or unknown. Court slots are wall-clock times at the
// venue, so the default assumes the client runs in the venue's zone.
func (l LocaleConfig) Location() *time.Location {
	if l.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
