package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// SessionBackendMemory keeps sessions in the process
	SessionBackendMemory = "memory"
	// SessionBackendRedis keeps sessions in redis, shared across processes
	SessionBackendRedis = "redis"
)

// SessionConfig holds the session store parameters
type SessionConfig struct {
	Backend   string
	TTL       time.Duration
	RedisAddr string
	RedisDB   int
}

// LoadSessionConfig loads session configuration from environment
// variables, defaulting to an in-process store with a 24 hour
// time-to-live.
func LoadSessionConfig() *SessionConfig {
	cfg := &SessionConfig{
		Backend:   SessionBackendMemory,
		TTL:       24 * time.Hour,
		RedisAddr: "localhost:6379",
	}

	if backend := os.Getenv("SESSION_BACKEND"); backend != "" {
		cfg.Backend = backend
	}
	if hoursStr := os.Getenv("SESSION_TTL_HOURS"); hoursStr != "" {
		if hours, err := strconv.Atoi(hoursStr); err == nil && hours > 0 {
			cfg.TTL = time.Duration(hours) * time.Hour
		}
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.RedisAddr = addr
	}
	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			cfg.RedisDB = db
		}
	}

	return cfg
}
