package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	DatabaseURL         string
	JWTSecret           string
	FirebaseCredentials string
	DispatchWorkers     int
	DispatchTimeout     time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	dispatchWorkers := 32
	if w := os.Getenv("DISPATCH_WORKERS"); w != "" {
		if parsed, err := strconv.Atoi(w); err == nil && parsed > 0 {
			dispatchWorkers = parsed
		}
	}

	dispatchTimeout := 10 * time.Second
	if t := os.Getenv("DISPATCH_TIMEOUT"); t != "" {
		if parsed, err := time.ParseDuration(t); err == nil {
			dispatchTimeout = parsed
		}
	}

	return &Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=b4nkd port=5432 sslmode=disable"),
		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
		DispatchWorkers:     dispatchWorkers,
		DispatchTimeout:     dispatchTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
