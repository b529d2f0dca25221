// Package config loads the application configuration from environment variables.
package config

import "os"

// Config holds all application configuration.
type Config struct {
	Port      string // HTTP listen port
	JWTSecret string // JWT signing secret
}

// Load reads the configuration from environment variables with the same
// defaults the service has always shipped with. Set JWT_SECRET in production;
// the fallback exists only so a bare checkout runs.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "3000"),
		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
	}
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
