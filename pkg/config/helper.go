package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// getRequiredEnv is a helper func to get a required variable or fatal log on error.
func getRequiredEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("FATAL: Required environment variable %q is not set", key)
	}
	return val
}

// getOptionalEnv is a helper func to get an optional variable with a default value.
func getOptionalEnv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

// parseIntDefault is a helper func to parse an integer variable with a default value.
func parseIntDefault(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Fatalf("FATAL: Invalid integer value for %q: %v", key, err)
	}
	return val
}

// parseBoolDefault is a helper func to parse a boolean variable with a default value.
func parseBoolDefault(key string, defaultValue bool) bool {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Fatalf("FATAL: Invalid boolean value for %q: %v", key, err)
	}
	return val
}

// parseDurationDefault is a helper func to parse a duration variable (e.g. "15m", "1h").
func parseDurationDefault(key string, defaultValue time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Fatalf("FATAL: Invalid duration value for %q (e.g. '15m'): %v", key, err)
	}
	return val
}
