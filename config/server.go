package config

import "os"

// Port returns the HTTP listen address, e.g. ":8080".
func Port() string {
	return ":" + getEnv("PORT", "8080")
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
