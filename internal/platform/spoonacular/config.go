// Package spoonacular provides a client for the Spoonacular recipe API.
package spoonacular

import (
	"os"
	"time"
)

// Config holds configuration for the Spoonacular API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.spoonacular.com/recipes")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Spoonacular configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("SPOONACULAR_BASE_URL")
	if base == "" {
		base = "https://api.spoonacular.com/recipes"
	}
	return Config{
		APIKey:  os.Getenv("SPOONACULAR_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
