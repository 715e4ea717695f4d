package config

import (
	"os"
)

// Config holds environment-based settings.
type Config struct {
	Environment     string
	ServerAddress   string
	RedisAddress    string
	RedisUsername   string
	RedisPassword   string
	AladhanBaseURL  string
	OverpassBaseURL string
	DefaultCity     string
	DefaultCountry  string
}

// Load reads configuration from environment variables. Nothing is
// hard-required: the service runs against the public providers with
// caching disabled when redis is not configured.
func Load() (*Config, error) {
	addr := os.Getenv("SERVER_ADDRESS")
	if addr == "" {
		addr = ":8080"
	}
	country := os.Getenv("DEFAULT_COUNTRY")
	if country == "" {
		country = "Canada"
	}
	return &Config{
		Environment:     os.Getenv("APP_ENV"),
		ServerAddress:   addr,
		RedisAddress:    os.Getenv("REDIS_ADDRESS"),
		RedisUsername:   os.Getenv("REDIS_USERNAME"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		AladhanBaseURL:  os.Getenv("ALADHAN_BASE_URL"),
		OverpassBaseURL: os.Getenv("OVERPASS_BASE_URL"),
		DefaultCity:     os.Getenv("DEFAULT_CITY"),
		DefaultCountry:  country,
	}, nil
}
