package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	MongoURI        string
	MongoDatabase   string // MONGODB_DB; falls back to the path segment of MongoURI
	PostgresURI     string
	RedisURI        string
	Port            string
	AllowedOrigins  []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL
	Host            string   // Raw HOST env (e.g. https://api.cinnamon.health)
	AllowedHost     string   // Hostname only for strict host check (production only)
	Environment     string   // ENV: production, development, etc.
	DefaultPageSize int
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	host := getEnv("HOST", "http://localhost:8080")

	// AllowedHost is only set in production; host check is skipped in development
	var allowedHost string
	if env == "production" {
		allowedHost = hostname(host)
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		if u := strings.TrimSpace(getEnv("FRONTEND_URL", "http://localhost:3000")); u != "" {
			allowedOrigins = append(allowedOrigins, u)
		}
	}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}

	pageSize, err := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "20"))
	if err != nil || pageSize <= 0 {
		pageSize = 20
	}

	return &Config{
		MongoURI:        getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/cinnamon")),
		MongoDatabase:   getEnv("MONGODB_DB", ""),
		PostgresURI:     getEnv("POSTGRES_URI", "postgres://localhost:5432/cinnamon?sslmode=disable"),
		RedisURI:        getEnv("REDIS_URI", "redis://localhost:6379/0"),
		Host:            host,
		AllowedHost:     allowedHost,
		Environment:     env,
		Port:            getEnv("PORT", "8080"),
		AllowedOrigins:  allowedOrigins,
		DefaultPageSize: pageSize,
	}
}

// hostname strips scheme, path and port from a HOST value.
func hostname(host string) string {
	h := strings.TrimSpace(host)
	for _, prefix := range []string{"https://", "http://"} {
		h = strings.TrimPrefix(h, prefix)
	}
	if idx := strings.Index(h, "/"); idx != -1 {
		h = h[:idx]
	}
	if idx := strings.Index(h, ":"); idx != -1 {
		h = h[:idx]
	}
	return strings.TrimSpace(h)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" && !containsOrigin(out, part) {
			out = append(out, part)
		}
	}
	return out
}

func containsOrigin(list []string, o string) bool {
	o = strings.TrimSpace(strings.ToLower(o))
	for _, v := range list {
		if strings.TrimSpace(strings.ToLower(v)) == o {
			return true
		}
	}
	return false
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return strings.ToLower(strings.TrimSpace(c.Environment)) == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
