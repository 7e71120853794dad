package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Environment string // "development", "production", "test"
	Debug       bool
	Secure      bool
	CORSOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SearchConfig selects and configures the catalog search backend.
// Backend "postgres" searches the local catalog store; "algolia" queries
// the hosted index over HTTP.
type SearchConfig struct {
	Backend      string
	AlgoliaAppID string
	AlgoliaKey   string
	AlgoliaIndex string
	QueryTimeout time.Duration
}

type RateLimitConfig struct {
	KitRequests int
	KitWindow   time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func Load() (*Config, error) {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:        getEnv("SERVER_HOST", "0.0.0.0"),
			Port:        getEnvInt("SERVER_PORT", 8080),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvBool("SERVER_DEBUG", false),
			Secure:      getEnvBool("SERVER_SECURE", false),
			CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "healthforge"),
			Password: getEnv("DB_PASSWORD", "healthforge"),
			DBName:   getEnv("DB_NAME", "healthforge"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Search: SearchConfig{
			Backend:      getEnv("SEARCH_BACKEND", "postgres"),
			AlgoliaAppID: getEnv("ALGOLIA_APP_ID", ""),
			AlgoliaKey:   getEnv("ALGOLIA_SEARCH_KEY", ""),
			AlgoliaIndex: getEnv("ALGOLIA_INDEX", "healthforge_items"),
			QueryTimeout: getEnvDuration("SEARCH_QUERY_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			KitRequests: getEnvInt("RATELIMIT_KIT_REQUESTS", 30),
			KitWindow:   getEnvDuration("RATELIMIT_KIT_WINDOW", time.Minute),
		},
	}

	if cfg.Search.Backend != "postgres" && cfg.Search.Backend != "algolia" {
		return nil, fmt.Errorf("unknown search backend %q", cfg.Search.Backend)
	}
	if cfg.Search.Backend == "algolia" && (cfg.Search.AlgoliaAppID == "" || cfg.Search.AlgoliaKey == "") {
		return nil, fmt.Errorf("algolia backend requires ALGOLIA_APP_ID and ALGOLIA_SEARCH_KEY")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
