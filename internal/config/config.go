package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Database
	EnableDatabase bool
	DBDriver       string
	SQLitePath     string
	SeedDemo       bool
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DatabaseURL    string

	// Redis
	EnableRedis bool
	RedisURL    string

	// Server
	Port        string
	Environment string
	LogLevel    string

	// CORS
	CORSOrigins []string

	// Rate Limiting
	RateLimitRequests int
	RateLimitWindow   int
	RateLimitBurst    int
	RenderRateLimit   int

	// Features
	EnableCache        bool
	EnableMetrics      bool
	CacheWarmupEnabled bool

	// Rendering
	DefaultTemplate   string
	PresetsFile       string
	ThumbnailScale    float64
	KitCacheTTLSecond int

	// Background jobs
	SchedulerWorkers     int
	PresetReloadInterval int
	KitRefreshInterval   int

	// Site Meta
	SiteName string
	SiteURL  string
}

func New() *Config {
	c := &Config{
		// Database
		EnableDatabase: getEnvAsBool("ENABLE_DATABASE", true),
		DBDriver:       strings.ToLower(strings.TrimSpace(getEnv("DB_DRIVER", "postgres"))),
		SQLitePath:     getEnv("SQLITE_PATH", "./data/glowfolio.db"),
		SeedDemo:       getEnvAsBool("SEED_DEMO_PROFILE", false),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "glowfolio"),
		DBPassword:     getEnv("DB_PASSWORD", "glowfolio"),
		DBName:         getEnv("DB_NAME", "glowfolio"),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),

		// Redis
		EnableRedis: getEnvAsBool("ENABLE_REDIS", true),
		RedisURL:    getEnv("REDIS_URL", "localhost:6379"),

		// Server
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "debug"),

		// CORS
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080")),

		// Rate Limiting
		RateLimitRequests: getEnvAsInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   getEnvAsInt("RATE_LIMIT_WINDOW", 60),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 20),
		RenderRateLimit:   getEnvAsInt("RENDER_RATE_LIMIT_REQUESTS", 30),

		// Features
		EnableCache:        getEnvAsBool("ENABLE_CACHE", true),
		EnableMetrics:      getEnvAsBool("ENABLE_METRICS", true),
		CacheWarmupEnabled: getEnvAsBool("CACHE_WARMUP_ENABLED", true),

		// Rendering
		DefaultTemplate:   strings.ToLower(strings.TrimSpace(getEnv("DEFAULT_TEMPLATE", "default"))),
		PresetsFile:       getEnv("PRESETS_FILE", "./data/presets.json"),
		ThumbnailScale:    getEnvAsFloat("THUMBNAIL_SCALE", 0.25),
		KitCacheTTLSecond: getEnvAsInt("KIT_CACHE_TTL_SECONDS", 300),

		// Background jobs
		SchedulerWorkers:     getEnvAsInt("SCHEDULER_WORKERS", 2),
		PresetReloadInterval: getEnvAsInt("PRESET_RELOAD_INTERVAL_SECONDS", 0),
		KitRefreshInterval:   getEnvAsInt("KIT_REFRESH_INTERVAL_SECONDS", 0),

		// Site Meta
		SiteName: getEnv("SITE_NAME", "Glowfolio"),
		SiteURL:  getEnv("SITE_URL", "http://localhost:8080"),
	}

	if c.ThumbnailScale <= 0 || c.ThumbnailScale > 1 {
		c.ThumbnailScale = 0.25
	}

	if url := getEnv("DATABASE_URL", ""); url != "" {
		c.DatabaseURL = url
	} else {
		c.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
		)
	}

	// The cache needs a redis connection.
	if !c.EnableRedis {
		c.EnableCache = false
	}
	if !c.EnableCache {
		c.CacheWarmupEnabled = false
		c.KitRefreshInterval = 0
	}

	return c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	switch strings.ToLower(strings.TrimSpace(valueStr)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
