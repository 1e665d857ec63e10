package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// history backends
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// Config holds all application configuration
type Config struct {
	Env             string `envconfig:"APP_ENV" default:"development"`
	Port            int    `envconfig:"PORT" default:"5000"`
	PortSearchLimit int    `envconfig:"PORT_SEARCH_LIMIT" default:"0"`
	Groq            GroqConfig
	History         HistoryConfig
	Redis           RedisConfig
	DB              DBConfig
	Mongo           MongoConfig
	Limiter         RateLimiterConfig
	CORS            CORSConfig
	Upload          UploadConfig
}

// Groq AI configuration
type GroqConfig struct {
	APIKey      string        `envconfig:"GROQ_API_KEY" required:"true"`
	Model       string        `envconfig:"GROQ_MODEL" default:"llama-3.1-8b-instant"`
	BaseURL     string        `envconfig:"GROQ_BASE_URL" default:"https://api.groq.com/openai/v1"`
	Timeout     time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
	PromptsFile string        `envconfig:"PROMPTS_FILE"`
}

// history storage selection
type HistoryConfig struct {
	Backend string `envconfig:"HISTORY_BACKEND" default:"memory"`
}

// redis configuration, used by the redis history backend
type RedisConfig struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	HistoryTTL time.Duration `envconfig:"REDIS_HISTORY_TTL" default:"0"`
}

// database configuration, used by the postgres history backend
type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
}

// mongo configuration, used by the mongo history backend
type MongoConfig struct {
	URI      string `envconfig:"MONGODB_URI"`
	Database string `envconfig:"MONGODB_DATABASE" default:"mentorme"`
}

// rate limiting configuration
type RateLimiterConfig struct {
	RPS     float64 `envconfig:"RATE_LIMIT_RPS" default:"5"`
	Burst   int     `envconfig:"RATE_LIMIT_BURST" default:"10"`
	Enabled bool    `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"*"`
}

// upload configuration
type UploadConfig struct {
	MaxBytes int64 `envconfig:"UPLOAD_MAX_BYTES" default:"10485760"` // 10MB
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	// 0 asks the OS for an ephemeral port
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 0 and 65535)", c.Port)
	}
	if c.PortSearchLimit < 0 {
		return fmt.Errorf("PORT_SEARCH_LIMIT must be non-negative")
	}
	if strings.TrimSpace(c.Groq.APIKey) == "" {
		return fmt.Errorf("GROQ_API_KEY must not be empty")
	}
	if c.Groq.Timeout <= 0 {
		return fmt.Errorf("GROQ_TIMEOUT must be positive")
	}

	switch c.History.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis history backend")
		}
		if c.Redis.HistoryTTL < 0 {
			return fmt.Errorf("REDIS_HISTORY_TTL must be non-negative")
		}
	case BackendPostgres:
		if c.DB.DSN == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres history backend")
		}
		if c.DB.MaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGODB_URI is required for the mongo history backend")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("MONGODB_DATABASE must not be empty")
		}
	default:
		return fmt.Errorf("invalid history backend: %s (must be one of: memory, redis, postgres, mongo)", c.History.Backend)
	}

	if c.Limiter.RPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be non-negative")
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if c.Upload.MaxBytes < 1 {
		return fmt.Errorf("UPLOAD_MAX_BYTES must be at least 1")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, PortSearchLimit=%d, Groq.Model=%s, Groq.BaseURL=%s, "+
		"History.Backend=%s, Limiter.RPS=%.2f, Limiter.Burst=%d, Limiter.Enabled=%t, CORS.Origins=%d, Upload.MaxBytes=%d}",
		c.Env, c.Port, c.PortSearchLimit, c.Groq.Model, c.Groq.BaseURL,
		c.History.Backend, c.Limiter.RPS, c.Limiter.Burst, c.Limiter.Enabled, len(c.CORS.TrustedOrigins), c.Upload.MaxBytes)
}
