package config

import (
	"errors"  // Error inspection for the optional config file
	"fmt"     // DSN formatting
	"strings" // String manipulation
	"time"    // Durations

	"github.com/joho/godotenv" // For loading .env files
	"github.com/spf13/viper"   // Layered configuration
)

// DefaultAPIURL is the Read API base URL used by the web frontend when none is configured
const DefaultAPIURL = "http://localhost:5000"

// Data sources understood by the web frontend
const (
	SourceLive    = "live"    // Read API over HTTP
	SourceFixture = "fixture" // Literal development data
)

// Config holds the application configuration
type Config struct {
	AppPort        string        // Read API port
	WebPort        string        // Web frontend port
	DatabaseURL    string        // Full database URL, overrides the DB_* parts
	DBUser         string        // Database user
	DBPassword     string        // Database password
	DBHost         string        // Database host
	DBPort         string        // Database port
	DBName         string        // Database name
	DBMaxOpenConns int           // Connection pool size
	DBMaxIdleConns int           // Idle connections kept in the pool
	DBConnLifetime time.Duration // Maximum connection lifetime
	JWTSecret      string        // JWT secret key
	RedisAddr      string        // Redis server address, empty disables caching
	RedisPass      string        // Redis password
	RedisDB        int           // Redis database number
	CacheTTL       time.Duration // Cache entry lifetime
	RateLimitRPS   int           // API requests per second, 0 disables throttling
	APIURL         string        // Read API base URL for the web frontend
	WebDataSource  string        // "live" or "fixture"
	APITimeout     time.Duration // Web frontend timeout towards the Read API
	LogLevel       string        // Logrus level name
	IsProd         bool          // Is production environment
}

// LoadConfig loads configuration from defaults, an optional tuarica.yaml and the environment
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present

	v := viper.New()
	setDefaults(v)
	v.SetConfigName("tuarica") // Optional tuarica.yaml in the working directory
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv() // Environment variables win over the file

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		AppPort:        v.GetString("APP_PORT"),
		WebPort:        v.GetString("WEB_PORT"),
		DatabaseURL:    v.GetString("DATABASE_URL"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBName:         v.GetString("DB_NAME"),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
		JWTSecret:      v.GetString("JWT_SECRET"),
		RedisAddr:      v.GetString("REDIS_ADDR"),
		RedisPass:      v.GetString("REDIS_PASS"),
		RedisDB:        v.GetInt("REDIS_DB"),
		CacheTTL:       time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		RateLimitRPS:   v.GetInt("RATE_LIMIT_RPS"),
		APIURL:         strings.TrimRight(v.GetString("NEXT_PUBLIC_API_URL"), "/"),
		WebDataSource:  strings.ToLower(v.GetString("WEB_DATA_SOURCE")),
		APITimeout:     time.Duration(v.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		LogLevel:       v.GetString("LOG_LEVEL"),
		IsProd:         v.GetBool("IS_PROD"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setDefaults registers the default of every key
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("WEB_PORT", "3000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "tuarica")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASS", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL_SECONDS", 60)
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("NEXT_PUBLIC_API_URL", DefaultAPIURL)
	v.SetDefault("WEB_DATA_SOURCE", SourceLive)
	v.SetDefault("API_TIMEOUT_SECONDS", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("IS_PROD", false)
}

// Validate rejects values the services cannot start with
func (c *Config) Validate() error {
	if c.WebDataSource != SourceLive && c.WebDataSource != SourceFixture {
		return fmt.Errorf("WEB_DATA_SOURCE must be %q or %q, got %q", SourceLive, SourceFixture, c.WebDataSource)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if c.APIURL == "" {
		return fmt.Errorf("NEXT_PUBLIC_API_URL must not be empty")
	}
	return nil
}

// DSN returns the database URL, building a MySQL DSN from the DB_* parts when DATABASE_URL is unset
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4"
}
