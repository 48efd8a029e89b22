package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppEnv string
	Port   string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Goal persistence
	StoreBackend string // "sql", "s3" or "memory"
	StoreKey     string // Key of the single goals record
	Timezone     string // IANA name used to compute "today"

	// HTTP
	RequestTimeout time.Duration
	RateLimitRPS   float64
	RateLimitBurst int

	// Observability (optional)
	SentryDSN string

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, DigitalOcean Spaces, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services (MinIO, DO Spaces, R2, etc.)
	S3Prefix    string // Optional: object key prefix
}

func Load() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppEnv: envString("APP_ENV", "development"),
		Port:   envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/mindspace.db?_pragma=journal_mode(WAL)"),

		// Goal persistence
		StoreBackend: envString("STORE_BACKEND", "sql"),
		StoreKey:     envString("STORE_KEY", "mindspace-goals"),
		Timezone:     envString("TIMEZONE", "Local"),

		// HTTP
		RequestTimeout: envDuration("REQUEST_TIMEOUT", 10*time.Second),
		RateLimitRPS:   envFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: envInt("RATE_LIMIT_BURST", 30),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage (S3-compatible - only required with STORE_BACKEND=s3)
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", ""),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    envString("S3_PREFIX", ""),
	}

	problems := cfg.Validate()
	for _, p := range problems {
		slog.Error("invalid configuration", "problem", p)
	}
	if len(problems) > 0 {
		os.Exit(1)
	}

	return cfg
}

// Validate returns a description of every setting that prevents startup.
func (c *Config) Validate() []string {
	var problems []string

	switch c.StoreBackend {
	case "sql", "s3", "memory":
	default:
		problems = append(problems, "STORE_BACKEND must be one of sql, s3, memory")
	}

	if c.StoreBackend == "s3" && c.S3Bucket == "" {
		problems = append(problems, "STORE_BACKEND=s3 requires S3_BUCKET")
	}

	if c.IsProduction() && c.StoreBackend == "memory" {
		problems = append(problems, "production deployment cannot use STORE_BACKEND=memory")
	}

	if c.StoreKey == "" {
		problems = append(problems, "STORE_KEY must not be empty")
	}

	_, err := time.LoadLocation(c.Timezone)
	if err != nil {
		problems = append(problems, "TIMEZONE is not a known IANA zone: "+c.Timezone)
	}

	return problems
}

// Location resolves Timezone, falling back to the process local zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("config invalid timezone, using local", "timezone", c.Timezone, "error", err)
		return time.Local
	}
	return loc
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("config invalid float, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}
