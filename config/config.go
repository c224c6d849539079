package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port           string
	MongoURI       string
	MongoDB        string
	StoreDriver    string
	JWTSecret      string
	QRSecret       string
	RequestTimeout time.Duration
	AnalyticsTopN  int
	CORSOrigins    string
	LogLevel       string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("⚠️ %s=%q is not a positive duration, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

func getInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		log.Printf("⚠️ %s=%q is not a positive integer, using %d", key, raw, fallback)
		return fallback
	}
	return n
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	cfg := Config{
		Port:           getEnv("PORT", "3000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "eventhub"),
		StoreDriver:    strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		QRSecret:       getEnv("QR_SECRET", ""),
		RequestTimeout: getDuration("REQUEST_TIMEOUT", 10*time.Second),
		AnalyticsTopN:  getInt("ANALYTICS_TOP_N", 5),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
	if cfg.QRSecret == "" {
		cfg.QRSecret = cfg.JWTSecret
	}
	return cfg
}

// Validate reports settings the server cannot start with. The memory
// driver is meant for local runs and falls back to a dev secret.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverMemory:
	default:
		return errors.New("STORE_DRIVER must be mongo or memory")
	}
	if c.JWTSecret == "" {
		if c.StoreDriver != DriverMemory {
			return errors.New("JWT_SECRET is required")
		}
		c.JWTSecret = "dev-secret"
	}
	if c.QRSecret == "" {
		c.QRSecret = c.JWTSecret
	}
	return nil
}
