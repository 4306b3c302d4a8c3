package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	GinMode      string
	SecretKey    string
	SessionStore string
	RedisHost    string
	RedisPort    string
	DBDriver     string
	DBPath       string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	LogLevel     string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first; explicit env vars win over it.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		SecretKey:    getEnv("SECRET_KEY", "default-secret-key-change-me"),
		SessionStore: getEnv("SESSION_STORE", "cookie"),
		RedisHost:    getEnv("REDIS_HOST", "localhost"),
		RedisPort:    getEnv("REDIS_PORT", "6379"),
		DBDriver:     getEnv("DB_DRIVER", "sqlite"),
		DBPath:       getEnv("DB_PATH", "triager.db"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "triager"),
		DBPassword:   getEnv("DB_PASSWORD", "triager"),
		DBName:       getEnv("DB_NAME", "triager"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
