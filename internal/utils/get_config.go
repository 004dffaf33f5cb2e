package utils

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBSSLMode  string `yaml:"DB_SSLMODE"`

	// JWT
	JWTSecret     string `yaml:"JWT_SECRET"`
	JWTTTLMinutes int    `yaml:"JWT_TTL_MINUTES"`

	// Server
	AppPort      string `yaml:"APP_PORT"`
	AppEnv       string `yaml:"APP_ENV"`
	LogFile      string `yaml:"LOG_FILE"`
	CORSOrigins  string `yaml:"CORS_ORIGINS"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Sentry
	SentryDSN string `yaml:"SENTRY_DSN"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		DBPort:        "5432",
		DBHost:        "localhost",
		DBSSLMode:     "disable",
		JWTTTLMinutes: 1440,
		AppPort:       "8080",
		AppEnv:        "development",
		LogFile:       "./logs/app.log",
		CORSOrigins:   "*",
		RateLimitMax:  20,
	}
}

// LoadConfig reads .env, then config.yaml (or CONFIG_PATH), then lets
// environment variables override single keys.
func LoadConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error reading .env file: %s", err)
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("Error reading YAML file: %s", err)
	} else if err := yaml.Unmarshal(file, &config); err != nil {
		log.Errorf("Error parsing YAML file: %s", err)
	}

	overrideString(&config.DBUser, "DB_USER")
	overrideString(&config.DBName, "DB_NAME")
	overrideString(&config.DBPassword, "DB_PASSWORD")
	overrideString(&config.DBPort, "DB_PORT")
	overrideString(&config.DBHost, "DB_HOST")
	overrideString(&config.DBSSLMode, "DB_SSLMODE")
	overrideString(&config.JWTSecret, "JWT_SECRET")
	overrideInt(&config.JWTTTLMinutes, "JWT_TTL_MINUTES")
	overrideString(&config.AppPort, "APP_PORT")
	overrideString(&config.AppEnv, "APP_ENV")
	overrideString(&config.LogFile, "LOG_FILE")
	overrideString(&config.CORSOrigins, "CORS_ORIGINS")
	overrideInt(&config.RateLimitMax, "RATE_LIMIT_MAX")
	overrideString(&config.SentryDSN, "SENTRY_DSN")
}

func overrideString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("Ignoring %s=%q: %s", key, v, err)
		return
	}
	*dst = n
}

func GetConfig(key string) string {
	switch key {
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "JWT_SECRET":
		return config.JWTSecret
	case "JWT_TTL_MINUTES":
		return strconv.Itoa(config.JWTTTLMinutes)
	case "APP_PORT":
		return config.AppPort
	case "APP_ENV":
		return config.AppEnv
	case "LOG_FILE":
		return config.LogFile
	case "CORS_ORIGINS":
		return config.CORSOrigins
	case "RATE_LIMIT_MAX":
		return strconv.Itoa(config.RateLimitMax)
	case "SENTRY_DSN":
		return config.SentryDSN
	default:
		return ""
	}
}

// GetConfigInt returns the integer value of key, or fallback when it is unset or malformed.
func GetConfigInt(key string, fallback int) int {
	n, err := strconv.Atoi(GetConfig(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
