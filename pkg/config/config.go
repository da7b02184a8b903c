package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	Env              string
	PostgresConnStr  string
	UploadDir        string
	DBConnectRetries int
	DBConnectDelay   time.Duration
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		PostgresConnStr:  getEnv("POSTGRES_CONN_STR", ""),
		UploadDir:        getEnv("UPLOAD_DIR", "static/uploads"),
		DBConnectRetries: getEnvInt("DB_CONNECT_RETRIES", 10),
		DBConnectDelay:   time.Duration(getEnvInt("DB_CONNECT_DELAY_SECONDS", 3)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
