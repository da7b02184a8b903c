package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the PostgreSQL connection, waiting for the database to
// become reachable. In containerized deployments the database is often
// still starting when the API comes up, so the first pings may fail.
func InitDB(cfg *Config) (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, assuming environment variables are set")
	}

	if cfg.PostgresConnStr == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := waitForDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL")
	return db, nil
}

func waitForDB(cfg *Config) (*gorm.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.DBConnectRetries; attempt++ {
		db, err := gorm.Open(postgres.Open(cfg.PostgresConnStr), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				if pingErr := sqlDB.Ping(); pingErr == nil {
					return db, nil
				} else {
					err = pingErr
				}
			} else {
				err = dbErr
			}
		}
		lastErr = err
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"retries": cfg.DBConnectRetries,
		}).Infof("Database not ready, retrying in %s: %v", cfg.DBConnectDelay, err)
		time.Sleep(cfg.DBConnectDelay)
	}
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", cfg.DBConnectRetries, lastErr)
}

// CloseDB closes the underlying connection pool
func CloseDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("Error getting SQL DB from GORM: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Error closing PostgreSQL connection: %v", err)
	} else {
		logrus.Info("PostgreSQL connection closed")
	}
}
