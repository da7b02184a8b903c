package main

import (
	"context"
	"flag"
	"strings"

	"github.com/avolkov-dev/corptweet/backend/internal/models"
	"github.com/avolkov-dev/corptweet/backend/internal/repositories"
	"github.com/avolkov-dev/corptweet/backend/pkg/config"
	"github.com/avolkov-dev/corptweet/backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Seeds the users table. Accounts are provisioned out of band in this
// system; this tool is the local stand-in for that process.
func main() {
	names := flag.String("users", "Alice,Bob,Carol", "comma-separated list of user names to create")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.Env)

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	if err := db.AutoMigrate(&models.User{}); err != nil {
		logrus.Fatalf("Failed to migrate users table: %v", err)
	}

	userRepo := repositories.NewPostgresUserRepository(db)
	ctx := context.Background()

	for _, name := range strings.Split(*names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		user := &models.User{
			Name:   name,
			APIKey: uuid.New().String(),
		}
		if err := userRepo.CreateUser(ctx, user); err != nil {
			logrus.Errorf("Failed to create user %q: %v", name, err)
			continue
		}
		logrus.WithFields(logrus.Fields{
			"id":      user.ID,
			"name":    user.Name,
			"api_key": user.APIKey,
		}).Info("User created")
	}
}
