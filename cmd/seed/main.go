// Command seed creates demo users for local development.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/auth"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/config"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/database"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

type seedUser struct {
	name     string
	email    string
	password string
}

func main() {
	var configPath string
	var name string
	var email string
	var password string

	flag.StringVar(&configPath, "config", "config.yml", "Path to configuration file")
	flag.StringVar(&name, "name", "", "Name for an additional user")
	flag.StringVar(&email, "email", "", "Email for an additional user")
	flag.StringVar(&password, "password", "", "Password for an additional user")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	if err := database.RunMigrations(cfg, log); err != nil {
		log.Error("Failed to run migrations", logger.Error(err))
		os.Exit(1)
	}

	db, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		log.Error("Failed to connect to database", logger.Error(err))
		os.Exit(1)
	}
	defer database.Close(db)

	repo := database.NewUserRepository(db)

	users := []seedUser{
		{name: "Demo User 1", email: "demo1@example.com", password: "demo1pass"},
		{name: "Demo User 2", email: "demo2@example.com", password: "demo2pass"},
	}
	if email != "" && password != "" {
		if name == "" {
			name = email
		}
		users = append(users, seedUser{name: name, email: email, password: password})
	}

	ctx := context.Background()
	for _, u := range users {
		hash, hashErr := auth.HashPassword(u.password)
		if hashErr != nil {
			log.Error("Failed to hash password",
				logger.String("email", u.email),
				logger.Error(hashErr),
			)
			os.Exit(1)
		}

		created, createErr := repo.Create(ctx, u.name, u.email, hash)
		if createErr != nil {
			if errors.Is(createErr, models.ErrAlreadyExists) {
				log.Info("User already exists, skipping",
					logger.String("email", u.email),
				)
				continue
			}
			log.Error("Failed to create user",
				logger.String("email", u.email),
				logger.Error(createErr),
			)
			os.Exit(1)
		}

		log.Info("Seeded user",
			logger.String("user_id", created.ID.String()),
			logger.String("email", created.Email),
		)
	}
}
