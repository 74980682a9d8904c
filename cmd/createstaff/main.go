// Command createstaff creates a user allowed to manage the catalog.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/metinatakli/theatre-reservation-system/api"
	"github.com/metinatakli/theatre-reservation-system/internal/app"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/metinatakli/theatre-reservation-system/internal/repository"
	appvalidator "github.com/metinatakli/theatre-reservation-system/internal/validator"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	err := run(logger)
	if err != nil {
		logger.Error("could not create staff user", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	_ = godotenv.Load()

	var (
		cfg   app.Config
		input api.RegisterRequest
	)

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.StringVar(&input.Email, "email", "", "Staff email")
	flag.StringVar(&input.Password, "password", os.Getenv("STAFF_PASSWORD"), "Staff password")
	flag.Parse()

	cfg.DB.MaxOpenConns = 1
	cfg.DB.MaxIdleTime = time.Minute
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	err := appvalidator.NewValidator().Struct(input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	user := &domain.User{Email: input.Email, IsStaff: true}

	err = user.Password.Set(input.Password)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = repository.NewPostgresUserRepository(db).Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserAlreadyExists) {
			return fmt.Errorf("%s is already registered", input.Email)
		}
		return err
	}

	logger.Info("staff user created", "user_id", user.ID, "email", user.Email)

	return nil
}
