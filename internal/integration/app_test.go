package integration_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatre-reservation-system/internal/app"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
	"github.com/metinatakli/theatre-reservation-system/internal/repository"
	appvalidator "github.com/metinatakli/theatre-reservation-system/internal/validator"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		app.NewPostgresRepositories(db),
	)

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}

// createUser stores a user directly, which is the only way to get a staff account.
func (a *TestApp) createUser(t testing.TB, email string, staff bool) *domain.User {
	t.Helper()

	user := &domain.User{Email: email, IsStaff: staff}
	require.NoError(t, user.Password.Set(testPassword))
	require.NoError(t, repository.NewPostgresUserRepository(a.DB).Create(context.Background(), user))

	return user
}
