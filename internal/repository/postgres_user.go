package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

func (p *PostgresUserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (email, password_hash, is_staff)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`

	err := p.db.QueryRow(ctx,
		query,
		user.Email,
		user.Password.Hash,
		user.IsStaff).Scan(&user.ID, &user.CreatedAt, &user.Version)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, is_staff, created_at, version
		FROM users
		WHERE email = $1`

	return p.getOne(ctx, query, email)
}

func (p *PostgresUserRepository) GetById(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT id, email, password_hash, is_staff, created_at, version
		FROM users
		WHERE id = $1`

	return p.getOne(ctx, query, id)
}

func (p *PostgresUserRepository) GetByToken(ctx context.Context, tokenHash []byte, tokenScope string) (*domain.User, error) {
	query := `SELECT u.id, u.email, u.password_hash, u.is_staff, u.created_at, u.version
		FROM users u
		INNER JOIN tokens t ON u.id = t.user_id
		WHERE t.hash = $1
		AND t.scope = $2
		AND t.expiry > NOW()`

	return p.getOne(ctx, query, tokenHash, tokenScope)
}

func (p *PostgresUserRepository) getOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var user domain.User

	err := p.db.QueryRow(ctx, query, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password.Hash,
		&user.IsStaff,
		&user.CreatedAt,
		&user.Version,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &user, nil
}

// Update applies optimistic locking on version; a concurrent update yields ErrEditConflict.
func (p *PostgresUserRepository) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users
		SET email = $1, password_hash = $2, version = version + 1
		WHERE id = $3 AND version = $4
		RETURNING version`

	err := p.db.QueryRow(ctx,
		query,
		user.Email,
		user.Password.Hash,
		user.ID,
		user.Version).Scan(&user.Version)

	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return domain.ErrEditConflict
		case isUniqueViolation(err):
			return domain.ErrUserAlreadyExists
		default:
			return err
		}
	}

	return nil
}
