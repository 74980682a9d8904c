package domain

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for new hashes.
var PasswordCost = 12

type User struct {
	ID        int
	Email     string
	Password  PasswordHash
	IsStaff   bool
	CreatedAt time.Time
	Version   int
}

// CanManageCatalog reports whether the user may create or change plays, performances and other
// catalog records.
func (u *User) CanManageCatalog() bool {
	return u.IsStaff
}

type PasswordHash struct {
	Hash []byte
}

func (p *PasswordHash) Set(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), PasswordCost)
	if err != nil {
		return err
	}

	p.Hash = hash

	return nil
}

// Matches reports a mismatch as false with a nil error; other errors mean the stored hash is unusable.
func (p PasswordHash) Matches(plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(p.Hash, []byte(plaintext))

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetById(ctx context.Context, id int) (*User, error)
	// GetByToken resolves an unexpired token of the given scope to its owner.
	GetByToken(ctx context.Context, tokenHash []byte, tokenScope string) (*User, error)
	// Update applies optimistic locking on Version and returns ErrEditConflict when it lost.
	Update(ctx context.Context, user *User) error
}
