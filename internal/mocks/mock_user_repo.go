package mocks

import (
	"context"
	"fmt"

	"github.com/metinatakli/theatre-reservation-system/internal/domain"
)

func unexpectedCall(method string) error {
	return fmt.Errorf("mocks: unexpected call to %s", method)
}

// MockUserRepo runs the matching func field. Lookups without one find nothing and writes
// without one fail, which surfaces as a 500 in handler tests.
type MockUserRepo struct {
	domain.UserRepository
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByTokenFunc func(ctx context.Context, hash []byte, scope string) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, user *domain.User) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	GetByIdFunc    func(ctx context.Context, id int) (*domain.User, error)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc == nil {
		return unexpectedCall("UserRepository.Create")
	}
	return m.CreateFunc(ctx, user)
}

func (m *MockUserRepo) GetByToken(ctx context.Context, hash []byte, scope string) (*domain.User, error) {
	if m.GetByTokenFunc == nil {
		return nil, domain.ErrRecordNotFound
	}
	return m.GetByTokenFunc(ctx, hash, scope)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc == nil {
		return unexpectedCall("UserRepository.Update")
	}
	return m.UpdateFunc(ctx, user)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc == nil {
		return nil, domain.ErrRecordNotFound
	}
	return m.GetByEmailFunc(ctx, email)
}

func (m *MockUserRepo) GetById(ctx context.Context, id int) (*domain.User, error) {
	if m.GetByIdFunc == nil {
		return nil, domain.ErrRecordNotFound
	}
	return m.GetByIdFunc(ctx, id)
}
